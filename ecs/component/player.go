package component

type Player struct {
	Speed    float64
	HalfSize float64
}

var PlayerComponent = NewComponent[Player]()
