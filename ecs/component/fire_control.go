package component

// FireControl gates bullet spawning while the fire button is held.
type FireControl struct {
	Cooldown    Timer
	BulletSpeed float64
}

var FireControlComponent = NewComponent[FireControl]()
