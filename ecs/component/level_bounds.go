package component

// MapBounds is the world rectangle covered by the loaded map.
type MapBounds struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func (b MapBounds) Width() float64  { return b.MaxX - b.MinX }
func (b MapBounds) Height() float64 { return b.MaxY - b.MinY }

var MapBoundsComponent = NewComponent[MapBounds]()
