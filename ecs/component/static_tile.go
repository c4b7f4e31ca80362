package component

// Tile marks a sprite spawned from a map layer.
type Tile struct {
	Layer int
	Col   int
	Row   int
	ID    uint32
}

var TileComponent = NewComponent[Tile]()
