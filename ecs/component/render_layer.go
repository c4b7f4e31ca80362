package component

// RenderLayer orders drawing: lower indices draw first, ties break on entity
// id. Entities without one draw at layer 0.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
