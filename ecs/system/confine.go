package system

import (
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// ConfineSystem keeps players inside the map, inset by half their size.
type ConfineSystem struct{}

func NewConfineSystem() *ConfineSystem {
	return &ConfineSystem{}
}

func (c *ConfineSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	boundsEntity, ok := ecs.First(w, component.MapBoundsComponent.Kind())
	if !ok {
		return
	}
	bounds, ok := ecs.Get(w, boundsEntity, component.MapBoundsComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, player *component.Player, t *component.Transform) {
		half := player.HalfSize
		t.X = common.Clamp(t.X, bounds.MinX+half, bounds.MaxX-half)
		t.Y = common.Clamp(t.Y, bounds.MinY+half, bounds.MaxY-half)
	})
}
