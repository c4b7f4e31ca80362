package entity

import (
	"fmt"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

func NewWall(w *ecs.World) (ecs.Entity, error) {
	wallSpec, err := prefabs.LoadWallSpec()
	if err != nil {
		return 0, fmt.Errorf("wall: load spec: %w", err)
	}
	return NewWallFromSpec(w, wallSpec, wallSpec.Transform.X, wallSpec.Transform.Y)
}

func NewWallAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	wallSpec, err := prefabs.LoadWallSpec()
	if err != nil {
		return 0, fmt.Errorf("wall: load spec: %w", err)
	}
	return NewWallFromSpec(w, wallSpec, x, y)
}

// NewWallFromSpec creates a static cuboid wall. The sprite is a single pixel
// stretched over the collider and tinted with the prefab colour.
func NewWallFromSpec(w *ecs.World, wallSpec *prefabs.WallSpec, x, y float64) (ecs.Entity, error) {
	body, err := physicsBodyFromSpec(wallSpec.Collider)
	if err != nil {
		return 0, fmt.Errorf("wall: collider: %w", err)
	}
	body.Type = component.BodyStatic

	entity, err := newWallCollider(w, x, y, body)
	if err != nil {
		return 0, err
	}

	if wallSpec.Sprite.Image != "" {
		img, err := LoadImage(wallSpec.Sprite.Image)
		if err != nil {
			return 0, fmt.Errorf("wall: load sprite: %w", err)
		}
		transform, _ := ecs.Get(w, entity, component.TransformComponent.Kind())
		if iw, ih := imageSize(img); iw > 0 && ih > 0 && body.Collider == component.ColliderCuboid {
			transform.ScaleX = 2 * body.HalfWidth / float64(iw)
			transform.ScaleY = 2 * body.HalfHeight / float64(ih)
		}
		sprite := &component.Sprite{Image: img, Alpha: 1}
		if wallSpec.Color != nil {
			sprite.Tint = wallSpec.Color.Color
		}
		if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), sprite); err != nil {
			return 0, fmt.Errorf("wall: add sprite: %w", err)
		}
		if err := ecs.Add(w, entity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: wallSpec.RenderLayer.Index}); err != nil {
			return 0, fmt.Errorf("wall: add render layer: %w", err)
		}
	}

	return entity, nil
}

func newWallCollider(w *ecs.World, x, y float64, body *component.PhysicsBody) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.WallTagComponent.Kind(), &component.WallTag{}); err != nil {
		return 0, fmt.Errorf("wall: add wall tag: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("wall: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), body); err != nil {
		return 0, fmt.Errorf("wall: add physics body: %w", err)
	}
	return entity, nil
}
