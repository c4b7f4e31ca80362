package entity

import (
	"fmt"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

// NewBullet spawns a bullet at (x, y) travelling at (vx, vy) px/s, rotated to
// face its direction of travel.
func NewBullet(w *ecs.World, bulletSpec *prefabs.BulletSpec, x, y, vx, vy float64) (ecs.Entity, error) {
	body, err := physicsBodyFromSpec(bulletSpec.Collider)
	if err != nil {
		return 0, fmt.Errorf("bullet: collider: %w", err)
	}

	img, err := LoadImage(bulletSpec.Sprite.Image)
	if err != nil {
		return 0, fmt.Errorf("bullet: load sprite: %w", err)
	}

	damage := bulletSpec.Damage
	if damage <= 0 {
		damage = 10
	}
	lifetime := bulletSpec.Lifetime
	if lifetime <= 0 {
		lifetime = 1
	}

	transform := transformFromSpec(bulletSpec.Transform)
	transform.X, transform.Y = x, y
	transform.Rotation = common.FacingRotation(vx, vy)

	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.BulletComponent.Kind(), &component.Bullet{
		VelocityX: vx,
		VelocityY: vy,
		Damage:    damage,
		Lifetime:  component.NewTimer(lifetime, component.TimerOnce),
	}); err != nil {
		return 0, fmt.Errorf("bullet: add bullet component: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), transform); err != nil {
		return 0, fmt.Errorf("bullet: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.VelocityComponent.Kind(), &component.Velocity{X: vx, Y: vy}); err != nil {
		return 0, fmt.Errorf("bullet: add velocity: %w", err)
	}
	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{Image: img, Alpha: 1}); err != nil {
		return 0, fmt.Errorf("bullet: add sprite: %w", err)
	}
	if err := ecs.Add(w, entity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: bulletSpec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("bullet: add render layer: %w", err)
	}
	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), body); err != nil {
		return 0, fmt.Errorf("bullet: add physics body: %w", err)
	}

	return entity, nil
}
