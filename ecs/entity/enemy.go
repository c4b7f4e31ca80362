package entity

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

func NewEnemyAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	enemySpec, err := prefabs.LoadEnemySpec()
	if err != nil {
		return 0, fmt.Errorf("enemy: load spec: %w", err)
	}
	return NewEnemyFromSpec(w, enemySpec, x, y, 0)
}

// SpawnEnemies places Count enemies uniformly in [SpawnMin, SpawnMax) on both
// axes, each with a random facing. Spawns stay inside the map and clear of
// walls that already exist.
func SpawnEnemies(w *ecs.World, rng *rand.Rand, enemySpec *prefabs.EnemySpec) ([]ecs.Entity, error) {
	body, err := physicsBodyFromSpec(enemySpec.Collider)
	if err != nil {
		return nil, fmt.Errorf("enemy: collider: %w", err)
	}
	radius := colliderRadius(body)

	out := make([]ecs.Entity, 0, enemySpec.Count)
	for i := 0; i < enemySpec.Count; i++ {
		x, y := spawnPoint(w, rng, enemySpec.SpawnMin, enemySpec.SpawnMax, radius)
		e, err := NewEnemyFromSpec(w, enemySpec, x, y, rng.Float64()*2*math.Pi)
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, nil
}

func NewEnemyFromSpec(w *ecs.World, enemySpec *prefabs.EnemySpec, x, y, rotation float64) (ecs.Entity, error) {
	body, err := physicsBodyFromSpec(enemySpec.Collider)
	if err != nil {
		return 0, fmt.Errorf("enemy: collider: %w", err)
	}

	img, err := LoadImage(enemySpec.Sprite.Image)
	if err != nil {
		return 0, fmt.Errorf("enemy: load sprite: %w", err)
	}

	hp := enemySpec.Health
	if hp <= 0 {
		hp = 100
	}
	wander := enemySpec.WanderSeconds
	if wander <= 0 {
		wander = 1
	}

	transform := transformFromSpec(enemySpec.Transform)
	transform.X, transform.Y, transform.Rotation = x, y, rotation

	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.EnemyComponent.Kind(), &component.Enemy{
		Health:     component.Health{Current: hp, Max: hp},
		Speed:      enemySpec.Speed,
		SightRange: enemySpec.SightRange,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy component: %w", err)
	}
	if err := ecs.Add(w, entity, component.WanderTimerComponent.Kind(), &component.WanderTimer{
		Timer: component.NewTimer(wander, component.TimerRepeating),
	}); err != nil {
		return 0, fmt.Errorf("enemy: add wander timer: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), transform); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("enemy: add velocity: %w", err)
	}
	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{
		Image:   img,
		OriginX: enemySpec.Sprite.OriginX,
		OriginY: enemySpec.Sprite.OriginY,
		Alpha:   1,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add sprite: %w", err)
	}
	if err := ecs.Add(w, entity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: enemySpec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("enemy: add render layer: %w", err)
	}
	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), body); err != nil {
		return 0, fmt.Errorf("enemy: add physics body: %w", err)
	}

	return entity, nil
}

func randomIn(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
