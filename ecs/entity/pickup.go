package entity

import (
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

func NewPickupAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	pickupSpec, err := prefabs.LoadPickupSpec()
	if err != nil {
		return 0, fmt.Errorf("pickup: load spec: %w", err)
	}
	return NewPickupFromSpec(w, pickupSpec, x, y)
}

// SpawnPickups scatters Count pickups like SpawnEnemies does.
func SpawnPickups(w *ecs.World, rng *rand.Rand, pickupSpec *prefabs.PickupSpec) ([]ecs.Entity, error) {
	body, err := physicsBodyFromSpec(pickupSpec.Collider)
	if err != nil {
		return nil, fmt.Errorf("pickup: collider: %w", err)
	}
	radius := colliderRadius(body)

	out := make([]ecs.Entity, 0, pickupSpec.Count)
	for i := 0; i < pickupSpec.Count; i++ {
		x, y := spawnPoint(w, rng, pickupSpec.SpawnMin, pickupSpec.SpawnMax, radius)
		e, err := NewPickupFromSpec(w, pickupSpec, x, y)
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, nil
}

func NewPickupFromSpec(w *ecs.World, pickupSpec *prefabs.PickupSpec, x, y float64) (ecs.Entity, error) {
	body, err := physicsBodyFromSpec(pickupSpec.Collider)
	if err != nil {
		return 0, fmt.Errorf("pickup: collider: %w", err)
	}

	img, err := LoadImage(pickupSpec.Sprite.Image)
	if err != nil {
		return 0, fmt.Errorf("pickup: load sprite: %w", err)
	}

	transform := transformFromSpec(pickupSpec.Transform)
	transform.X, transform.Y = x, y

	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.PickupComponent.Kind(), &component.Pickup{
		Kind:         pickupSpec.Kind,
		BaseY:        y,
		BobAmplitude: pickupSpec.BobAmplitude,
		BobSeconds:   pickupSpec.BobSeconds,
	}); err != nil {
		return 0, fmt.Errorf("pickup: add pickup component: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), transform); err != nil {
		return 0, fmt.Errorf("pickup: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{Image: img, Alpha: 1}); err != nil {
		return 0, fmt.Errorf("pickup: add sprite: %w", err)
	}
	if err := ecs.Add(w, entity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: pickupSpec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("pickup: add render layer: %w", err)
	}
	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), body); err != nil {
		return 0, fmt.Errorf("pickup: add physics body: %w", err)
	}

	return entity, nil
}
