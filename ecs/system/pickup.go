package system

import (
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// PickupSystem collects pickups the player touches.
type PickupSystem struct{}

func NewPickupSystem() *PickupSystem {
	return &PickupSystem{}
}

func (p *PickupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, ev := range w.Events().Collisions() {
		if ev.Kind != ecs.CollisionStarted {
			continue
		}
		CollectPickup(w, ev.A, ev.B)
	}
}

// CollectPickup destroys the pickup among a and b when the other one is a
// player, crediting that player's score.
func CollectPickup(w *ecs.World, a, b ecs.Entity) bool {
	if !w.IsAlive(a) || !w.IsAlive(b) {
		return false
	}

	pickup, player := a, b
	if !ecs.Has(w, pickup, component.PickupComponent.Kind()) {
		pickup, player = b, a
	}
	if !ecs.Has(w, pickup, component.PickupComponent.Kind()) || !ecs.Has(w, player, component.PlayerTagComponent.Kind()) {
		return false
	}

	if score, ok := ecs.Get(w, player, component.ScoreComponent.Kind()); ok {
		score.Collected++
	}
	ecs.DestroyEntity(w, pickup)
	return true
}
