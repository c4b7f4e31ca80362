package system

import (
	"testing"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

func spawnPickup(t *testing.T, w *ecs.World, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.PickupComponent.Kind(), &component.Pickup{Kind: "coin", BobAmplitude: 4, BobSeconds: 0.5})
	add(t, w, e, component.TransformComponent.Kind(), &component.Transform{Y: y})
	return e
}

func TestCollectPickup(t *testing.T) {
	tests := []struct {
		name          string
		playerFirst   bool
		withPlayer    bool
		wantCollected bool
	}{
		{name: "player then pickup", playerFirst: true, withPlayer: true, wantCollected: true},
		{name: "pickup then player", playerFirst: false, withPlayer: true, wantCollected: true},
		{name: "enemy touches pickup", playerFirst: true, withPlayer: false, wantCollected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			pickup := spawnPickup(t, w, 0)
			var toucher ecs.Entity
			if tt.withPlayer {
				toucher = spawnPlayer(t, w, 0, 0)
			} else {
				toucher = spawnEnemy(t, w, 0, 0, 100)
			}

			a, b := toucher, pickup
			if !tt.playerFirst {
				a, b = pickup, toucher
			}
			w.Events().Push(ecs.CollisionEvent{Kind: ecs.CollisionStarted, A: a, B: b})
			NewPickupSystem().Update(w)

			if got := !w.IsAlive(pickup); got != tt.wantCollected {
				t.Fatalf("collected = %v, want %v", got, tt.wantCollected)
			}
			if tt.withPlayer {
				score, _ := ecs.Get(w, toucher, component.ScoreComponent.Kind())
				if score.Collected != 1 {
					t.Fatalf("score = %d, want 1", score.Collected)
				}
			}
		})
	}
}

func TestPickupHoverBobsAroundBase(t *testing.T) {
	w := ecs.NewWorld()
	pickup := spawnPickup(t, w, 100)
	sys := NewPickupHoverSystem()
	transform, _ := ecs.Get(w, pickup, component.TransformComponent.Kind())

	lowest, highest := transform.Y, transform.Y
	for i := 0; i < 120; i++ {
		sys.Update(w)
		lowest = min(lowest, transform.Y)
		highest = max(highest, transform.Y)
		if transform.Y < 96-1e-3 || transform.Y > 104+1e-3 {
			t.Fatalf("tick %d: y = %v outside 100±4", i, transform.Y)
		}
	}
	if highest-lowest < 7 {
		t.Fatalf("bob range %v..%v too small", lowest, highest)
	}

	p, _ := ecs.Get(w, pickup, component.PickupComponent.Kind())
	if p.BaseY != 100 || p.Tween == nil {
		t.Fatalf("pickup not initialised: %+v", p)
	}
}
