package system

import (
	"log"
	"math"
	"math/rand/v2"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// SightRule decides whether an enemy at distance from the player sees it.
type SightRule interface {
	Spotted(distance, sightRange float64) (bool, error)
}

// RangeSight spots the player strictly inside the sight range.
type RangeSight struct{}

func (RangeSight) Spotted(distance, sightRange float64) (bool, error) {
	return distance < sightRange, nil
}

// EnemySystem chases the player when it is in sight and wanders otherwise.
type EnemySystem struct {
	sight SightRule
	rng   *rand.Rand
}

func NewEnemySystem(sight SightRule, rng *rand.Rand) *EnemySystem {
	if sight == nil {
		sight = RangeSight{}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &EnemySystem{sight: sight, rng: rng}
}

// SetSightRule replaces the rule, falling back to RangeSight for nil.
func (s *EnemySystem) SetSightRule(sight SightRule) {
	if sight == nil {
		sight = RangeSight{}
	}
	s.sight = sight
}

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player, hasPlayer := playerTransform(w)

	ecs.ForEach4(w, component.EnemyComponent.Kind(), component.WanderTimerComponent.Kind(), component.VelocityComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, wander *component.WanderTimer, vel *component.Velocity, t *component.Transform) {
		if !hasPlayer {
			enemy.PlayerSpotted = false
			vel.X, vel.Y = 0, 0
			return
		}

		dx, dy := player.X-t.X, player.Y-t.Y
		enemy.PlayerSpotted = s.spotted(math.Hypot(dx, dy), enemy.SightRange)

		if enemy.PlayerSpotted {
			nx, ny := common.Normalize(dx, dy)
			vel.X, vel.Y = nx*enemy.Speed, ny*enemy.Speed
			return
		}

		if wander.Timer.Tick(common.TickDuration).JustFinished() {
			t.Rotation = s.rng.Float64() * 2 * math.Pi
		}
		fx, fy := common.Forward(t.Rotation)
		vel.X, vel.Y = fx*enemy.Speed, fy*enemy.Speed
	})
}

func (s *EnemySystem) spotted(distance, sightRange float64) bool {
	ok, err := s.sight.Spotted(distance, sightRange)
	if err != nil {
		log.Printf("enemy system: sight rule failed, using range check: %v", err)
		s.sight = RangeSight{}
		ok, _ = s.sight.Spotted(distance, sightRange)
	}
	return ok
}
