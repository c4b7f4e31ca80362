package system

import (
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

const (
	animIdle    = "idle"
	animRunning = "running"
)

// PlayerMovementSystem turns the move input into a velocity, picks the idle or
// running animation and turns the player towards the cursor.
type PlayerMovementSystem struct{}

func NewPlayerMovementSystem() *PlayerMovementSystem {
	return &PlayerMovementSystem{}
}

func (p *PlayerMovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	cursor, hasCursor := cursorOf(w)

	ecs.ForEach4(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.VelocityComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, player *component.Player, input *component.Input, vel *component.Velocity, t *component.Transform) {
		dx, dy := common.Normalize(input.MoveX, input.MoveY)
		vel.X = dx * player.Speed
		vel.Y = dy * player.Speed

		if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
			if dx != 0 || dy != 0 {
				anim.Play(animRunning)
			} else {
				anim.Play(animIdle)
			}
		}

		if !hasCursor {
			return
		}
		ax, ay := cursor.X-t.X, cursor.Y-t.Y
		if ax == 0 && ay == 0 {
			return
		}
		t.Rotation = common.FacingRotation(ax, ay)
	})
}
