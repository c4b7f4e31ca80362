package system

import (
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/ecs/entity"
	"github.com/milk9111/topdown/prefabs"
)

// FireSystem spawns a bullet towards the cursor every time the player's
// cooldown finishes while fire is held.
type FireSystem struct {
	bullet *prefabs.BulletSpec
}

func NewFireSystem(bullet *prefabs.BulletSpec) *FireSystem {
	return &FireSystem{bullet: bullet}
}

// SetBulletSpec swaps the prefab used for new bullets.
func (f *FireSystem) SetBulletSpec(bullet *prefabs.BulletSpec) {
	f.bullet = bullet
}

func (f *FireSystem) Update(w *ecs.World) {
	if w == nil || f.bullet == nil {
		return
	}

	cursor, hasCursor := cursorOf(w)

	ecs.ForEach3(w, component.FireControlComponent.Kind(), component.InputComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, fire *component.FireControl, input *component.Input, t *component.Transform) {
		if !input.Fire {
			return
		}
		if !fire.Cooldown.Tick(common.TickDuration).JustFinished() {
			return
		}

		var dx, dy float64
		if hasCursor {
			dx, dy = common.Normalize(cursor.X-t.X, cursor.Y-t.Y)
		}
		if dx == 0 && dy == 0 {
			dx, dy = common.Forward(t.Rotation)
			dx, dy = -dx, -dy
		}

		if _, err := entity.NewBullet(w, f.bullet, t.X, t.Y, dx*fire.BulletSpeed, dy*fire.BulletSpeed); err != nil {
			panic("fire system: spawn bullet: " + err.Error())
		}
	})
}
