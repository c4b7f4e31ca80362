package system

import (
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PickupHoverSystem bobs pickups around their spawn height with an eased
// yoyo tween.
type PickupHoverSystem struct{}

func NewPickupHoverSystem() *PickupHoverSystem { return &PickupHoverSystem{} }

func (s *PickupHoverSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pickup *component.Pickup, t *component.Transform) {
		if !pickup.Started {
			pickup.BaseY = t.Y
			pickup.Started = true
			if pickup.BobAmplitude == 0 {
				pickup.BobAmplitude = 4
			}
			if pickup.BobSeconds <= 0 {
				pickup.BobSeconds = 0.8
			}
			pickup.Tween = newBobTween(pickup.BobAmplitude, pickup.BobSeconds)
		}
		if pickup.Tween == nil {
			return
		}

		offset, _, _ := pickup.Tween.Update(float32(common.TickDuration))
		t.Y = pickup.BaseY + float64(offset)
	})
}

func newBobTween(amplitude, seconds float64) *gween.Sequence {
	seq := gween.NewSequence(gween.New(float32(-amplitude), float32(amplitude), float32(seconds), ease.InOutSine))
	seq.SetYoyo(true)
	seq.SetLoop(-1)
	return seq
}
