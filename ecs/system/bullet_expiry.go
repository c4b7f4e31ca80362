package system

import (
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

type BulletExpirySystem struct{}

func NewBulletExpirySystem() *BulletExpirySystem {
	return &BulletExpirySystem{}
}

func (b *BulletExpirySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.BulletComponent.Kind(), func(e ecs.Entity, bullet *component.Bullet) {
		if bullet.Lifetime.Tick(common.TickDuration).Finished() {
			ecs.DestroyEntity(w, e)
		}
	})
}
