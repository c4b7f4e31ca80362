package system

import (
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

const defaultBulletDamage = 10

// BulletCollisionSystem applies bullet hits reported by the physics step.
type BulletCollisionSystem struct{}

func NewBulletCollisionSystem() *BulletCollisionSystem {
	return &BulletCollisionSystem{}
}

func (b *BulletCollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, ev := range w.Events().Collisions() {
		if ev.Kind != ecs.CollisionStarted {
			continue
		}
		HandleBulletCollision(w, ev.A, ev.B)
	}
}

// HandleBulletCollision resolves one contact between a and b. The bullet is
// looked for on a first. A hit on an enemy damages it and consumes the
// bullet; otherwise a hit on a wall just consumes the bullet. It reports
// whether a rule applied.
func HandleBulletCollision(w *ecs.World, a, b ecs.Entity) bool {
	if !w.IsAlive(a) || !w.IsAlive(b) {
		return false
	}

	bulletEntity, other := a, b
	bullet, ok := ecs.Get(w, a, component.BulletComponent.Kind())
	if !ok {
		bulletEntity, other = b, a
		bullet, ok = ecs.Get(w, b, component.BulletComponent.Kind())
		if !ok {
			return false
		}
	}

	if hitEnemy(w, bulletEntity, bullet, other) {
		return true
	}
	if ecs.Has(w, other, component.WallTagComponent.Kind()) {
		ecs.DestroyEntity(w, bulletEntity)
		return true
	}
	return false
}

func hitEnemy(w *ecs.World, bulletEntity ecs.Entity, bullet *component.Bullet, enemyEntity ecs.Entity) bool {
	enemy, ok := ecs.Get(w, enemyEntity, component.EnemyComponent.Kind())
	if !ok {
		return false
	}

	damage := bullet.Damage
	if damage <= 0 {
		damage = defaultBulletDamage
	}

	dead := enemy.TakeDamage(damage)
	ecs.DestroyEntity(w, bulletEntity)
	if dead {
		ecs.DestroyEntity(w, enemyEntity)
	}
	return true
}
