package component

type Enemy struct {
	Health        Health
	Speed         float64
	SightRange    float64
	PlayerSpotted bool
}

// TakeDamage applies n damage and reports whether the enemy died.
func (e *Enemy) TakeDamage(n int) bool {
	return e.Health.Damage(n)
}

var EnemyComponent = NewComponent[Enemy]()

// WanderTimer re-orients an idle enemy every time it finishes.
type WanderTimer struct {
	Timer Timer
}

var WanderTimerComponent = NewComponent[WanderTimer]()
