package ecs

// CollisionEventKind identifies collision event types.
type CollisionEventKind uint8

const (
	CollisionStarted CollisionEventKind = iota + 1
	CollisionStopped
)

func (k CollisionEventKind) String() string {
	switch k {
	case CollisionStarted:
		return "started"
	case CollisionStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// CollisionEvent reports that two entities' colliders began or stopped
// touching during the last physics step.
type CollisionEvent struct {
	Kind CollisionEventKind
	A    Entity
	B    Entity
}

// EventQueue holds the collision events of the current tick. The physics
// system resets it before stepping; every later system may read it.
type EventQueue struct {
	collisions []CollisionEvent
}

// Push adds an event.
func (q *EventQueue) Push(evt CollisionEvent) {
	if q == nil {
		return
	}
	q.collisions = append(q.collisions, evt)
}

// Collisions returns this tick's events without consuming them.
func (q *EventQueue) Collisions() []CollisionEvent {
	if q == nil {
		return nil
	}
	return q.collisions
}

// Reset drops all queued events.
func (q *EventQueue) Reset() {
	if q == nil {
		return
	}
	q.collisions = q.collisions[:0]
}
