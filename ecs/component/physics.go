package component

import "github.com/jakecoffman/cp"

type BodyType uint8

const (
	BodyDynamic BodyType = iota
	BodyStatic
)

type ColliderShape uint8

const (
	ColliderBall ColliderShape = iota
	ColliderCuboid
	ColliderCapsule
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration. Body
// and Shape are filled in by the physics system.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape

	Type       BodyType
	Collider   ColliderShape
	Radius     float64
	HalfWidth  float64
	HalfHeight float64
	// HalfLength is the capsule's half segment length along local Y.
	HalfLength    float64
	Mass          float64
	Friction      float64
	Sensor        bool
	FixedRotation bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
