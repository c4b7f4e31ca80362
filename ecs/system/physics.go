package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

const collisionTypeEntity cp.CollisionType = 1

// PhysicsSystem mirrors PhysicsBody components into a zero-gravity Chipmunk
// space, steps it once per tick and reports contacts as collision events.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity

	// world is only set while the space is stepping so callbacks can check
	// liveness and push events.
	world *ecs.World
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool

	// velocity is applied during the step's velocity integration so the
	// contact solver sees it before positions move.
	velocity cp.Vector
}

func NewPhysicsSystem() *PhysicsSystem {
	ps := &PhysicsSystem{}
	ps.Reset()
	return ps
}

// Reset discards every body and starts from an empty space.
func (ps *PhysicsSystem) Reset() {
	ps.space = cp.NewSpace()
	ps.space.Iterations = 10
	ps.space.SetGravity(cp.Vector{})
	ps.handlersReady = false
	ps.entities = make(map[ecs.Entity]*bodyInfo)
	ps.shapes = make(map[*cp.Shape]ecs.Entity)
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// EntityForShape resolves a shape back to its entity.
func (ps *PhysicsSystem) EntityForShape(shape *cp.Shape) (ecs.Entity, bool) {
	e, ok := ps.shapes[shape]
	return e, ok
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	w.Events().Reset()
	ps.ensureHandlers()
	ps.world = w
	ps.cleanupEntities(w)
	ps.syncEntities(w)

	ps.space.Step(common.TickDuration)
	ps.world = nil

	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	handler := ps.space.NewCollisionHandler(collisionTypeEntity, collisionTypeEntity)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if sys, ok := userData.(*PhysicsSystem); ok {
			sys.pushEvent(arb, ecs.CollisionStarted)
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		if sys, ok := userData.(*PhysicsSystem); ok {
			sys.pushEvent(arb, ecs.CollisionStopped)
		}
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) pushEvent(arb *cp.Arbiter, kind ecs.CollisionEventKind) {
	if ps.world == nil {
		return
	}
	shapeA, shapeB := arb.Shapes()
	a, okA := ps.shapes[shapeA]
	b, okB := ps.shapes[shapeB]
	if !okA || !okB || !ps.world.IsAlive(a) || !ps.world.IsAlive(b) {
		return
	}
	ps.world.Events().Push(ecs.CollisionEvent{Kind: kind, A: a, B: b})
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		info := ps.entities[e]
		if info == nil {
			info = ps.createBodyInfo(transform, bodyComp)
			if info == nil {
				return
			}
			ps.entities[e] = info
			ps.shapes[info.shape] = e
			bodyComp.Body = info.body
			bodyComp.Shape = info.shape
		}
		if info.static {
			return
		}

		pos := info.body.Position()
		if pos.X != transform.X || pos.Y != transform.Y {
			info.body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
		}
		info.body.SetAngle(transform.Rotation)
		info.body.SetAngularVelocity(0)

		info.velocity = cp.Vector{}
		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			info.velocity = cp.Vector{X: vel.X, Y: vel.Y}
		}
	})
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	center := cp.Vector{X: transform.X, Y: transform.Y}

	if bodyComp.Type == component.BodyStatic {
		static := ps.space.StaticBody
		var shape *cp.Shape
		switch bodyComp.Collider {
		case component.ColliderBall:
			shape = cp.NewCircle(static, bodyComp.Radius, center)
		case component.ColliderCapsule:
			half := cp.Vector{Y: bodyComp.HalfLength}.Rotate(cp.ForAngle(transform.Rotation))
			shape = cp.NewSegment(static, center.Sub(half), center.Add(half), bodyComp.Radius)
		default:
			bb := cp.BB{
				L: center.X - bodyComp.HalfWidth,
				B: center.Y - bodyComp.HalfHeight,
				R: center.X + bodyComp.HalfWidth,
				T: center.Y + bodyComp.HalfHeight,
			}
			shape = cp.NewBox2(static, bb, 0)
		}
		ps.configureShape(shape, bodyComp)
		ps.space.AddShape(shape)
		return &bodyInfo{body: static, shape: shape, static: true}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	var moment float64
	switch bodyComp.Collider {
	case component.ColliderBall:
		moment = cp.MomentForCircle(mass, 0, bodyComp.Radius, cp.Vector{})
	case component.ColliderCapsule:
		moment = cp.MomentForSegment(mass, cp.Vector{Y: -bodyComp.HalfLength}, cp.Vector{Y: bodyComp.HalfLength}, bodyComp.Radius)
	default:
		moment = cp.MomentForBox(mass, bodyComp.HalfWidth*2, bodyComp.HalfHeight*2)
	}
	if bodyComp.FixedRotation {
		moment = math.Inf(1)
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(center)
	body.SetAngle(transform.Rotation)

	var shape *cp.Shape
	switch bodyComp.Collider {
	case component.ColliderBall:
		shape = cp.NewCircle(body, bodyComp.Radius, cp.Vector{})
	case component.ColliderCapsule:
		shape = cp.NewSegment(body, cp.Vector{Y: -bodyComp.HalfLength}, cp.Vector{Y: bodyComp.HalfLength}, bodyComp.Radius)
	default:
		shape = cp.NewBox(body, bodyComp.HalfWidth*2, bodyComp.HalfHeight*2, 0)
	}
	ps.configureShape(shape, bodyComp)

	info := &bodyInfo{body: body, shape: shape}
	body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		body.SetVelocityVector(info.velocity)
	})

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return info
}

func (ps *PhysicsSystem) configureShape(shape *cp.Shape, bodyComp *component.PhysicsBody) {
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(0)
	shape.SetSensor(bodyComp.Sensor)
	shape.SetCollisionType(collisionTypeEntity)
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static || !w.IsAlive(e) {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
	}
}

// cleanupEntities removes the shapes and bodies of entities that died or lost
// their PhysicsBody since the last tick.
func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		ps.space.RemoveShape(info.shape)
		delete(ps.shapes, info.shape)
		if !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
