package entity

import (
	"fmt"
	"strings"

	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

func physicsBodyFromSpec(spec prefabs.ColliderSpec) (*component.PhysicsBody, error) {
	body := &component.PhysicsBody{
		Radius:        spec.Radius,
		HalfWidth:     spec.HalfWidth,
		HalfHeight:    spec.HalfHeight,
		HalfLength:    spec.HalfLength,
		Mass:          spec.Mass,
		Friction:      spec.Friction,
		Sensor:        spec.Sensor,
		FixedRotation: spec.FixedRotation,
	}

	switch strings.ToLower(spec.Shape) {
	case "", "ball", "circle":
		body.Collider = component.ColliderBall
		if body.Radius <= 0 {
			return nil, fmt.Errorf("ball collider needs a positive radius")
		}
	case "cuboid", "box":
		body.Collider = component.ColliderCuboid
		if body.HalfWidth <= 0 || body.HalfHeight <= 0 {
			return nil, fmt.Errorf("cuboid collider needs positive half extents")
		}
	case "capsule":
		body.Collider = component.ColliderCapsule
		if body.Radius <= 0 || body.HalfLength < 0 {
			return nil, fmt.Errorf("capsule collider needs a positive radius")
		}
	default:
		return nil, fmt.Errorf("unknown collider shape %q", spec.Shape)
	}

	switch strings.ToLower(spec.Body) {
	case "", "dynamic":
		body.Type = component.BodyDynamic
		if body.Mass <= 0 {
			body.Mass = 1
		}
	case "static":
		body.Type = component.BodyStatic
	default:
		return nil, fmt.Errorf("unknown body type %q", spec.Body)
	}

	return body, nil
}

func transformFromSpec(spec prefabs.TransformSpec) *component.Transform {
	t := &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	}
	if t.ScaleX == 0 {
		t.ScaleX = 1
	}
	if t.ScaleY == 0 {
		t.ScaleY = 1
	}
	return t
}
