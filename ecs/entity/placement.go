package entity

import (
	"math"
	"math/rand/v2"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

const (
	// spawnEdgeInset keeps random spawns off the outer ring of the map,
	// where border walls sit and the player cannot reach.
	spawnEdgeInset = 32
	spawnAttempts  = 32
)

// spawnPoint draws a point in [lo, hi) on both axes, narrowed to the map
// bounds when the world has them, that leaves a circle of radius clear of
// every wall. When no clear point turns up the last draw is used.
func spawnPoint(w *ecs.World, rng *rand.Rand, lo, hi, radius float64) (float64, float64) {
	xlo, xhi, ylo, yhi := lo, hi, lo, hi
	if e, ok := ecs.First(w, component.MapBoundsComponent.Kind()); ok {
		b, _ := ecs.Get(w, e, component.MapBoundsComponent.Kind())
		inset := spawnEdgeInset + radius
		xlo, xhi = narrow(xlo, xhi, b.MinX+inset, b.MaxX-inset)
		ylo, yhi = narrow(ylo, yhi, b.MinY+inset, b.MaxY-inset)
	}

	var x, y float64
	for i := 0; i < spawnAttempts; i++ {
		x = randomIn(rng, xlo, xhi)
		y = randomIn(rng, ylo, yhi)
		if !OverlapsWall(w, x, y, radius) {
			break
		}
	}
	return x, y
}

// narrow intersects [lo, hi) with [min, max], keeping the original range
// when they do not overlap.
func narrow(lo, hi, min, max float64) (float64, float64) {
	nlo, nhi := math.Max(lo, min), math.Min(hi, max)
	if nhi <= nlo {
		return lo, hi
	}
	return nlo, nhi
}

// OverlapsWall reports whether a circle at (x, y) touches any wall collider.
func OverlapsWall(w *ecs.World, x, y, radius float64) bool {
	hit := false
	ecs.ForEach3(w, component.WallTagComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, _ *component.WallTag, t *component.Transform, body *component.PhysicsBody) {
		if hit {
			return
		}
		switch body.Collider {
		case component.ColliderBall:
			hit = math.Hypot(x-t.X, y-t.Y) < radius+body.Radius
		case component.ColliderCuboid:
			nx := common.Clamp(x, t.X-body.HalfWidth, t.X+body.HalfWidth)
			ny := common.Clamp(y, t.Y-body.HalfHeight, t.Y+body.HalfHeight)
			hit = math.Hypot(x-nx, y-ny) < radius
		}
	})
	return hit
}

// colliderRadius is the radius of the circle enclosing a collider.
func colliderRadius(body *component.PhysicsBody) float64 {
	switch body.Collider {
	case component.ColliderBall:
		return body.Radius
	case component.ColliderCapsule:
		return body.Radius + body.HalfLength
	default:
		return math.Hypot(body.HalfWidth, body.HalfHeight)
	}
}
