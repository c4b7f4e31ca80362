package common

import "math"

const (
	BaseWidth  = 960
	BaseHeight = 540

	TPS = 60
	// TickDuration is the fixed simulation step in seconds.
	TickDuration = 1.0 / TPS
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}

// Normalize returns the unit vector of (x, y), or zero for a zero vector.
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

// Forward returns the direction a sprite with rotation r faces: the local +Y
// axis rotated counter clockwise by r.
func Forward(r float64) (float64, float64) {
	return -math.Sin(r), math.Cos(r)
}

// FacingRotation is the rotation that makes Forward point along (dx, dy).
func FacingRotation(dx, dy float64) float64 {
	return math.Atan2(dy, dx) + math.Pi/2
}
