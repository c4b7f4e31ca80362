package common

import (
	"math"
	"testing"
)

func TestFacingRotationAimsLocalNegativeY(t *testing.T) {
	cases := []struct {
		name   string
		dx, dy float64
	}{
		{name: "up", dx: 0, dy: 1},
		{name: "right", dx: 1, dy: 0},
		{name: "down-left", dx: -3, dy: -4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx, fy := Forward(FacingRotation(tc.dx, tc.dy))
			nx, ny := Normalize(tc.dx, tc.dy)
			// Sprites are drawn facing local -Y, so Forward points away from the target.
			if math.Abs(fx+nx) > 1e-9 || math.Abs(fy+ny) > 1e-9 {
				t.Fatalf("forward=(%v,%v), direction=(%v,%v)", fx, fy, nx, ny)
			}
		})
	}
}

func TestNormalizeZero(t *testing.T) {
	if x, y := Normalize(0, 0); x != 0 || y != 0 {
		t.Fatalf("expected zero vector, got (%v,%v)", x, y)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
	if got := Clamp(1, 4, 2); got != 3 {
		t.Fatalf("inverted range should centre, got %v", got)
	}
}
