package world

import (
	"math"
	"testing"
)

func TestNormReturnsUnitLength(t *testing.T) {
	cases := []Vec2{
		{1, 0},
		{3, 4},
		{-120.5, 33.25},
		{0.001, -0.002},
		{1e-6, 1e-6},
	}

	for _, v := range cases {
		n := v.Norm()
		if d := math.Abs(n.Len() - 1); d > 1e-6 {
			t.Fatalf("Norm(%+v) length off by %.9f", v, d)
		}
	}
}

func TestNormZeroVectorIsZero(t *testing.T) {
	if got := (Vec2{}).Norm(); got != (Vec2{}) {
		t.Fatalf("Norm of zero vector should be zero, got %+v", got)
	}
	// below the degeneracy threshold there is no meaningful direction
	if got := (Vec2{1e-12, -1e-12}).Norm(); got != (Vec2{}) {
		t.Fatalf("Norm of near-zero vector should be zero, got %+v", got)
	}
}

func TestPerpIsOrthogonal(t *testing.T) {
	v := Vec2{3.5, -2.25}
	if dot := v.Dot(v.Perp()); math.Abs(dot) > 1e-9 {
		t.Fatalf("Perp not orthogonal: dot=%.9f", dot)
	}
}

func TestRotatePreservesLength(t *testing.T) {
	v := Vec2{5, 12}
	for _, ang := range []float64{0, math.Pi / 3, -math.Pi / 2, 2.7} {
		r := v.Rotate(ang)
		if d := math.Abs(r.Len() - v.Len()); d > 1e-9 {
			t.Fatalf("Rotate(%.3f) changed length by %.9f", ang, d)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(5, 0, 3); got != 3 {
		t.Fatalf("clamp high: got %v", got)
	}
	if got := clamp(-1, 0, 3); got != 0 {
		t.Fatalf("clamp low: got %v", got)
	}
	if got := clamp(2, 0, 3); got != 2 {
		t.Fatalf("clamp mid: got %v", got)
	}
}
