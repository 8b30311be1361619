package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestVecOps_AddSubScale(t *testing.T) {
	a := V(3, -1)
	b := V(1, 2)

	if got := a.Add(b); got != V(4, 1) {
		t.Errorf("Add: expected (4,1), got %v", got)
	}
	if got := a.Sub(b); got != V(2, -3) {
		t.Errorf("Sub: expected (2,-3), got %v", got)
	}
	if got := b.Scale(2.5); got != V(2.5, 5) {
		t.Errorf("Scale: expected (2.5,5), got %v", got)
	}
	// Operands must be untouched.
	if a != V(3, -1) || b != V(1, 2) {
		t.Errorf("operands mutated: a=%v b=%v", a, b)
	}
}

func TestFromAngle_CardinalDirections(t *testing.T) {
	right := FromAngle(0)
	if !nearlyEqual(right.X, 1) || !nearlyEqual(right.Y, 0) {
		t.Errorf("FromAngle(0): expected (1,0), got %v", right)
	}

	down := FromAngle(math.Pi / 2).Scale(2) // +Y points down in screen space
	if !nearlyEqual(down.X, 0) || !nearlyEqual(down.Y, 2) {
		t.Errorf("FromAngle(pi/2)*2: expected (0,2), got %v", down)
	}
}

func TestNormalize_ZeroVectorIsSafe(t *testing.T) {
	if got := (Vec{}).Normalize(); got != (Vec{}) {
		t.Errorf("Normalize of zero vector: expected zero, got %v", got)
	}

	n := V(3, 4).Normalize()
	if !nearlyEqual(n.Len(), 1) {
		t.Errorf("Normalize: expected unit length, got %v", n.Len())
	}
}

func TestClampLen_OnlyShortensLongVectors(t *testing.T) {
	short := V(1, 0)
	if got := short.ClampLen(5); got != short {
		t.Errorf("ClampLen should not change short vectors, got %v", got)
	}

	long := V(6, 8) // length 10
	clamped := long.ClampLen(5)
	if !nearlyEqual(clamped.Len(), 5) {
		t.Errorf("ClampLen: expected length 5, got %v", clamped.Len())
	}
	if !nearlyEqual(clamped.Angle(), long.Angle()) {
		t.Errorf("ClampLen changed direction: %v vs %v", clamped.Angle(), long.Angle())
	}
}

func TestCirclesOverlap_BoundaryIsNotOverlap(t *testing.T) {
	a := V(0, 0)
	b := V(10, 0)

	if CirclesOverlap(a, 4, b, 6) {
		t.Error("touching circles (dist == r1+r2) must not count as overlap")
	}
	if !CirclesOverlap(a, 4.5, b, 6) {
		t.Error("expected overlap when dist < r1+r2")
	}
	if CirclesOverlap(a, 2, b, 2) {
		t.Error("distant circles must not overlap")
	}
}
