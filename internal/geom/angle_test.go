package geom

import (
	"math"
	"testing"
)

func TestAngleDiff_TakesShortWay(t *testing.T) {
	cases := []struct {
		a, b, want float64
	}{
		{0, math.Pi / 2, math.Pi / 2},
		{math.Pi / 2, 0, -math.Pi / 2},
		{-3, 3, 6 - 2*math.Pi}, // Crossing ±π is shorter backwards
		{3, -3, 2*math.Pi - 6}, // And forwards from the other side
		{0, 2 * math.Pi, 0},
	}
	for _, c := range cases {
		got := AngleDiff(c.a, c.b)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("AngleDiff(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestTurnToward_ClampsToStep(t *testing.T) {
	got := TurnToward(0, math.Pi, 0.1)
	if math.Abs(got-0.1) > 1e-9 {
		t.Errorf("large turn not clamped: got %v, want 0.1", got)
	}

	got = TurnToward(0, 0.05, 0.1)
	if math.Abs(got-0.05) > 1e-9 {
		t.Errorf("small turn overshot: got %v, want 0.05", got)
	}

	got = TurnToward(0.2, 0, 0.1)
	if math.Abs(got-0.1) > 1e-9 {
		t.Errorf("negative turn not clamped: got %v, want 0.1", got)
	}
}
