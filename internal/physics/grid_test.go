package physics

import (
	"testing"

	"github.com/bdamage/Astroid-Classic/internal/geom"
)

// TestGrid_FindsNeighborsAcrossTheSeam tests the 3x3 query wraps at the
// field edges.
func TestGrid_FindsNeighborsAcrossTheSeam(t *testing.T) {
	g := NewGrid(geom.Size{W: 80, H: 60}, 10)
	g.Insert(geom.V(1, 1), 0)
	g.Insert(geom.V(79, 59), 1) // Opposite corner, adjacent through the wrap
	g.Insert(geom.V(40, 30), 2) // Center, out of range

	seen := map[int]bool{}
	g.ForEachNear(geom.V(1, 1), func(idx int) bool {
		seen[idx] = true
		return false
	})

	if !seen[0] || !seen[1] {
		t.Errorf("wrap neighborhood missed corners: %v", seen)
	}
	if seen[2] {
		t.Error("query leaked far-away cells")
	}
}

// TestGrid_EarlyStop tests fn returning true halts iteration.
func TestGrid_EarlyStop(t *testing.T) {
	g := NewGrid(geom.Size{W: 80, H: 60}, 10)
	for i := 0; i < 5; i++ {
		g.Insert(geom.V(5, 5), i)
	}

	calls := 0
	g.ForEachNear(geom.V(5, 5), func(idx int) bool {
		calls++
		return true
	})

	if calls != 1 {
		t.Errorf("iteration continued after the stop: %d calls", calls)
	}
}

// TestGrid_ResetEmptiesEveryCell tests reuse between frames.
func TestGrid_ResetEmptiesEveryCell(t *testing.T) {
	g := NewGrid(geom.Size{W: 80, H: 60}, 10)
	g.Insert(geom.V(5, 5), 0)
	g.Insert(geom.V(75, 55), 1)

	g.Reset()

	found := false
	g.ForEachNear(geom.V(5, 5), func(idx int) bool {
		found = true
		return false
	})
	if found {
		t.Error("entries survived Reset")
	}
}

// TestGrid_ToleratesWrapMargin tests positions slightly outside the field
// are clamped instead of panicking.
func TestGrid_ToleratesWrapMargin(t *testing.T) {
	g := NewGrid(geom.Size{W: 80, H: 60}, 10)
	g.Insert(geom.V(-1.5, 30), 0)
	g.Insert(geom.V(81.2, 61.9), 1)

	seen := map[int]bool{}
	g.ForEachNear(geom.V(0, 30), func(idx int) bool {
		seen[idx] = true
		return false
	})

	if !seen[0] {
		t.Error("margin position not clamped into the edge cell")
	}
}
