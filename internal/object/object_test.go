package object

import (
	"testing"

	"github.com/bdamage/Astroid-Classic/internal/geom"
)

// TestBodyOverlaps_InactiveIsTransparent tests that a deactivated body stops
// colliding even when circles intersect.
func TestBodyOverlaps_InactiveIsTransparent(t *testing.T) {
	a := &Body{Radius: 3}
	b := &Body{Radius: 3}

	if !a.Overlaps(b) {
		t.Fatal("coincident active bodies should overlap")
	}

	b.Deactivate()
	if a.Overlaps(b) {
		t.Error("inactive body still collides")
	}
	if b.Active() {
		t.Error("Deactivate did not clear the active flag")
	}
}

// TestBodyWrap_FoldsAcrossEdges tests the wrap window [-radius, bound+radius].
func TestBodyWrap_FoldsAcrossEdges(t *testing.T) {
	bounds := geom.Size{W: 80, H: 60}

	b := &Body{Radius: 2}
	b.Pos = geom.V(-2.5, 10)
	b.Wrap(bounds)
	if b.Pos.X != 81.5 {
		t.Errorf("left exit should reappear on the right: got X=%v, want 81.5", b.Pos.X)
	}

	b.Pos = geom.V(10, 62.5)
	b.Wrap(bounds)
	if b.Pos.Y != -1.5 {
		t.Errorf("bottom exit should reappear on top: got Y=%v, want -1.5", b.Pos.Y)
	}
}

// TestBodyWrap_InsideWindowUntouched tests that positions still partially on
// screen are left alone.
func TestBodyWrap_InsideWindowUntouched(t *testing.T) {
	bounds := geom.Size{W: 80, H: 60}
	b := &Body{Radius: 2}
	b.Pos = geom.V(-1.9, 61.9)

	b.Wrap(bounds)

	if b.Pos.X != -1.9 || b.Pos.Y != 61.9 {
		t.Errorf("position inside the wrap window moved: got %v", b.Pos)
	}
}
