package object

import (
	"testing"

	"github.com/bdamage/Astroid-Classic/internal/geom"
)

// TestShieldAbsorb_ExactlyThreeHits tests the shield soaks its full hit
// budget and is discarded on the last one.
func TestShieldAbsorb_ExactlyThreeHits(t *testing.T) {
	owner := &Body{Radius: 2}
	s := NewShield(owner, 0)

	for i := 0; i < ShieldHitPoints; i++ {
		if !s.Absorb(float64(i)) {
			t.Fatalf("absorb %d refused with hit points left", i+1)
		}
	}

	if s.Active() {
		t.Error("shield still active after absorbing all hits")
	}
	if s.Absorb(5) {
		t.Error("spent shield still absorbing")
	}
}

// TestShieldUpdate_CountdownBeatsHitPoints tests timeout discards the shield
// even with points remaining.
func TestShieldUpdate_CountdownBeatsHitPoints(t *testing.T) {
	owner := &Body{Radius: 2}
	s := NewShield(owner, 0)

	s.Update(&Context{DT: ShieldDuration + 0.1, Bounds: geom.Size{W: 80, H: 60}})

	if s.Active() {
		t.Error("shield survived its countdown")
	}
	if s.Hits != ShieldHitPoints {
		t.Errorf("timeout cost hit points: %d left, want %d", s.Hits, ShieldHitPoints)
	}
}

// TestShieldUpdate_DropsWithDeadOwner tests the non-owning back-reference:
// the shield discards itself the moment the referent is inactive.
func TestShieldUpdate_DropsWithDeadOwner(t *testing.T) {
	owner := &Body{Radius: 2}
	s := NewShield(owner, 0)

	owner.Deactivate()
	s.Update(&Context{DT: 0.016, Bounds: geom.Size{W: 80, H: 60}})

	if s.Active() {
		t.Error("shield outlived its owner")
	}
}

// TestShieldUpdate_FollowsOwner tests the barrier tracks the ship's hull.
func TestShieldUpdate_FollowsOwner(t *testing.T) {
	owner := &Body{Radius: 2}
	owner.Pos = geom.V(5, 5)
	s := NewShield(owner, 0)

	owner.Pos = geom.V(9, 12)
	s.Update(&Context{DT: 0.016, Bounds: geom.Size{W: 80, H: 60}})

	if s.Pos != owner.Pos {
		t.Errorf("shield at %v, owner at %v", s.Pos, owner.Pos)
	}
	if s.Radius <= owner.Radius {
		t.Errorf("shield radius %v should clear the hull radius %v", s.Radius, owner.Radius)
	}
}
