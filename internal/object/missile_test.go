package object

import (
	"testing"

	"github.com/bdamage/Astroid-Classic/internal/geom"
)

// TestMissileUpdate_ReacquiresDeadTarget tests the weak reference is dropped
// and replaced the tick the referent goes inactive.
func TestMissileUpdate_ReacquiresDeadTarget(t *testing.T) {
	old := &Body{}
	old.Pos = geom.V(50, 0)
	fresh := &Body{}
	fresh.Pos = geom.V(0, 30)

	m := NewMissile(geom.V(0, 0), 0)
	m.target = old
	old.Deactivate()

	m.Update(&Context{
		DT:         0.016,
		Bounds:     geom.Size{W: 100, H: 100},
		FindTarget: func(geom.Vec) *Body { return fresh },
	})

	if m.Target() != fresh {
		t.Error("missile did not re-acquire after its target died")
	}
}

// TestMissileUpdate_StraightWithoutTarget tests the missile keeps its heading
// when no candidate exists.
func TestMissileUpdate_StraightWithoutTarget(t *testing.T) {
	m := NewMissile(geom.V(10, 10), 0)

	m.Update(&Context{
		DT:         0.1,
		Bounds:     geom.Size{W: 100, H: 100},
		FindTarget: func(geom.Vec) *Body { return nil },
	})

	if m.Heading != 0 {
		t.Errorf("heading drifted with no target: %v", m.Heading)
	}
	if m.Pos.X <= 10 {
		t.Error("missile did not advance")
	}
}

// TestMissileUpdate_SteersTowardTarget tests homing turns the heading the
// right way.
func TestMissileUpdate_SteersTowardTarget(t *testing.T) {
	tgt := &Body{}
	tgt.Pos = geom.V(10, 40)
	m := NewMissile(geom.V(10, 10), 0)

	m.Update(&Context{
		DT:         0.1,
		Bounds:     geom.Size{W: 100, H: 100},
		FindTarget: func(geom.Vec) *Body { return tgt },
	})

	if m.Heading <= 0 {
		t.Errorf("expected a turn toward the target below, heading %v", m.Heading)
	}
}

// TestMissileUpdate_ExpiresAfterLifetime tests fuel runs out.
func TestMissileUpdate_ExpiresAfterLifetime(t *testing.T) {
	m := NewMissile(geom.V(10, 10), 0)

	m.Update(&Context{DT: MissileLifetime + 0.1, Bounds: geom.Size{W: 100, H: 100}})

	if m.Active() {
		t.Error("missile outlived its lifetime")
	}
}
