package object

import (
	"math"
	"testing"

	"github.com/bdamage/Astroid-Classic/internal/geom"
)

// TestBulletPiercedSet_NeverSameTargetTwice tests pierced-set membership is
// per target and exclusive.
func TestBulletPiercedSet_NeverSameTargetTwice(t *testing.T) {
	b := NewBullet(geom.V(0, 0), 0, geom.Vec{}, 1, true)
	t1 := &Body{}
	t2 := &Body{}

	if b.AlreadyHit(t1) {
		t.Error("fresh bullet claims to have hit t1")
	}

	b.MarkHit(t1)
	if !b.AlreadyHit(t1) {
		t.Error("t1 missing from pierced set after MarkHit")
	}
	if b.AlreadyHit(t2) {
		t.Error("t2 wrongly in pierced set")
	}

	b.MarkHit(t2)
	if !b.AlreadyHit(t1) || !b.AlreadyHit(t2) {
		t.Error("pierced set lost a member")
	}
}

// TestBulletUpdate_ExpiresAfterLifetime tests the flight-time limit.
func TestBulletUpdate_ExpiresAfterLifetime(t *testing.T) {
	b := NewBullet(geom.V(10, 10), 0, geom.Vec{}, 1, false)

	b.Update(&Context{DT: BulletLifetime + 0.1, Bounds: geom.Size{W: 80, H: 60}})

	if b.Active() {
		t.Error("bullet outlived its lifetime")
	}
}

// TestNewBullet_InheritsShooterVelocity tests muzzle velocity stacks on the
// shooter's momentum.
func TestNewBullet_InheritsShooterVelocity(t *testing.T) {
	b := NewBullet(geom.V(0, 0), 0, geom.V(10, -5), 1, false)

	if math.Abs(b.Vel.X-(BulletSpeed+10)) > 1e-9 {
		t.Errorf("Vel.X = %v, want %v", b.Vel.X, BulletSpeed+10)
	}
	if math.Abs(b.Vel.Y-(-5)) > 1e-9 {
		t.Errorf("Vel.Y = %v, want -5", b.Vel.Y)
	}
}
