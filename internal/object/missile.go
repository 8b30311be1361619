package object

import (
	"github.com/bdamage/Astroid-Classic/internal/geom"
)

// Homing missile tuning.
const (
	MissileSpeed    = 32.0
	MissileLifetime = 5.0
	MissileRadius   = 0.9
	MissileDamage   = 2
	missileTurnRate = 3.5 // Radians per second
)

// Missile is a homing projectile fired with the special-weapon key. Its
// target reference is weak: the referent may vanish between frames, at which
// point the missile re-acquires the nearest candidate and keeps flying
// straight until one exists.
type Missile struct {
	Body
	Damage   int
	Lifetime float64

	target *Body
}

// NewMissile creates a missile at pos traveling in direction angle.
func NewMissile(pos geom.Vec, angle float64) *Missile {
	m := &Missile{
		Damage:   MissileDamage,
		Lifetime: MissileLifetime,
	}
	m.Pos = pos
	m.Vel = geom.FromAngle(angle).Scale(MissileSpeed)
	m.Heading = angle
	m.Radius = MissileRadius
	return m
}

// Target returns the current referent, or nil when the missile has none.
func (m *Missile) Target() *Body {
	return m.target
}

// Update re-validates the target, steers toward it, and expires the missile.
func (m *Missile) Update(ctx *Context) {
	m.Lifetime -= ctx.DT
	if m.Lifetime <= 0 {
		m.Deactivate()
		return
	}

	// Drop a dead referent before use, then try to re-acquire
	if m.target != nil && !m.target.Active() {
		m.target = nil
	}
	if m.target == nil && ctx.FindTarget != nil {
		m.target = ctx.FindTarget(m.Pos)
	}

	if m.target != nil {
		want := m.target.Pos.Sub(m.Pos).Angle()
		m.Heading = geom.TurnToward(m.Heading, want, missileTurnRate*ctx.DT)
	}
	m.Vel = geom.FromAngle(m.Heading).Scale(MissileSpeed)

	m.Move(ctx.DT)
	m.Wrap(ctx.Bounds)
}
