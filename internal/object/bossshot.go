package object

import (
	"github.com/bdamage/Astroid-Classic/internal/geom"
)

// Boss projectile tuning.
const (
	BossShotSpeed    = 26.0
	BossShotLifetime = 3.5
	BossShotRadius   = 0.8
)

// BossShot is a projectile emitted by a boss attack pattern.
type BossShot struct {
	Body
	Lifetime float64
}

// NewBossShot creates a shot at pos traveling in direction angle.
func NewBossShot(pos geom.Vec, angle float64) *BossShot {
	s := &BossShot{Lifetime: BossShotLifetime}
	s.Pos = pos
	s.Vel = geom.FromAngle(angle).Scale(BossShotSpeed)
	s.Heading = angle
	s.Radius = BossShotRadius
	return s
}

// Update moves the shot and expires it.
func (s *BossShot) Update(ctx *Context) {
	s.Lifetime -= ctx.DT
	if s.Lifetime <= 0 {
		s.Deactivate()
		return
	}
	s.Move(ctx.DT)
	s.Wrap(ctx.Bounds)
}
