package object

import (
	"github.com/bdamage/Astroid-Classic/internal/geom"
)

// Bullet tuning.
const (
	BulletSpeed    = 55.0
	BulletLifetime = 1.8
	BulletRadius   = 0.5
)

// Bullet is a shot fired by the player. A piercing bullet keeps flying
// through targets, recording each one so it never damages the same target
// twice in its flight.
type Bullet struct {
	Body
	Damage   int
	Piercing bool
	Lifetime float64

	pierced map[*Body]struct{}
}

// NewBullet creates a bullet at pos traveling in direction angle, inheriting
// the shooter's velocity.
func NewBullet(pos geom.Vec, angle float64, shooterVel geom.Vec, damage int, piercing bool) *Bullet {
	b := &Bullet{
		Damage:   damage,
		Piercing: piercing,
		Lifetime: BulletLifetime,
	}
	b.Pos = pos
	b.Vel = shooterVel.Add(geom.FromAngle(angle).Scale(BulletSpeed))
	b.Heading = angle
	b.Radius = BulletRadius
	return b
}

// MarkHit records a damaged target in the pierced set.
func (b *Bullet) MarkHit(t *Body) {
	if b.pierced == nil {
		b.pierced = make(map[*Body]struct{}, 4)
	}
	b.pierced[t] = struct{}{}
}

// AlreadyHit reports whether this bullet has damaged t before.
func (b *Bullet) AlreadyHit(t *Body) bool {
	_, ok := b.pierced[t]
	return ok
}

// Update moves the bullet and expires it.
func (b *Bullet) Update(ctx *Context) {
	b.Lifetime -= ctx.DT
	if b.Lifetime <= 0 {
		b.Deactivate()
		return
	}
	b.Move(ctx.DT)
	b.Wrap(ctx.Bounds)
}
