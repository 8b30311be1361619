package object

import (
	"math"

	"github.com/bdamage/Astroid-Classic/internal/geom"
)

// Ship tuning.
const (
	ShipRadius   = 2.2
	shipThrust   = 40.0 // Acceleration units per second²
	shipTurnRate = 4.2  // Radians per second
	shipMaxSpeed = 28.0
	shipDrag     = 0.5 // Fraction of speed kept per second when coasting
)

// Ship is the player-controlled vessel.
type Ship struct {
	Body
	Thrusting bool // Engine burned this tick (renderer flame)

	invulnUntil float64
}

// NewShip creates a ship at pos, pointing up, at rest.
func NewShip(pos geom.Vec) *Ship {
	s := &Ship{}
	s.Pos = pos
	s.Heading = -math.Pi / 2
	s.Radius = ShipRadius
	return s
}

// Update handles rotation, thrust, drag and momentum.
func (s *Ship) Update(ctx *Context) {
	dt := ctx.DT

	if ctx.Control.Left {
		s.Heading -= shipTurnRate * dt
	}
	if ctx.Control.Right {
		s.Heading += shipTurnRate * dt
	}

	// Keep the angle in [-π, π]
	for s.Heading > math.Pi {
		s.Heading -= 2 * math.Pi
	}
	for s.Heading < -math.Pi {
		s.Heading += 2 * math.Pi
	}

	s.Thrusting = ctx.Control.Thrust
	if s.Thrusting {
		s.Vel = s.Vel.Add(geom.FromAngle(s.Heading).Scale(shipThrust * dt))
	} else {
		s.Vel = s.Vel.Scale(math.Pow(shipDrag, dt))
	}
	s.Vel = s.Vel.ClampLen(shipMaxSpeed)

	s.Move(dt)
	s.Wrap(ctx.Bounds)
}

// Nose returns the muzzle position at the tip of the hull.
func (s *Ship) Nose() geom.Vec {
	return s.Pos.Add(geom.FromAngle(s.Heading).Scale(s.Radius))
}

// Invulnerable reports whether spawn or teleport protection is active.
func (s *Ship) Invulnerable(now float64) bool {
	return now < s.invulnUntil
}

// Protect grants invulnerability for d seconds from now. A shorter new
// window never cuts an existing one short.
func (s *Ship) Protect(now, d float64) {
	if until := now + d; until > s.invulnUntil {
		s.invulnUntil = until
	}
}

// ProtectionLeft returns the remaining invulnerability window, which the
// renderer uses for its blink cadence.
func (s *Ship) ProtectionLeft(now float64) float64 {
	if left := s.invulnUntil - now; left > 0 {
		return left
	}
	return 0
}
