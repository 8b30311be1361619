// Package object defines the simulated entities and the contract they share.
package object

import (
	"math/rand"

	"github.com/bdamage/Astroid-Classic/internal/geom"
)

// Control carries the player commands applied during one tick.
// Turn/thrust/fire are level-triggered ("is held"); the special-weapon and
// shield keys are edge-triggered ("was just pressed").
type Control struct {
	Thrust      bool
	Left        bool
	Right       bool
	Fire        bool
	SpecialJust bool
	ShieldJust  bool
}

// Context provides all the information an entity needs during update.
// References inside it are valid for the duration of one call only and
// must not be cached across ticks.
type Context struct {
	DT          float64 // Frame delta in seconds, clamped by the caller
	Now         float64 // Simulation clock in seconds
	Bounds      geom.Size
	Control     Control
	PlayerPos   geom.Vec // Last known ship position (AI steering target)
	PlayerAlive bool
	Rand        *rand.Rand

	// FindTarget locates the nearest homing candidate to a position.
	// May be nil; may return nil when no candidate exists.
	FindTarget func(from geom.Vec) *Body
}

// Entity is the contract every simulated object fulfils.
type Entity interface {
	// Update advances the entity by ctx.DT seconds. It never fails for
	// finite input; removal is signalled through the active flag.
	Update(ctx *Context)

	// Hull returns the entity's kinematic state and liveness flag.
	Hull() *Body
}

// Body holds the kinematic state and liveness flag shared by every entity.
// An inactive body is collision-transparent and pending removal at the
// next prune point.
type Body struct {
	Pos     geom.Vec
	Vel     geom.Vec
	Heading float64
	Radius  float64
	gone    bool
}

// Hull returns the body itself, letting entity structs satisfy Entity by
// embedding Body.
func (b *Body) Hull() *Body {
	return b
}

// Active reports whether the body still participates in the simulation.
func (b *Body) Active() bool {
	return !b.gone
}

// Deactivate marks the body for removal. Idempotent.
func (b *Body) Deactivate() {
	b.gone = true
}

// Overlaps reports whether both bodies are active and their collision
// circles intersect.
func (b *Body) Overlaps(o *Body) bool {
	if b.gone || o.gone {
		return false
	}
	return geom.CirclesOverlap(b.Pos, b.Radius, o.Pos, o.Radius)
}

// Move advances the position by the current velocity.
func (b *Body) Move(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// Wrap folds the position back into [-radius, bound+radius] on each axis
// independently, so an entity fully leaves one edge before reappearing at
// the opposite one.
func (b *Body) Wrap(bounds geom.Size) {
	span := bounds.W + 2*b.Radius
	if b.Pos.X < -b.Radius {
		b.Pos.X += span
	} else if b.Pos.X > bounds.W+b.Radius {
		b.Pos.X -= span
	}

	span = bounds.H + 2*b.Radius
	if b.Pos.Y < -b.Radius {
		b.Pos.Y += span
	} else if b.Pos.Y > bounds.H+b.Radius {
		b.Pos.Y -= span
	}
}
