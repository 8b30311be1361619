package object

import (
	"math"
	"math/rand"

	"github.com/bdamage/Astroid-Classic/internal/geom"
)

// AsteroidSize is the size category of an asteroid. Splitting steps strictly
// downward until the smallest class.
type AsteroidSize int

const (
	AsteroidSmall  AsteroidSize = 1
	AsteroidMedium AsteroidSize = 2
	AsteroidLarge  AsteroidSize = 3
)

// Per-size tuning. Smaller rocks are faster and worth more.
var asteroidRadii = map[AsteroidSize]float64{
	AsteroidSmall:  1.6,
	AsteroidMedium: 3.2,
	AsteroidLarge:  5.2,
}

var asteroidSpeeds = map[AsteroidSize]float64{
	AsteroidSmall:  16.0,
	AsteroidMedium: 11.0,
	AsteroidLarge:  7.0,
}

var asteroidScores = map[AsteroidSize]int{
	AsteroidSmall:  100,
	AsteroidMedium: 50,
	AsteroidLarge:  20,
}

// Asteroid is a destructible space rock.
type Asteroid struct {
	Body
	Size       AsteroidSize
	Spin       float64   // Rotation speed (radians/sec)
	Shape      []float64 // Vertex distances from center (irregular outline)
	Protection float64   // Seconds of spawn invulnerability remaining

	speedScale float64 // Difficulty multiplier, inherited by fragments
}

// NewAsteroid creates an asteroid at pos with the given size. Direction is
// random if angle < 0. speedScale multiplies the base speed of this rock and
// of every fragment split off it.
func NewAsteroid(pos geom.Vec, size AsteroidSize, angle, speedScale float64, rng *rand.Rand) *Asteroid {
	radius := asteroidRadii[size]
	speed := asteroidSpeeds[size] * speedScale * (0.7 + rng.Float64()*0.6)

	if angle < 0 {
		angle = rng.Float64() * 2 * math.Pi
	}

	// Irregular polygon outline: 8-12 vertices varied ±30%
	verts := 8 + rng.Intn(5)
	shape := make([]float64, verts)
	for i := range shape {
		shape[i] = radius * (0.7 + rng.Float64()*0.6)
	}

	a := &Asteroid{
		Size:       size,
		Spin:       (rng.Float64() - 0.5) * 2.0,
		Shape:      shape,
		speedScale: speedScale,
	}
	a.Pos = pos
	a.Vel = geom.FromAngle(angle).Scale(speed)
	a.Heading = rng.Float64() * 2 * math.Pi
	a.Radius = radius
	return a
}

// NewAsteroidAtEdge creates an asteroid on a random screen edge, aimed
// roughly at the center, carrying protection seconds of spawn invulnerability.
func NewAsteroidAtEdge(bounds geom.Size, size AsteroidSize, speedScale, protection float64, rng *rand.Rand) *Asteroid {
	var pos geom.Vec
	switch rng.Intn(4) {
	case 0: // Top
		pos = geom.V(rng.Float64()*bounds.W, 1)
	case 1: // Bottom
		pos = geom.V(rng.Float64()*bounds.W, bounds.H-1)
	case 2: // Left
		pos = geom.V(1, rng.Float64()*bounds.H)
	default: // Right
		pos = geom.V(bounds.W-1, rng.Float64()*bounds.H)
	}

	// ±45° variation around the bearing to center
	angle := bounds.Center().Sub(pos).Angle()
	angle += (rng.Float64() - 0.5) * math.Pi / 2

	a := NewAsteroid(pos, size, angle, speedScale, rng)
	a.Protection = protection
	return a
}

// Score returns the kill score of this size class.
func (a *Asteroid) Score() int {
	return asteroidScores[a.Size]
}

// Protected reports whether spawn protection is still active.
func (a *Asteroid) Protected() bool {
	return a.Protection > 0
}

// Mass returns the collision mass used by the rock-on-rock bounce.
func (a *Asteroid) Mass() float64 {
	return a.Radius * a.Radius
}

// Split returns the fragments released when this asteroid is destroyed: two
// rocks of the next smaller size with fresh random velocities, or none for
// the smallest class.
func (a *Asteroid) Split(rng *rand.Rand) []*Asteroid {
	if a.Size <= AsteroidSmall {
		return nil
	}
	frags := make([]*Asteroid, 2)
	for i := range frags {
		frags[i] = NewAsteroid(a.Pos, a.Size-1, -1, a.speedScale, rng)
	}
	return frags
}

// Update advances spin, spawn protection and drift.
func (a *Asteroid) Update(ctx *Context) {
	dt := ctx.DT

	if a.Protection > 0 {
		a.Protection -= dt
		if a.Protection < 0 {
			a.Protection = 0
		}
	}

	a.Heading += a.Spin * dt
	a.Move(dt)
	a.Wrap(ctx.Bounds)
}
