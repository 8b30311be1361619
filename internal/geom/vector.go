// Package geom provides 2D vector math and circle overlap utilities.
package geom

import "math"

// Vec is a 2D vector. Operations return new values; a Vec is never
// mutated in place.
type Vec struct {
	X, Y float64
}

// V constructs a vector from its components.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// FromAngle returns the unit vector pointing at angle (radians, 0 = +X,
// clockwise positive in screen space).
func FromAngle(angle float64) Vec {
	return Vec{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the magnitude of v.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSq returns the squared magnitude of v.
// Use this when comparing lengths to avoid the sqrt cost.
func (v Vec) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the direction of v.
// The zero vector normalizes to itself.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Angle returns the direction of v in radians.
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// DistTo returns the Euclidean distance from v to o.
func (v Vec) DistTo(o Vec) float64 {
	return v.Sub(o).Len()
}

// DistSqTo returns the squared distance from v to o.
func (v Vec) DistSqTo(o Vec) float64 {
	return v.Sub(o).LenSq()
}

// ClampLen returns v shortened to max if its magnitude exceeds max.
func (v Vec) ClampLen(max float64) Vec {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}

// Size holds world dimensions.
type Size struct {
	W, H float64
}

// Center returns the midpoint of the area.
func (s Size) Center() Vec {
	return Vec{X: s.W / 2, Y: s.H / 2}
}

// CirclesOverlap reports whether two circles overlap, i.e. the distance
// between their centers is less than the sum of their radii.
func CirclesOverlap(c1 Vec, r1 float64, c2 Vec, r2 float64) bool {
	minDist := r1 + r2
	return c1.DistSqTo(c2) < minDist*minDist
}
