package geom

import "math"

// AngleDiff returns the signed shortest rotation from a to b, in [-π, π].
func AngleDiff(a, b float64) float64 {
	d := math.Mod(b-a, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// TurnToward rotates cur toward want by at most step radians, taking the
// short way around.
func TurnToward(cur, want, step float64) float64 {
	d := AngleDiff(cur, want)
	if d > step {
		d = step
	} else if d < -step {
		d = -step
	}
	return cur + d
}
