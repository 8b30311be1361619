package object

import (
	"math"
	"math/rand"

	"github.com/bdamage/Astroid-Classic/internal/geom"
)

// EnemyKind selects hull and behavior.
type EnemyKind int

const (
	EnemyScout  EnemyKind = iota // Fast, fragile, weaves in head-on
	EnemyBomber                  // Slow, armored, drifts in
)

func (k EnemyKind) String() string {
	if k == EnemyBomber {
		return "bomber"
	}
	return "scout"
}

type enemyStats struct {
	radius float64
	speed  float64
	turn   float64 // Steering rate (radians/sec)
	hp     int
	score  int
}

var enemyTable = map[EnemyKind]enemyStats{
	EnemyScout:  {radius: 1.8, speed: 18.0, turn: 3.0, hp: 1, score: 150},
	EnemyBomber: {radius: 3.0, speed: 9.0, turn: 1.2, hp: 3, score: 250},
}

// Enemy is a hostile ship that homes in on the player and deals contact
// damage. It never shoots; closing the distance is the attack.
type Enemy struct {
	Body
	Kind EnemyKind
	HP   int

	speed float64
	turn  float64
	score int
	weave float64 // Phase offset for the scout zig-zag
}

// NewEnemy creates an enemy of the given kind at pos. speedScale is the
// difficulty multiplier for its cruise speed.
func NewEnemy(pos geom.Vec, kind EnemyKind, speedScale float64, rng *rand.Rand) *Enemy {
	stats := enemyTable[kind]
	e := &Enemy{
		Kind:  kind,
		HP:    stats.hp,
		speed: stats.speed * speedScale,
		turn:  stats.turn,
		score: stats.score,
		weave: rng.Float64() * 2 * math.Pi,
	}
	e.Pos = pos
	e.Heading = rng.Float64() * 2 * math.Pi
	e.Radius = stats.radius
	return e
}

// Score returns the kill score for this enemy.
func (e *Enemy) Score() int {
	return e.score
}

// TakeDamage applies hit damage and reports whether the enemy is dead. The
// caller performs the removal.
func (e *Enemy) TakeDamage(n int) bool {
	e.HP -= n
	return e.HP <= 0
}

// Update steers toward the player and advances the hull.
func (e *Enemy) Update(ctx *Context) {
	dt := ctx.DT

	if ctx.PlayerAlive {
		want := ctx.PlayerPos.Sub(e.Pos).Angle()
		if e.Kind == EnemyScout {
			// Weave sideways while closing in
			want += 0.6 * math.Sin(ctx.Now*3+e.weave)
		}
		e.Heading = geom.TurnToward(e.Heading, want, e.turn*dt)
	}

	e.Vel = geom.FromAngle(e.Heading).Scale(e.speed)
	e.Move(dt)
	e.Wrap(ctx.Bounds)
}
