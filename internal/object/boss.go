package object

import (
	"math"
	"math/rand"

	"github.com/bdamage/Astroid-Classic/internal/geom"
)

// Boss tuning.
const (
	BossRadius        = 7.0
	bossBaseHealth    = 40
	bossHealthPerLvl  = 20
	bossKillScore     = 1000 // Per boss level
	bossAttackCD      = 2.2 // Seconds between attacks at phase 0
	bossSweepSpeed    = 6.0
	bossDescendSpeed  = 9.0
	bossHoverFraction = 0.22 // Hover line as a fraction of field height
)

// bossPhaseRate scales the attack cooldown per phase.
var bossPhaseRate = [3]float64{1.0, 0.7, 0.45}

// Boss is the wave-gating heavy. Its phase escalates at fixed remaining-health
// ratios and never de-escalates.
type Boss struct {
	Body
	Level int
	HP    int
	MaxHP int

	phase    int
	attackIn float64 // Seconds until the next attack
	sweep    float64 // Horizontal sweep direction, ±1
	anchorY  float64 // Vertical hover line
}

// NewBoss creates a level lvl boss entering from above the top edge.
func NewBoss(lvl int, bounds geom.Size, rng *rand.Rand) *Boss {
	hp := bossBaseHealth + bossHealthPerLvl*lvl
	b := &Boss{
		Level:    lvl,
		HP:       hp,
		MaxHP:    hp,
		attackIn: bossAttackCD,
		sweep:    1,
		anchorY:  bounds.H * bossHoverFraction,
	}
	if rng.Float64() < 0.5 {
		b.sweep = -1
	}
	b.Pos = geom.V(bounds.W/2, -BossRadius)
	b.Radius = BossRadius
	return b
}

// Phase returns the current escalation phase, 0..2.
func (b *Boss) Phase() int {
	return b.phase
}

// Score returns the kill reward for this boss.
func (b *Boss) Score() int {
	return bossKillScore * b.Level
}

// HealthRatio returns remaining health as a fraction of the maximum.
func (b *Boss) HealthRatio() float64 {
	if b.HP <= 0 {
		return 0
	}
	return float64(b.HP) / float64(b.MaxHP)
}

// TakeDamage applies damage, ratchets the phase at the health thresholds,
// and reports whether health is exhausted. The caller performs destruction,
// reward drops and scoring.
func (b *Boss) TakeDamage(n int) bool {
	b.HP -= n
	ratio := float64(b.HP) / float64(b.MaxHP)
	switch {
	case ratio < 0.25 && b.phase < 2:
		b.phase = 2
	case ratio < 0.50 && b.phase < 1:
		b.phase = 1
	}
	return b.HP <= 0
}

// AttackReady reports whether the boss is in position with its cooldown
// elapsed.
func (b *Boss) AttackReady() bool {
	return b.attackIn <= 0 && b.Pos.Y >= b.anchorY
}

// Attack resets the cooldown and returns the projectiles of the current
// phase pattern: an aimed single shot, an aimed three-way spread, or an
// eight-shot radial ring.
func (b *Boss) Attack(playerPos geom.Vec) []*BossShot {
	b.attackIn = bossAttackCD * bossPhaseRate[b.phase]

	aim := playerPos.Sub(b.Pos).Angle()
	switch b.phase {
	case 0:
		return []*BossShot{NewBossShot(b.Pos, aim)}
	case 1:
		shots := make([]*BossShot, 0, 3)
		for _, off := range [...]float64{-0.35, 0, 0.35} {
			shots = append(shots, NewBossShot(b.Pos, aim+off))
		}
		return shots
	default:
		shots := make([]*BossShot, 0, 8)
		for i := 0; i < 8; i++ {
			shots = append(shots, NewBossShot(b.Pos, float64(i)*math.Pi/4))
		}
		return shots
	}
}

// Update descends to the hover line, then sweeps side to side while bobbing.
// The boss holds the top of the field and never wraps.
func (b *Boss) Update(ctx *Context) {
	dt := ctx.DT
	margin := b.Radius + 2

	if b.Pos.Y < b.anchorY {
		b.Vel = geom.V(0, bossDescendSpeed)
	} else {
		if b.Pos.X < margin {
			b.sweep = 1
		} else if b.Pos.X > ctx.Bounds.W-margin {
			b.sweep = -1
		}
		b.Vel = geom.V(bossSweepSpeed*b.sweep, math.Sin(ctx.Now*1.3)*2.0)
	}

	// Face the player for the aimed patterns
	if ctx.PlayerAlive {
		b.Heading = ctx.PlayerPos.Sub(b.Pos).Angle()
	}

	b.attackIn -= dt
	b.Move(dt)

	if b.Pos.X < margin {
		b.Pos.X = margin
	} else if b.Pos.X > ctx.Bounds.W-margin {
		b.Pos.X = ctx.Bounds.W - margin
	}
}
