package object

import (
	"math"
	"math/rand"

	"github.com/bdamage/Astroid-Classic/internal/geom"
)

// PowerUpKind enumerates every pickup the field can drop. The set is closed:
// collision resolution switches over it exhaustively.
type PowerUpKind int

const (
	PowerTripleShot PowerUpKind = iota
	PowerSpreadShot
	PowerRapidFire
	PowerPiercing
	PowerDoubleDamage
	PowerShield
	PowerMissiles
	PowerExtraLife
	PowerTeleport
	PowerNuke

	powerUpKindCount // Count marker, keep last
)

// String returns the HUD label for the pickup.
func (k PowerUpKind) String() string {
	switch k {
	case PowerTripleShot:
		return "TRIPLE SHOT"
	case PowerSpreadShot:
		return "SPREAD SHOT"
	case PowerRapidFire:
		return "RAPID FIRE"
	case PowerPiercing:
		return "PIERCING"
	case PowerDoubleDamage:
		return "2X DAMAGE"
	case PowerShield:
		return "SHIELD"
	case PowerMissiles:
		return "MISSILES"
	case PowerExtraLife:
		return "EXTRA LIFE"
	case PowerTeleport:
		return "TELEPORT"
	case PowerNuke:
		return "NUKE"
	}
	return "?"
}

// PowerUp tuning.
const (
	PowerUpLifetime = 10.0 // Seconds a drop stays on the field
	powerUpRadius   = 1.6
	powerUpDrift    = 2.0
)

// powerUpWeights drive the random drop table. Weapon mods are common,
// extra lives are rare.
var powerUpWeights = map[PowerUpKind]int{
	PowerTripleShot:   14,
	PowerSpreadShot:   10,
	PowerRapidFire:    14,
	PowerPiercing:     10,
	PowerDoubleDamage: 10,
	PowerShield:       12,
	PowerMissiles:     12,
	PowerExtraLife:    4,
	PowerTeleport:     6,
	PowerNuke:         8,
}

// RandomPowerUpKind draws a kind from the weighted drop table.
func RandomPowerUpKind(rng *rand.Rand) PowerUpKind {
	total := 0
	for _, w := range powerUpWeights {
		total += w
	}
	roll := rng.Intn(total)
	for k := PowerUpKind(0); k < powerUpKindCount; k++ {
		roll -= powerUpWeights[k]
		if roll < 0 {
			return k
		}
	}
	return PowerTripleShot
}

// PowerUp is a pickup drifting where it was dropped. It fades away if nobody
// collects it in time.
type PowerUp struct {
	Body
	Kind     PowerUpKind
	Lifetime float64
}

// NewPowerUp creates a pickup of the given kind at pos with a slow random
// drift.
func NewPowerUp(pos geom.Vec, kind PowerUpKind, rng *rand.Rand) *PowerUp {
	p := &PowerUp{
		Kind:     kind,
		Lifetime: PowerUpLifetime,
	}
	p.Pos = pos
	p.Vel = geom.FromAngle(rng.Float64() * 2 * math.Pi).Scale(powerUpDrift)
	p.Radius = powerUpRadius
	return p
}

// Fading reports whether the pickup is in its last seconds, for the renderer
// blink.
func (p *PowerUp) Fading() bool {
	return p.Lifetime < 3.0
}

// Update drifts the pickup and expires it.
func (p *PowerUp) Update(ctx *Context) {
	p.Lifetime -= ctx.DT
	if p.Lifetime <= 0 {
		p.Deactivate()
		return
	}
	p.Move(ctx.DT)
	p.Wrap(ctx.Bounds)
}
