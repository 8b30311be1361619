// Package effect tracks the time-limited gameplay modifiers and resolves
// which fire pattern the ship currently shoots.
package effect

import (
	"math"
	"sort"
)

// Kind enumerates the timed effects. The set is closed; resolution switches
// over it exhaustively.
type Kind int

const (
	TripleShot Kind = iota
	SpreadShot
	RapidFire
	Piercing
	DoubleDamage
)

// String returns the HUD label for the effect.
func (k Kind) String() string {
	switch k {
	case TripleShot:
		return "3X"
	case SpreadShot:
		return "SPREAD"
	case RapidFire:
		return "RAPID"
	case Piercing:
		return "PIERCE"
	case DoubleDamage:
		return "2X DMG"
	}
	return "?"
}

// durations is how long each effect lasts from pickup.
var durations = map[Kind]float64{
	TripleShot:   8.0,
	SpreadShot:   7.0,
	RapidFire:    6.0,
	Piercing:     6.0,
	DoubleDamage: 7.0,
}

// Duration returns the pickup duration for an effect kind.
func Duration(k Kind) float64 {
	return durations[k]
}

// Fire tuning.
const (
	baseCooldown = 0.28
	baseDamage   = 1
	rapidFactor  = 0.5  // RapidFire cooldown multiplier
	tripleArc    = 0.30 // Radians across a triple volley
	spreadArc    = 0.90 // Radians across a five-way volley
)

// FireSpec is the resolved fire pattern for one trigger pull.
type FireSpec struct {
	BulletCount int
	Spread      float64 // Total arc across the volley, radians
	Piercing    bool
	Damage      int
	Cooldown    float64 // Seconds between shots
}

// Status is one active effect with its remaining time, for the HUD.
type Status struct {
	Kind Kind
	Left float64
}

// Ledger tracks every active effect with its remaining duration. At most one
// entry exists per kind: re-adding a kind replaces its timer instead of
// stacking.
type Ledger struct {
	remaining map[Kind]float64
	lastShot  float64
}

// NewLedger returns an empty ledger ready to fire immediately.
func NewLedger() *Ledger {
	return &Ledger{
		remaining: make(map[Kind]float64),
		lastShot:  math.Inf(-1),
	}
}

// Advance ages every entry by dt and drops the ones that ran out.
func (l *Ledger) Advance(dt float64) {
	for k, left := range l.remaining {
		left -= dt
		if left <= 0 {
			delete(l.remaining, k)
		} else {
			l.remaining[k] = left
		}
	}
}

// Add starts or restarts an effect with d seconds on the clock.
func (l *Ledger) Add(k Kind, d float64) {
	l.remaining[k] = d
}

// Has reports whether the effect is currently active.
func (l *Ledger) Has(k Kind) bool {
	_, ok := l.remaining[k]
	return ok
}

// TimeLeft returns the remaining duration for an effect, 0 if inactive.
func (l *Ledger) TimeLeft(k Kind) float64 {
	return l.remaining[k]
}

// Active returns the running effects ordered by kind, for stable HUD rows.
func (l *Ledger) Active() []Status {
	if len(l.remaining) == 0 {
		return nil
	}
	out := make([]Status, 0, len(l.remaining))
	for k, left := range l.remaining {
		out = append(out, Status{Kind: k, Left: left})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

// FireSpec resolves the current fire pattern. Spread-shot wins over
// triple-shot when both are active.
func (l *Ledger) FireSpec() FireSpec {
	spec := FireSpec{BulletCount: 1, Damage: baseDamage, Cooldown: baseCooldown}

	switch {
	case l.Has(SpreadShot):
		spec.BulletCount = 5
		spec.Spread = spreadArc
	case l.Has(TripleShot):
		spec.BulletCount = 3
		spec.Spread = tripleArc
	}
	if l.Has(RapidFire) {
		spec.Cooldown *= rapidFactor
	}
	if l.Has(Piercing) {
		spec.Piercing = true
	}
	if l.Has(DoubleDamage) {
		spec.Damage *= 2
	}
	return spec
}

// CanFire reports whether the effective cooldown has elapsed since the last
// produced shot. Calling it never changes state.
func (l *Ledger) CanFire(now float64) bool {
	return now-l.lastShot >= l.FireSpec().Cooldown
}

// RecordShot stamps the time a shot was actually produced. No-op trigger
// pulls must not call it.
func (l *Ledger) RecordShot(now float64) {
	l.lastShot = now
}
