// Package wave schedules enemy spawn groups over time, detects wave
// completion, and gates boss encounters.
package wave

import (
	"math"

	"github.com/bdamage/Astroid-Classic/internal/object"
)

// BossEvery is the wave cadence of boss encounters.
const BossEvery = 5

// Schedule tuning.
const (
	maxEnemies    = 24 // Cap on a single wave's enemy budget
	baseEnemies   = 3
	enemiesPerN   = 2
	maxDelay      = 1.4 // Inter-spawn delay on wave 1
	minDelay      = 0.5
	delayStep     = 0.1  // Delay lost per wave
	bomberStep    = 0.08 // Bomber share gained per wave
	maxBomberFrac = 0.6
	bonusPerWave  = 100
)

// Group is one homogeneous spawn batch: count enemies of one kind released
// delay seconds apart.
type Group struct {
	Kind  object.EnemyKind
	Count int
	Delay float64
}

// Config is one wave's schedule. Boss waves carry no groups; the boss
// replaces the regular spawn plan.
type Config struct {
	Number int
	Groups []Group
	Boss   bool
	Bonus  int
}

// Total returns the enemy count across all groups.
func (c Config) Total() int {
	n := 0
	for _, g := range c.Groups {
		n += g.Count
	}
	return n
}

// GenerateConfig builds the schedule for wave n. The mix shifts from
// scout-heavy to bomber-heavy as n grows, the per-wave budget is capped, and
// the spawn cadence tightens.
func GenerateConfig(n int) Config {
	cfg := Config{
		Number: n,
		Bonus:  bonusPerWave * n,
	}

	if n%BossEvery == 0 {
		cfg.Boss = true
		return cfg
	}

	total := baseEnemies + enemiesPerN*n
	if total > maxEnemies {
		total = maxEnemies
	}

	frac := math.Min(maxBomberFrac, bomberStep*float64(n-1))
	bombers := int(float64(total) * frac)
	scouts := total - bombers

	delay := math.Max(minDelay, maxDelay-delayStep*float64(n-1))

	if scouts > 0 {
		cfg.Groups = append(cfg.Groups, Group{Kind: object.EnemyScout, Count: scouts, Delay: delay})
	}
	if bombers > 0 {
		cfg.Groups = append(cfg.Groups, Group{Kind: object.EnemyBomber, Count: bombers, Delay: delay})
	}
	return cfg
}
