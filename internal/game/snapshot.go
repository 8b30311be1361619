package game

import (
	"github.com/bdamage/Astroid-Classic/internal/effect"
	"github.com/bdamage/Astroid-Classic/internal/geom"
	"github.com/bdamage/Astroid-Classic/internal/object"
	"github.com/bdamage/Astroid-Classic/internal/wave"
)

// Snapshot is the read-only view of one frame handed to presentation layers.
// The slices alias the live collections and stay valid until the next
// Advance call; renderers must not hold them longer or mutate through them.
type Snapshot struct {
	Bounds geom.Size
	Now    float64

	Ship      *object.Ship   // nil while destroyed
	RespawnIn float64        // Counts down while Ship is nil and lives remain
	Shield    *object.Shield // nil unless raised
	Asteroids []*object.Asteroid
	Enemies   []*object.Enemy
	Boss      *object.Boss // nil outside boss battles
	Bullets   []*object.Bullet
	Missiles  []*object.Missile
	BossShots []*object.BossShot
	PowerUps  []*object.PowerUp

	Score      int
	Lives      int
	Wave       int
	WaveState  wave.State
	NextWaveIn float64

	Combo      int
	Multiplier float64
	Streak     int

	Effects     []effect.Status
	MissileAmmo int
	ShieldStock int

	Over bool
}

// Snapshot captures the current frame for rendering.
func (g *Game) Snapshot() Snapshot {
	respawn := 0.0
	if g.ship == nil && g.lives > 0 {
		respawn = g.respawnIn
	}
	return Snapshot{
		Bounds:      g.bounds,
		Now:         g.now,
		Ship:        g.ship,
		RespawnIn:   respawn,
		Shield:      g.shield,
		Asteroids:   g.asteroids,
		Enemies:     g.enemies,
		Boss:        g.boss,
		Bullets:     g.bullets,
		Missiles:    g.missiles,
		BossShots:   g.bossShots,
		PowerUps:    g.powerUps,
		Score:       g.score,
		Lives:       g.lives,
		Wave:        g.director.Number(),
		WaveState:   g.director.State(),
		NextWaveIn:  g.director.NextIn(),
		Combo:       g.tracker.Count(),
		Multiplier:  g.tracker.Multiplier(),
		Streak:      g.tracker.Streak(),
		Effects:     g.effects.Active(),
		MissileAmmo: g.missileAmmo,
		ShieldStock: g.shieldStock,
		Over:        g.over,
	}
}
