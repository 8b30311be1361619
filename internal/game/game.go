// Package game owns the simulation state and drives the per-frame update,
// spawn and collision order. Presentation layers read a Snapshot each frame
// and drain the event stream; they never mutate the collections held here.
package game

import (
	"math"
	"math/rand"

	"github.com/bdamage/Astroid-Classic/internal/combo"
	"github.com/bdamage/Astroid-Classic/internal/config"
	"github.com/bdamage/Astroid-Classic/internal/effect"
	"github.com/bdamage/Astroid-Classic/internal/geom"
	"github.com/bdamage/Astroid-Classic/internal/object"
	"github.com/bdamage/Astroid-Classic/internal/physics"
	"github.com/bdamage/Astroid-Classic/internal/wave"
)

// Session tuning.
const (
	StartLives     = 3
	maxTick        = 0.1 // Longest dt a single Advance will integrate
	respawnDelay   = 2.5
	spawnInvuln    = 3.0
	teleportInvuln = 1.0

	missilesPerPickup = 3

	initialRocks   = 6
	rockProtection = 1.2

	// Ambient pressure keeps the field populated between waves. Pressure is
	// the size-weighted sum of live asteroids (large 4, medium 2, small 1),
	// so a split leaves the total unchanged until the fragments die.
	ambientEvery        = 0.8
	ambientBasePressure = 10.0
	ambientPerWave      = 1.5

	teleportAttempts  = 10
	teleportClearance = 12.0

	bounceCell  = 12.0 // Spatial grid cell size for the asteroid bounce pass
	eventBuffer = 128
)

// Game is the simulation root. It owns every entity collection; collaborators
// receive references for the duration of one call only.
type Game struct {
	bounds   geom.Size
	settings config.Settings
	rng      *rand.Rand

	now   float64
	score int
	lives int
	over  bool

	ship        *object.Ship
	lastShipPos geom.Vec
	shield      *object.Shield
	asteroids   []*object.Asteroid
	enemies     []*object.Enemy
	boss        *object.Boss
	bullets     []*object.Bullet
	missiles    []*object.Missile
	bossShots   []*object.BossShot
	powerUps    []*object.PowerUp

	effects  *effect.Ledger
	director *wave.Director
	tracker  *combo.Tracker
	grid     *physics.Grid

	missileAmmo int
	shieldStock int
	respawnIn   float64

	ambientIn float64

	// Fragments and drops produced mid-pipeline join the collections at the
	// end of the tick so the running passes see a stable population.
	spawnRocks []*object.Asteroid
	spawnPups  []*object.PowerUp

	events chan Event
}

// NewGame creates a session on the given field with an opening rock scatter.
func NewGame(bounds geom.Size, settings config.Settings, rng *rand.Rand) *Game {
	g := &Game{
		bounds:   bounds,
		settings: settings,
		rng:      rng,
		lives:    StartLives,
		ship:     object.NewShip(bounds.Center()),
		effects:  effect.NewLedger(),
		director: wave.NewDirector(),
		tracker:  combo.NewTracker(),
		grid:     physics.NewGrid(bounds, bounceCell),
		events:   make(chan Event, eventBuffer),
	}
	g.ship.Protect(0, spawnInvuln)
	g.lastShipPos = g.ship.Pos
	for i := 0; i < initialRocks; i++ {
		g.asteroids = append(g.asteroids,
			object.NewAsteroidAtEdge(bounds, rollAmbientSize(rng), settings.AsteroidSpeed, rockProtection, rng))
	}
	return g
}

// Accessors for the HUD and session screens.

func (g *Game) Score() int        { return g.score }
func (g *Game) Lives() int        { return g.lives }
func (g *Game) Wave() int         { return g.director.Number() }
func (g *Game) Over() bool        { return g.over }
func (g *Game) Now() float64      { return g.now }
func (g *Game) Bounds() geom.Size { return g.bounds }

// Advance runs one simulation tick. dt above maxTick is clamped so a stalled
// frame cannot tunnel entities through each other or fast-forward timers.
func (g *Game) Advance(dt float64, ctrl object.Control) {
	if dt <= 0 {
		return
	}
	if dt > maxTick {
		dt = maxTick
	}
	g.now += dt

	ctx := &object.Context{
		DT:          dt,
		Now:         g.now,
		Bounds:      g.bounds,
		Control:     ctrl,
		PlayerPos:   g.lastShipPos,
		PlayerAlive: g.ship != nil,
		Rand:        g.rng,
		FindTarget:  g.findMissileTarget,
	}
	g.updateEntities(ctx)

	g.effects.Advance(dt)
	g.tracker.Tick(dt, g.now)

	if !g.over {
		g.tickRespawn(dt)
		g.handleFiring(ctrl)
		g.tickDirector(dt)
		g.tickBoss()
		g.tickAmbient(dt)
	}

	g.resolveCollisions()

	g.flushSpawns()
	g.prune()

	if !g.over && g.lives <= 0 {
		g.over = true
		g.emit(Event{Kind: EventGameOver, Value: g.score})
	}
}

// updateEntities runs every entity's own movement and timers.
func (g *Game) updateEntities(ctx *object.Context) {
	if g.ship != nil {
		g.ship.Update(ctx)
		g.lastShipPos = g.ship.Pos
		ctx.PlayerPos = g.ship.Pos
	}
	for _, a := range g.asteroids {
		if a.Active() {
			a.Update(ctx)
		}
	}
	for _, e := range g.enemies {
		if e.Active() {
			e.Update(ctx)
		}
	}
	if g.boss != nil && g.boss.Active() {
		g.boss.Update(ctx)
	}
	for _, b := range g.bullets {
		if b.Active() {
			b.Update(ctx)
		}
	}
	for _, m := range g.missiles {
		if m.Active() {
			m.Update(ctx)
		}
	}
	for _, s := range g.bossShots {
		if s.Active() {
			s.Update(ctx)
		}
	}
	for _, p := range g.powerUps {
		if p.Active() {
			p.Update(ctx)
		}
	}
	if g.shield != nil && g.shield.Active() {
		g.shield.Update(ctx)
	}
}

// tickRespawn counts down to the next ship while lives remain.
func (g *Game) tickRespawn(dt float64) {
	if g.ship != nil || g.lives <= 0 {
		return
	}
	g.respawnIn -= dt
	if g.respawnIn > 0 {
		return
	}
	g.ship = object.NewShip(g.bounds.Center())
	g.ship.Protect(g.now, spawnInvuln)
	g.lastShipPos = g.ship.Pos
}

// handleFiring turns held and just-pressed input into projectiles and shield
// activation. The fire timestamp only advances when a volley is produced.
func (g *Game) handleFiring(ctrl object.Control) {
	if g.ship == nil {
		return
	}
	if ctrl.Fire && g.effects.CanFire(g.now) {
		g.spawnVolley(g.effects.FireSpec())
		g.effects.RecordShot(g.now)
	}
	if ctrl.SpecialJust && g.missileAmmo > 0 {
		g.missileAmmo--
		g.missiles = append(g.missiles, object.NewMissile(g.ship.Nose(), g.ship.Heading))
	}
	if ctrl.ShieldJust && g.shieldStock > 0 && g.shield == nil {
		g.shieldStock--
		g.shield = object.NewShield(g.ship.Hull(), g.now)
	}
}

// spawnVolley fans spec.BulletCount bullets evenly across spec.Spread,
// centered on the ship's heading.
func (g *Game) spawnVolley(spec effect.FireSpec) {
	for i := 0; i < spec.BulletCount; i++ {
		angle := g.ship.Heading
		if spec.BulletCount > 1 {
			angle += -spec.Spread/2 + spec.Spread*float64(i)/float64(spec.BulletCount-1)
		}
		g.bullets = append(g.bullets,
			object.NewBullet(g.ship.Nose(), angle, g.ship.Vel, spec.Damage, spec.Piercing))
	}
}

// tickDirector advances wave progression and materializes its spawn requests.
func (g *Game) tickDirector(dt float64) {
	env := wave.Env{
		Bounds:      g.bounds,
		PlayerPos:   g.lastShipPos,
		PlayerAlive: g.ship != nil,
		LiveEnemies: g.liveEnemyCount(),
		Rand:        g.rng,
	}
	res := g.director.Tick(dt, env)

	for _, req := range res.Spawns {
		g.enemies = append(g.enemies, object.NewEnemy(req.Pos, req.Kind, g.settings.EnemySpeed, g.rng))
	}
	if res.WaveStarted != 0 {
		g.emit(Event{Kind: EventWaveStarted, Value: res.WaveStarted})
	}
	if res.WaveCleared != 0 {
		bonus := int(float64(res.Bonus) * g.settings.ScoreMult)
		g.score += bonus
		g.emit(Event{Kind: EventWaveCleared, Value: res.WaveCleared})
		g.emit(Event{Kind: EventScore, Pos: g.lastShipPos, Value: bonus})
	}
	if res.BossIntro {
		g.emit(Event{Kind: EventBossIntro})
	}
	if res.SpawnBoss {
		g.boss = object.NewBoss(g.director.Number()/wave.BossEvery, g.bounds, g.rng)
	}
}

// tickBoss lets a hovering boss open fire once its attack cooldown allows.
func (g *Game) tickBoss() {
	if g.boss == nil || !g.boss.Active() || g.ship == nil {
		return
	}
	if g.boss.AttackReady() {
		g.bossShots = append(g.bossShots, g.boss.Attack(g.ship.Pos)...)
	}
}

// tickAmbient tops the asteroid field back up toward a wave-scaled pressure
// target, one edge spawn per interval.
func (g *Game) tickAmbient(dt float64) {
	g.ambientIn -= dt
	if g.ambientIn > 0 {
		return
	}
	g.ambientIn = ambientEvery

	pressure := 0
	for _, a := range g.asteroids {
		if a.Active() {
			pressure += ambientWeight(a.Size)
		}
	}
	target := int((ambientBasePressure + ambientPerWave*float64(g.director.Number())) * g.settings.AsteroidRate)
	if target > g.settings.MaxAsteroids {
		target = g.settings.MaxAsteroids
	}
	if pressure >= target {
		return
	}
	g.asteroids = append(g.asteroids,
		object.NewAsteroidAtEdge(g.bounds, rollAmbientSize(g.rng), g.settings.AsteroidSpeed, rockProtection, g.rng))
}

// rollAmbientSize favors large rocks, which decay into the smaller classes
// on their own.
func rollAmbientSize(rng *rand.Rand) object.AsteroidSize {
	switch rng.Intn(6) {
	case 0, 1, 2:
		return object.AsteroidLarge
	case 3, 4:
		return object.AsteroidMedium
	default:
		return object.AsteroidSmall
	}
}

func ambientWeight(s object.AsteroidSize) int {
	switch s {
	case object.AsteroidLarge:
		return 4
	case object.AsteroidMedium:
		return 2
	default:
		return 1
	}
}

func (g *Game) liveEnemyCount() int {
	n := 0
	for _, e := range g.enemies {
		if e.Active() {
			n++
		}
	}
	return n
}

// findMissileTarget returns the hull of the nearest live asteroid or enemy.
// The boss is never offered as a lock.
func (g *Game) findMissileTarget(from geom.Vec) *object.Body {
	var best *object.Body
	bestD := math.MaxFloat64
	for _, a := range g.asteroids {
		if !a.Active() || a.Protected() {
			continue
		}
		if d := from.DistSqTo(a.Pos); d < bestD {
			bestD, best = d, a.Hull()
		}
	}
	for _, e := range g.enemies {
		if !e.Active() {
			continue
		}
		if d := from.DistSqTo(e.Pos); d < bestD {
			bestD, best = d, e.Hull()
		}
	}
	return best
}

// creditKill scores one destroyed target through the combo multiplier and
// difficulty scaling, then folds milestone bonuses into the total. The kill
// counts toward its own multiplier step.
func (g *Game) creditKill(base int, pos geom.Vec) {
	milestones := g.tracker.OnKill(g.now)
	pts := int(float64(base) * g.tracker.Multiplier() * g.settings.ScoreMult)
	g.score += pts
	g.emit(Event{Kind: EventScore, Pos: pos, Value: pts})
	for _, m := range milestones {
		g.score += m.Bonus
		g.emit(Event{Kind: EventAchievement, Pos: pos, Value: m.Bonus, Label: m.Label})
	}
}

// maybeDrop rolls the difficulty drop rate for a power-up at a kill site.
func (g *Game) maybeDrop(pos geom.Vec) {
	if g.rng.Float64() >= g.settings.PowerUpRate {
		return
	}
	g.dropPowerUp(pos)
}

func (g *Game) dropPowerUp(pos geom.Vec) {
	kind := object.RandomPowerUpKind(g.rng)
	g.spawnPups = append(g.spawnPups, object.NewPowerUp(pos, kind, g.rng))
}

// applyPowerUp routes a collected pickup to the effect ledger or to one of
// the instant handlers. Unknown kinds are ignored.
func (g *Game) applyPowerUp(kind object.PowerUpKind) {
	switch kind {
	case object.PowerTripleShot:
		g.effects.Add(effect.TripleShot, effect.Duration(effect.TripleShot))
	case object.PowerSpreadShot:
		g.effects.Add(effect.SpreadShot, effect.Duration(effect.SpreadShot))
	case object.PowerRapidFire:
		g.effects.Add(effect.RapidFire, effect.Duration(effect.RapidFire))
	case object.PowerPiercing:
		g.effects.Add(effect.Piercing, effect.Duration(effect.Piercing))
	case object.PowerDoubleDamage:
		g.effects.Add(effect.DoubleDamage, effect.Duration(effect.DoubleDamage))
	case object.PowerShield:
		g.shieldStock++
	case object.PowerMissiles:
		g.missileAmmo += missilesPerPickup
	case object.PowerExtraLife:
		g.lives++
	case object.PowerTeleport:
		g.teleportShip()
	case object.PowerNuke:
		g.detonateNuke()
	}
}

// teleportShip relocates the ship to a random position clear of hazards,
// falling back to wherever the last attempt landed. A short invulnerability
// covers the arrival.
func (g *Game) teleportShip() {
	if g.ship == nil {
		return
	}
	pos := g.bounds.Center()
	for i := 0; i < teleportAttempts; i++ {
		cand := geom.V(g.rng.Float64()*g.bounds.W, g.rng.Float64()*g.bounds.H)
		pos = cand
		if g.clearOfHazards(cand, teleportClearance) {
			break
		}
	}
	g.ship.Pos = pos
	g.ship.Vel = geom.Vec{}
	g.ship.Protect(g.now, teleportInvuln)
}

func (g *Game) clearOfHazards(pos geom.Vec, r float64) bool {
	for _, a := range g.asteroids {
		if a.Active() && pos.DistTo(a.Pos) < r {
			return false
		}
	}
	for _, e := range g.enemies {
		if e.Active() && pos.DistTo(e.Pos) < r {
			return false
		}
	}
	if g.boss != nil && g.boss.Active() && pos.DistTo(g.boss.Pos) < r+object.BossRadius {
		return false
	}
	return true
}

// detonateNuke clears every live asteroid without splitting, crediting full
// score and combo for each.
func (g *Game) detonateNuke() {
	for _, a := range g.asteroids {
		if !a.Active() {
			continue
		}
		a.Deactivate()
		g.creditKill(a.Score(), a.Pos)
		g.emit(Event{Kind: EventExplosion, Pos: a.Pos, Value: int(a.Size)})
	}
	g.emit(Event{Kind: EventNuke})
}

// killShip resolves the ship's destruction: the combo breaks, a life goes,
// and the respawn countdown starts. The shield, if any, dies with the ship.
func (g *Game) killShip() {
	if g.ship == nil {
		return
	}
	pos := g.ship.Pos
	g.ship.Deactivate()
	g.ship = nil
	if g.shield != nil {
		g.shield.Deactivate()
		g.shield = nil
	}
	g.tracker.OnBreak()
	g.lives--
	g.respawnIn = respawnDelay
	g.emit(Event{Kind: EventShipDestroyed, Pos: pos})
	g.emit(Event{Kind: EventLifeLost, Pos: pos, Value: g.lives})
}

// flushSpawns admits entities produced during the collision passes.
func (g *Game) flushSpawns() {
	g.asteroids = append(g.asteroids, g.spawnRocks...)
	g.powerUps = append(g.powerUps, g.spawnPups...)
	g.spawnRocks = g.spawnRocks[:0]
	g.spawnPups = g.spawnPups[:0]
}

// prune drops inactive entities from every collection, in place.
func (g *Game) prune() {
	g.asteroids = pruneSlice(g.asteroids)
	g.enemies = pruneSlice(g.enemies)
	g.bullets = pruneSlice(g.bullets)
	g.missiles = pruneSlice(g.missiles)
	g.bossShots = pruneSlice(g.bossShots)
	g.powerUps = pruneSlice(g.powerUps)
	if g.boss != nil && !g.boss.Active() {
		g.boss = nil
	}
	if g.shield != nil && !g.shield.Active() {
		g.shield = nil
	}
}

// pruneSlice compacts live entries to the front and trims the tail, keeping
// the backing array for reuse.
func pruneSlice[T interface{ Active() bool }](s []T) []T {
	out := s[:0]
	for _, e := range s {
		if e.Active() {
			out = append(out, e)
		}
	}
	return out
}
