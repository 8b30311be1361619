package game

import (
	"github.com/bdamage/Astroid-Classic/internal/object"
)

// resolveCollisions runs the per-frame pair passes. Weapon hits resolve
// before ship contact, matching the player's view of the frame: a rock shot
// this tick cannot also ram you this tick. Every pass re-checks liveness
// before resolving, so a kill in an earlier pass leaves the victim
// transparent to later ones.
func (g *Game) resolveCollisions() {
	g.bulletsVsAsteroids()
	g.bulletsVsEnemies()
	g.bulletsVsBoss()
	g.bulletsVsBossShots()
	g.missilesVsTargets()
	g.bounceAsteroids()
	g.shipVsPowerUps()
	g.shipVsHazards()
	g.bossShotsVsShip()
}

// bulletsVsAsteroids resolves player fire against rocks. A piercing bullet
// keeps flying but never re-hits a target already in its pierced set; a
// plain bullet is spent on the first hit.
func (g *Game) bulletsVsAsteroids() {
	for _, b := range g.bullets {
		if !b.Active() {
			continue
		}
		for _, a := range g.asteroids {
			if !a.Active() || a.Protected() {
				continue
			}
			if !b.Overlaps(a.Hull()) || b.AlreadyHit(a.Hull()) {
				continue
			}
			g.destroyAsteroid(a, 1)
			if b.Piercing {
				b.MarkHit(a.Hull())
				continue
			}
			b.Deactivate()
			break
		}
	}
}

func (g *Game) bulletsVsEnemies() {
	for _, b := range g.bullets {
		if !b.Active() {
			continue
		}
		for _, e := range g.enemies {
			if !e.Active() {
				continue
			}
			if !b.Overlaps(e.Hull()) || b.AlreadyHit(e.Hull()) {
				continue
			}
			if e.TakeDamage(b.Damage) {
				g.destroyEnemy(e, 1)
			}
			if b.Piercing {
				b.MarkHit(e.Hull())
				continue
			}
			b.Deactivate()
			break
		}
	}
}

func (g *Game) bulletsVsBoss() {
	if g.boss == nil || !g.boss.Active() {
		return
	}
	for _, b := range g.bullets {
		if !b.Active() {
			continue
		}
		if !b.Overlaps(g.boss.Hull()) || b.AlreadyHit(g.boss.Hull()) {
			continue
		}
		dead := g.boss.TakeDamage(b.Damage)
		if b.Piercing {
			b.MarkHit(g.boss.Hull())
		} else {
			b.Deactivate()
		}
		if dead {
			g.defeatBoss()
			return
		}
	}
}

// bulletsVsBossShots lets the player shoot down incoming boss fire. Both
// projectiles are spent, piercing or not.
func (g *Game) bulletsVsBossShots() {
	for _, b := range g.bullets {
		if !b.Active() {
			continue
		}
		for _, s := range g.bossShots {
			if !s.Active() {
				continue
			}
			if !b.Overlaps(s.Hull()) {
				continue
			}
			b.Deactivate()
			s.Deactivate()
			break
		}
	}
}

// missilesVsTargets resolves homing missiles, which score double and are
// always consumed on the first hit.
func (g *Game) missilesVsTargets() {
	for _, m := range g.missiles {
		if !m.Active() {
			continue
		}
		hit := false
		for _, a := range g.asteroids {
			if !a.Active() || a.Protected() {
				continue
			}
			if m.Overlaps(a.Hull()) {
				g.destroyAsteroid(a, 2)
				hit = true
				break
			}
		}
		if !hit {
			for _, e := range g.enemies {
				if !e.Active() {
					continue
				}
				if m.Overlaps(e.Hull()) {
					if e.TakeDamage(m.Damage) {
						g.destroyEnemy(e, 2)
					}
					hit = true
					break
				}
			}
		}
		if hit {
			m.Deactivate()
		}
	}
}

// shipVsPowerUps collects pickups the ship touches.
func (g *Game) shipVsPowerUps() {
	if g.ship == nil {
		return
	}
	for _, p := range g.powerUps {
		if !p.Active() || !g.ship.Overlaps(p.Hull()) {
			continue
		}
		p.Deactivate()
		g.emit(Event{Kind: EventPowerUp, Pos: p.Pos, Label: p.Kind.String()})
		for _, m := range g.tracker.OnPickup(g.now) {
			g.score += m.Bonus
			g.emit(Event{Kind: EventAchievement, Pos: p.Pos, Value: m.Bonus, Label: m.Label})
		}
		g.applyPowerUp(p.Kind)
	}
}

// shipVsHazards resolves contact with anything that can kill the ship. A
// live shield soaks the hit and the toucher is destroyed without score;
// boss contact drains the shield without hurting the boss.
func (g *Game) shipVsHazards() {
	if g.ship == nil || g.ship.Invulnerable(g.now) {
		return
	}
	for _, a := range g.asteroids {
		if !a.Active() || a.Protected() {
			continue
		}
		if !g.ship.Overlaps(a.Hull()) {
			continue
		}
		if g.shieldAbsorb() {
			g.destroyAsteroid(a, 0)
			continue
		}
		g.killShip()
		return
	}
	for _, e := range g.enemies {
		if !e.Active() {
			continue
		}
		if !g.ship.Overlaps(e.Hull()) {
			continue
		}
		if g.shieldAbsorb() {
			g.destroyEnemy(e, 0)
			continue
		}
		g.killShip()
		return
	}
	if g.boss != nil && g.boss.Active() && g.ship.Overlaps(g.boss.Hull()) {
		if !g.shieldAbsorb() {
			g.killShip()
		}
	}
}

func (g *Game) bossShotsVsShip() {
	if g.ship == nil || g.ship.Invulnerable(g.now) {
		return
	}
	for _, s := range g.bossShots {
		if !s.Active() || !g.ship.Overlaps(s.Hull()) {
			continue
		}
		s.Deactivate()
		if g.shieldAbsorb() {
			continue
		}
		g.killShip()
		return
	}
}

// shieldAbsorb spends one shield hit point if a live shield is up.
func (g *Game) shieldAbsorb() bool {
	return g.shield != nil && g.shield.Absorb(g.now)
}

// destroyAsteroid splits the rock and queues the fragments. scoreScale 0
// destroys without credit (shield ramming, ship collateral); 1 is a bullet
// kill, 2 a missile kill.
func (g *Game) destroyAsteroid(a *object.Asteroid, scoreScale int) {
	a.Deactivate()
	g.spawnRocks = append(g.spawnRocks, a.Split(g.rng)...)
	g.emit(Event{Kind: EventExplosion, Pos: a.Pos, Value: int(a.Size)})
	if scoreScale > 0 {
		g.creditKill(a.Score()*scoreScale, a.Pos)
		g.maybeDrop(a.Pos)
	}
}

func (g *Game) destroyEnemy(e *object.Enemy, scoreScale int) {
	e.Deactivate()
	g.emit(Event{Kind: EventExplosion, Pos: e.Pos, Value: 2})
	if scoreScale > 0 {
		g.creditKill(e.Score()*scoreScale, e.Pos)
		g.maybeDrop(e.Pos)
	}
}

// defeatBoss resolves the boss kill: the big score, a guaranteed drop, and
// the wave completion it was gating.
func (g *Game) defeatBoss() {
	b := g.boss
	b.Deactivate()
	g.creditKill(b.Score(), b.Pos)
	g.dropPowerUp(b.Pos)
	g.emit(Event{Kind: EventExplosion, Pos: b.Pos, Value: 6})
	g.emit(Event{Kind: EventBossDefeated, Pos: b.Pos, Value: b.Level})

	cleared, bonus := g.director.BossDefeated()
	if cleared != 0 {
		scaled := int(float64(bonus) * g.settings.ScoreMult)
		g.score += scaled
		g.emit(Event{Kind: EventWaveCleared, Value: cleared})
		g.emit(Event{Kind: EventScore, Pos: b.Pos, Value: scaled})
	}
}

// bounceAsteroids runs the elastic asteroid-asteroid pass through the
// spatial grid, treating radius squared as mass.
func (g *Game) bounceAsteroids() {
	g.grid.Reset()
	for i, a := range g.asteroids {
		if a.Active() {
			g.grid.Insert(a.Pos, i)
		}
	}
	for i, a := range g.asteroids {
		if !a.Active() {
			continue
		}
		g.grid.ForEachNear(a.Pos, func(j int) bool {
			if j <= i {
				return false
			}
			o := g.asteroids[j]
			if !o.Active() {
				return false
			}
			dist := a.Pos.DistTo(o.Pos)
			if dist > 0 && dist < a.Radius+o.Radius {
				bounce(a, o, dist)
			}
			return false
		})
	}
}

// bounce applies an elastic collision response between two overlapping
// rocks and separates them so they do not re-collide next frame.
func bounce(a1, a2 *object.Asteroid, dist float64) {
	n := a2.Pos.Sub(a1.Pos).Scale(1 / dist)

	dv := a1.Vel.Sub(a2.Vel)
	dvn := dv.Dot(n)
	if dvn < 0 {
		// Already separating
		return
	}

	m1 := a1.Mass()
	m2 := a2.Mass()
	total := m1 + m2

	impulse := 2 * dvn / total
	a1.Vel = a1.Vel.Sub(n.Scale(impulse * m2))
	a2.Vel = a2.Vel.Add(n.Scale(impulse * m1))

	overlap := (a1.Radius + a2.Radius) - dist
	if overlap > 0 {
		a1.Pos = a1.Pos.Sub(n.Scale(overlap * m2 / total))
		a2.Pos = a2.Pos.Add(n.Scale(overlap * m1 / total))
	}
}
