package loop

import (
	"math"

	"github.com/bdamage/Astroid-Classic/internal/draw"
	"github.com/bdamage/Astroid-Classic/internal/object"
)

// Entity palette.
const (
	shipColor     = draw.ColorBrightWhite
	rockColor     = draw.ColorWhite
	scoutColor    = draw.ColorBrightRed
	bomberColor   = draw.ColorRed
	bulletColor   = draw.ColorBrightYellow
	pierceColor   = draw.ColorBrightCyan
	missileColor  = draw.ColorBrightGreen
	trailColor    = draw.ColorYellow
	bossShotColor = draw.ColorBrightRed
	shieldColor   = draw.ColorBrightCyan
)

// powerUpColors keys the pickup tint by kind.
var powerUpColors = map[object.PowerUpKind]draw.Color{
	object.PowerTripleShot:   draw.ColorBrightYellow,
	object.PowerSpreadShot:   draw.ColorBrightGreen,
	object.PowerRapidFire:    draw.ColorBrightCyan,
	object.PowerPiercing:     draw.ColorCyan,
	object.PowerDoubleDamage: draw.ColorBrightRed,
	object.PowerShield:       draw.ColorBrightBlue,
	object.PowerMissiles:     draw.ColorBrightMagenta,
	object.PowerExtraLife:    draw.ColorGreen,
	object.PowerTeleport:     draw.ColorMagenta,
	object.PowerNuke:         draw.ColorBrightWhite,
}

// bossPhaseColor matches the health bar tint.
func bossPhaseColor(phase int) draw.Color {
	switch phase {
	case 2:
		return draw.ColorBrightYellow
	case 3:
		return draw.ColorBrightRed
	}
	return draw.ColorBrightMagenta
}

// renderWorld draws the snapshot onto the canvas, background to foreground.
func (s *Session) renderWorld() {
	snap := s.snap

	for _, p := range snap.PowerUps {
		s.drawPowerUp(p)
	}
	for _, a := range snap.Asteroids {
		s.drawAsteroid(a)
	}
	for _, e := range snap.Enemies {
		s.drawEnemy(e)
	}
	if snap.Boss != nil {
		s.drawBoss(snap.Boss)
	}
	for _, shot := range snap.BossShots {
		s.drawBossShot(shot)
	}
	for _, m := range snap.Missiles {
		s.drawMissile(m)
	}
	for _, b := range snap.Bullets {
		s.drawBullet(b)
	}
	if snap.Shield != nil {
		s.drawShield(snap.Shield)
	}
	if snap.Ship != nil {
		s.drawShip(snap.Ship)
	}
	s.drawParticles()
}

// drawShip renders the hull as a triangle pointing along the heading.
func (s *Session) drawShip(ship *object.Ship) {
	// Blink while protected (skip drawing in the "off" phase)
	if !shouldRenderBlink(ship.ProtectionLeft(s.snap.Now), playerBlinkFrequency) {
		return
	}

	// Triangle vertices relative to center:
	// - Nose (front): in the direction of Heading
	// - Wings: ~143 degrees off the nose, pulled in toward the hull
	noseAngle := ship.Heading
	leftAngle := ship.Heading + 2.5
	rightAngle := ship.Heading - 2.5
	size := ship.Radius

	points := s.canvas.BorrowPoints(3)
	points[0] = draw.Point{X: ship.Pos.X + math.Cos(noseAngle)*size, Y: ship.Pos.Y + math.Sin(noseAngle)*size}
	points[1] = draw.Point{X: ship.Pos.X + math.Cos(leftAngle)*size*0.7, Y: ship.Pos.Y + math.Sin(leftAngle)*size*0.7}
	points[2] = draw.Point{X: ship.Pos.X + math.Cos(rightAngle)*size*0.7, Y: ship.Pos.Y + math.Sin(rightAngle)*size*0.7}

	s.canvas.DrawPolygon(points, shipColor, true)
}

// drawAsteroid renders the irregular outline stored in the rock's shape.
func (s *Session) drawAsteroid(a *object.Asteroid) {
	if !shouldRenderBlink(a.Protection, rockBlinkFrequency) {
		return
	}

	numVerts := len(a.Shape)
	points := s.canvas.BorrowPoints(numVerts)
	for i, dist := range a.Shape {
		vertAngle := a.Heading + float64(i)*2*math.Pi/float64(numVerts)
		points[i] = draw.Point{
			X: a.Pos.X + math.Cos(vertAngle)*dist,
			Y: a.Pos.Y + math.Sin(vertAngle)*dist,
		}
	}

	s.canvas.DrawPolygon(points, rockColor, false)
}

// drawEnemy renders a scout as a swept dart, a bomber as a rolling diamond.
func (s *Session) drawEnemy(e *object.Enemy) {
	r := e.Radius
	switch e.Kind {
	case object.EnemyBomber:
		points := s.canvas.BorrowPoints(4)
		for i := range points {
			a := e.Heading + float64(i)*math.Pi/2
			points[i] = draw.Point{X: e.Pos.X + math.Cos(a)*r, Y: e.Pos.Y + math.Sin(a)*r}
		}
		s.canvas.DrawPolygon(points, bomberColor, true)
	default:
		nose := e.Heading
		points := s.canvas.BorrowPoints(4)
		points[0] = draw.Point{X: e.Pos.X + math.Cos(nose)*r, Y: e.Pos.Y + math.Sin(nose)*r}
		points[1] = draw.Point{X: e.Pos.X + math.Cos(nose+2.6)*r*0.9, Y: e.Pos.Y + math.Sin(nose+2.6)*r*0.9}
		points[2] = draw.Point{X: e.Pos.X - math.Cos(nose)*r*0.35, Y: e.Pos.Y - math.Sin(nose)*r*0.35}
		points[3] = draw.Point{X: e.Pos.X + math.Cos(nose-2.6)*r*0.9, Y: e.Pos.Y + math.Sin(nose-2.6)*r*0.9}
		s.canvas.DrawPolygon(points, scoutColor, true)
	}
}

// drawBoss renders the boss as a spiked hull tinted by phase.
func (s *Session) drawBoss(b *object.Boss) {
	const spikes = 10
	color := bossPhaseColor(b.Phase())

	points := s.canvas.BorrowPoints(spikes)
	for i := range points {
		a := b.Heading + float64(i)*2*math.Pi/spikes
		dist := b.Radius
		if i%2 == 1 {
			dist *= 0.72
		}
		points[i] = draw.Point{X: b.Pos.X + math.Cos(a)*dist, Y: b.Pos.Y + math.Sin(a)*dist}
	}

	s.canvas.DrawPolygon(points, color, false)
	s.canvas.SetFloat(b.Pos.X, b.Pos.Y, color)
}

// drawBullet renders a shot as a single pixel.
func (s *Session) drawBullet(b *object.Bullet) {
	color := bulletColor
	if b.Piercing {
		color = pierceColor
	}
	s.canvas.SetFloat(b.Pos.X, b.Pos.Y, color)
}

// drawMissile renders the warhead with a short exhaust pixel behind it.
func (s *Session) drawMissile(m *object.Missile) {
	s.canvas.SetFloat(m.Pos.X, m.Pos.Y, missileColor)
	tailX := m.Pos.X - math.Cos(m.Heading)*1.5
	tailY := m.Pos.Y - math.Sin(m.Heading)*1.5
	s.canvas.SetFloat(tailX, tailY, trailColor)
}

// drawBossShot renders a 2x2 blob so the dangerous shots read larger than
// bullets.
func (s *Session) drawBossShot(shot *object.BossShot) {
	s.canvas.SetFloat(shot.Pos.X-0.5, shot.Pos.Y-0.5, bossShotColor)
	s.canvas.SetFloat(shot.Pos.X+0.5, shot.Pos.Y-0.5, bossShotColor)
	s.canvas.SetFloat(shot.Pos.X-0.5, shot.Pos.Y+0.5, bossShotColor)
	s.canvas.SetFloat(shot.Pos.X+0.5, shot.Pos.Y+0.5, bossShotColor)
}

// drawShield renders the bubble as a circle around the hull. It flashes
// white on an absorb and blinks when about to collapse.
func (s *Session) drawShield(sh *object.Shield) {
	if sh.Remaining < 1.5 && !shouldRenderBlink(sh.Remaining, shieldBlinkFrequency) {
		return
	}

	color := shieldColor
	if sh.JustAbsorbed(s.snap.Now) {
		color = draw.ColorBrightWhite
	}

	const segments = 24
	points := s.canvas.BorrowPoints(segments)
	for i := range points {
		a := float64(i) * 2 * math.Pi / segments
		points[i] = draw.Point{X: sh.Pos.X + math.Cos(a)*sh.Radius, Y: sh.Pos.Y + math.Sin(a)*sh.Radius}
	}

	s.canvas.DrawPolygon(points, color, false)
}

// drawPowerUp renders a pickup as a small tinted diamond.
func (s *Session) drawPowerUp(p *object.PowerUp) {
	if p.Fading() && !shouldRenderBlink(p.Lifetime, pickupBlinkFrequency) {
		return
	}

	color := powerUpColors[p.Kind]
	points := s.canvas.BorrowPoints(4)
	for i := range points {
		a := float64(i) * math.Pi / 2
		points[i] = draw.Point{X: p.Pos.X + math.Cos(a)*p.Radius, Y: p.Pos.Y + math.Sin(a)*p.Radius}
	}

	s.canvas.DrawPolygon(points, color, false)
	s.canvas.SetFloat(p.Pos.X, p.Pos.Y, color)
}

// shouldRenderBlink reports whether a blinking object is in its visible
// phase. Objects with no time pressure render normally.
func shouldRenderBlink(remainingTime, frequency float64) bool {
	if remainingTime <= 0 {
		return true
	}
	phase := int(remainingTime * frequency)
	return phase%2 != 0
}
