package loop

import (
	"fmt"
	"math"
	"sync"

	"github.com/bdamage/Astroid-Classic/internal/draw"
	"github.com/bdamage/Astroid-Classic/internal/game"
	"github.com/bdamage/Astroid-Classic/internal/geom"
	"github.com/bdamage/Astroid-Classic/internal/object"
)

// particlePool reuses particle objects across bursts to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &particle{}
	},
}

// particle is a short-lived visual effect pixel.
type particle struct {
	pos, vel    geom.Vec
	lifetime    float64 // Seconds remaining
	maxLifetime float64 // Initial lifetime (for fade calculation)
	drag        float64 // Velocity decay (1.0 = no drag)
	color       draw.Color
}

// newParticle fetches a particle from the pool and initializes it.
func newParticle(pos, vel geom.Vec, lifetime float64, color draw.Color) *particle {
	p := particlePool.Get().(*particle)
	p.pos = pos
	p.vel = vel
	p.lifetime = lifetime
	p.maxLifetime = lifetime
	p.drag = 0.95
	p.color = color
	return p
}

var explosionColors = []draw.Color{
	draw.ColorBrightYellow,
	draw.ColorBrightRed,
	draw.ColorYellow,
	draw.ColorBrightWhite,
}

var thrustColors = []draw.Color{
	draw.ColorBrightYellow,
	draw.ColorYellow,
	draw.ColorBrightRed,
}

// spawnExplosion creates particles in a circular burst pattern.
func (s *Session) spawnExplosion(pos geom.Vec, count int, speed, lifetime float64) {
	for i := 0; i < count; i++ {
		// Random direction, speed at 50% to 150%, lifetime at 50% to 100%
		angle := s.rng.Float64() * 2 * math.Pi
		spd := speed * (0.5 + s.rng.Float64())
		life := lifetime * (0.5 + s.rng.Float64()*0.5)
		color := explosionColors[s.rng.Intn(len(explosionColors))]

		s.particles = append(s.particles, newParticle(pos, geom.FromAngle(angle).Scale(spd), life, color))
	}
}

// spawnThrust creates particles behind a thrusting ship.
func (s *Session) spawnThrust(ship *object.Ship) {
	count := 1 + s.rng.Intn(2)
	back := ship.Pos.Sub(geom.FromAngle(ship.Heading).Scale(ship.Radius))

	for i := 0; i < count; i++ {
		// Opposite direction of ship facing, with spread
		thrustAngle := ship.Heading + math.Pi + (s.rng.Float64()-0.5)*0.5
		speed := 8.0 + s.rng.Float64()*4.0
		lifetime := 0.1 + s.rng.Float64()*0.15
		color := thrustColors[s.rng.Intn(len(thrustColors))]

		p := newParticle(back, geom.FromAngle(thrustAngle).Scale(speed), lifetime, color)
		p.drag = 0.85
		s.particles = append(s.particles, p)
	}
}

// spawnMissileTrail leaves one exhaust particle behind a missile per frame.
func (s *Session) spawnMissileTrail(m *object.Missile) {
	back := m.Pos.Sub(geom.FromAngle(m.Heading).Scale(1.0))
	jitter := (s.rng.Float64() - 0.5) * 0.6

	p := newParticle(back, geom.FromAngle(m.Heading+math.Pi+jitter).Scale(5.0), 0.2, trailColor)
	p.drag = 0.85
	s.particles = append(s.particles, p)
}

// updateParticles moves particles and recycles the expired ones.
func (s *Session) updateParticles(dt float64) {
	kept := s.particles[:0]
	for _, p := range s.particles {
		p.lifetime -= dt
		if p.lifetime <= 0 {
			particlePool.Put(p)
			continue
		}
		dragFactor := math.Pow(p.drag, dt*60) // Normalize drag to ~60fps
		p.vel = p.vel.Scale(dragFactor)
		p.pos = p.pos.Add(p.vel.Scale(dt))
		kept = append(kept, p)
	}
	s.particles = kept
}

// drawParticles renders the live particles as single pixels.
func (s *Session) drawParticles() {
	for _, p := range s.particles {
		// Skip faded particles (< 25% lifetime)
		if p.maxLifetime > 0 && p.lifetime/p.maxLifetime < 0.25 {
			continue
		}
		s.canvas.SetFloat(p.pos.X, p.pos.Y, p.color)
	}
}

// releaseEffects recycles every live particle and drops pending popups.
func (s *Session) releaseEffects() {
	for _, p := range s.particles {
		particlePool.Put(p)
	}
	s.particles = s.particles[:0]
	s.popups = s.popups[:0]
}

// Popup tuning.
const (
	popupLifetime = 1.2
	popupRise     = 6.0 // Logical units per second, drifting upward
)

// popup is a line of floating text tied to a field position.
type popup struct {
	text     string
	pos      geom.Vec
	rise     float64
	lifetime float64
	color    draw.Color
}

// addPopup floats short text up from a field position.
func (s *Session) addPopup(text string, pos geom.Vec, color draw.Color) {
	s.popups = append(s.popups, popup{
		text:     text,
		pos:      pos,
		rise:     popupRise,
		lifetime: popupLifetime,
		color:    color,
	})
}

// announce pins longer-lived text to the field center.
func (s *Session) announce(text string, color draw.Color, lifetime float64) {
	s.popups = append(s.popups, popup{
		text:     text,
		pos:      geom.Size{W: viewWidth, H: viewHeight}.Center(),
		lifetime: lifetime,
		color:    color,
	})
}

// updatePopups drifts popups upward and expires them.
func (s *Session) updatePopups(dt float64) {
	kept := s.popups[:0]
	for _, p := range s.popups {
		p.lifetime -= dt
		if p.lifetime <= 0 {
			continue
		}
		p.pos.Y -= p.rise * dt
		kept = append(kept, p)
	}
	s.popups = kept
}

// drawPopups writes the floating text, marking cells dirty so the canvas
// cleans them up as the text moves.
func (s *Session) drawPopups() {
	termWidth := s.canvas.TerminalWidth()
	termHeight := s.canvas.TerminalHeight()

	for i := range s.popups {
		p := &s.popups[i]
		if p.lifetime < 0.4 && !shouldRenderBlink(p.lifetime, popupBlinkFrequency) {
			continue
		}

		col, row := s.canvas.LogicalToTerminal(p.pos.X, p.pos.Y)
		col -= len(p.text) / 2

		if row < 1 || row > termHeight {
			continue
		}
		if col < 1 || col+len(p.text) > termWidth {
			continue
		}

		s.cw.WriteAtColored(col, row, p.color, p.text)
		s.canvas.MarkTextDirty(col, row, len(p.text))
	}
}

// consumeEvents drains the simulation's notifications (non-blocking).
func (s *Session) consumeEvents() {
	for {
		select {
		case ev := <-s.game.Events():
			s.handleEvent(ev)
		default:
			return
		}
	}
}

// handleEvent turns one simulation event into particles or floating text.
func (s *Session) handleEvent(ev game.Event) {
	switch ev.Kind {
	case game.EventScore:
		if ev.Value > 0 {
			s.addPopup(fmt.Sprintf("+%d", ev.Value), ev.Pos, draw.ColorBrightYellow)
		}
	case game.EventAchievement:
		text := ev.Label
		if ev.Value > 0 {
			text = fmt.Sprintf("%s +%d", ev.Label, ev.Value)
		}
		s.addPopup(text, ev.Pos, draw.ColorBrightCyan)
	case game.EventPowerUp:
		s.addPopup(ev.Label, ev.Pos, draw.ColorBrightGreen)
	case game.EventExplosion:
		s.spawnExplosion(ev.Pos, ev.Value*4, 20.0, 0.5)
	case game.EventShipDestroyed:
		s.spawnExplosion(ev.Pos, 24, 25.0, 0.8)
	case game.EventWaveStarted:
		s.announce(fmt.Sprintf("WAVE %d", ev.Value), draw.ColorBrightWhite, 2.0)
	case game.EventWaveCleared:
		s.announce(fmt.Sprintf("WAVE %d CLEARED", ev.Value), draw.ColorBrightGreen, 2.0)
	case game.EventBossIntro:
		s.announce("!! BOSS INBOUND !!", draw.ColorBrightMagenta, 2.5)
	case game.EventBossDefeated:
		s.addPopup("BOSS DOWN", ev.Pos, draw.ColorBrightYellow)
	case game.EventNuke:
		s.announce("NUKE", draw.ColorBrightWhite, 1.5)
	}
}
