package object

// Shield tuning.
const (
	ShieldHitPoints = 3
	ShieldDuration  = 8.0
	shieldPad       = 1.6 // Radius margin beyond the owner's hull
)

// Shield is a barrier following the ship that owns it. The owner reference
// is non-owning: when the ship dies the orchestrator discards the shield, and
// the shield itself drops out the moment it sees its referent inactive. It
// expires on whichever of hit points or countdown runs out first.
type Shield struct {
	Body
	Hits      int
	Remaining float64

	owner   *Body
	lastHit float64 // Sim time of the last absorbed hit (renderer flash)
}

// NewShield raises a shield around owner at sim time now.
func NewShield(owner *Body, now float64) *Shield {
	s := &Shield{
		Hits:      ShieldHitPoints,
		Remaining: ShieldDuration,
		owner:     owner,
		lastHit:   now - 1,
	}
	s.Pos = owner.Pos
	s.Radius = owner.Radius + shieldPad
	return s
}

// Absorb soaks one impact, costing one hit point. Returns false once the
// shield has no points left to spend.
func (s *Shield) Absorb(now float64) bool {
	if !s.Active() || s.Hits <= 0 {
		return false
	}
	s.Hits--
	s.lastHit = now
	if s.Hits <= 0 {
		s.Deactivate()
	}
	return true
}

// JustAbsorbed reports whether a hit landed within the renderer flash window.
func (s *Shield) JustAbsorbed(now float64) bool {
	return now-s.lastHit < 0.25
}

// Update follows the owner and runs the countdown.
func (s *Shield) Update(ctx *Context) {
	if s.owner == nil || !s.owner.Active() {
		s.Deactivate()
		return
	}
	s.Remaining -= ctx.DT
	if s.Remaining <= 0 || s.Hits <= 0 {
		s.Deactivate()
		return
	}
	s.Pos = s.owner.Pos
	s.Radius = s.owner.Radius + shieldPad
}
