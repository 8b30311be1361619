package game

import "github.com/bdamage/Astroid-Classic/internal/geom"

// EventKind tags a discrete notification for the presentation layer.
type EventKind int

const (
	EventScore EventKind = iota
	EventLifeLost
	EventAchievement
	EventWaveStarted
	EventWaveCleared
	EventBossIntro
	EventBossDefeated
	EventPowerUp
	EventShipDestroyed
	EventExplosion
	EventNuke
	EventGameOver
)

// Event is one fire-and-forget notification. Pos is where it happened when
// that matters, Value carries a score delta or magnitude, Label is display
// text for achievements and pickups.
type Event struct {
	Kind  EventKind
	Pos   geom.Vec
	Value int
	Label string
}

// Events returns the notification stream. The channel is buffered; when the
// reader falls behind, new events are dropped rather than stalling the tick.
func (g *Game) Events() <-chan Event {
	return g.events
}

func (g *Game) emit(ev Event) {
	select {
	case g.events <- ev:
	default:
	}
}
