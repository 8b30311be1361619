package wave

import (
	"math/rand"

	"github.com/bdamage/Astroid-Classic/internal/geom"
	"github.com/bdamage/Astroid-Classic/internal/object"
)

// State is the director's position in the wave cycle.
type State int

const (
	StateIdle          State = iota // Counting down to the next wave
	StateSpawning                   // Releasing the spawn groups
	StateAwaitingClear              // All spawned, waiting for zero live enemies
	StateBossIntro                  // Boss announced, counting down to its entrance
	StateBossBattle                 // Boss alive, regular spawning suppressed
)

// Placement tuning.
const (
	minPlayerDist  = 30.0 // Spawns never this close to the player
	placeAttempts  = 10
	edgeMargin     = 2.0
	firstWaveDelay = 1.5
	nextWaveDelay  = 3.0 // Breather after a cleared wave
	bossIntroDelay = 2.5
)

// Env carries the per-tick inputs the director reads. References inside it
// are valid for the duration of one call only.
type Env struct {
	Bounds      geom.Size
	PlayerPos   geom.Vec
	PlayerAlive bool
	LiveEnemies int
	Rand        *rand.Rand
}

// SpawnRequest names what to materialize where. The orchestrator owns the
// collections and performs the creation.
type SpawnRequest struct {
	Kind object.EnemyKind
	Pos  geom.Vec
}

// TickResult reports everything that happened during one advance.
type TickResult struct {
	Spawns      []SpawnRequest
	WaveStarted int  // Wave number that just began, 0 otherwise
	WaveCleared int  // Wave number that just completed, 0 otherwise
	Bonus       int  // Completion bonus, set together with WaveCleared
	BossIntro   bool // A boss wave just announced itself
	SpawnBoss   bool // The boss materializes this tick
}

// Director is the wave state machine. It never touches entity collections:
// it emits spawn requests and completion signals, the orchestrator acts on
// them.
type Director struct {
	state   State
	cfg     Config
	number  int
	group   int     // Cursor into cfg.Groups
	spawned int     // Spawned so far from the current group
	timer   float64 // Idle countdown, spawn accumulator, or intro countdown
}

// NewDirector returns a director counting down to wave 1.
func NewDirector() *Director {
	return &Director{
		state: StateIdle,
		timer: firstWaveDelay,
	}
}

// State returns the current machine state.
func (d *Director) State() State {
	return d.state
}

// Number returns the current wave number, 0 before the first wave starts.
func (d *Director) Number() int {
	return d.number
}

// NextIn returns the seconds until the next wave while idle, 0 otherwise.
func (d *Director) NextIn() float64 {
	if d.state == StateIdle && d.timer > 0 {
		return d.timer
	}
	return 0
}

// Tick advances the machine by dt and returns the spawns and transitions it
// produced.
func (d *Director) Tick(dt float64, env Env) TickResult {
	var res TickResult

	switch d.state {
	case StateIdle:
		d.timer -= dt
		if d.timer <= 0 {
			d.startWave(d.number+1, &res)
		}

	case StateSpawning:
		d.timer += dt
		for d.state == StateSpawning && d.timer >= d.cfg.Groups[d.group].Delay {
			g := d.cfg.Groups[d.group]
			d.timer -= g.Delay
			res.Spawns = append(res.Spawns, SpawnRequest{
				Kind: g.Kind,
				Pos:  d.placeSpawn(env),
			})
			d.spawned++
			if d.spawned >= g.Count {
				d.group++
				d.spawned = 0
				if d.group >= len(d.cfg.Groups) {
					d.state = StateAwaitingClear
				}
			}
		}

	case StateAwaitingClear:
		// Spawning done and zero live enemies are independent conditions,
		// both required.
		if env.LiveEnemies == 0 {
			res.WaveCleared = d.number
			res.Bonus = d.cfg.Bonus
			d.state = StateIdle
			d.timer = nextWaveDelay
		}

	case StateBossIntro:
		d.timer -= dt
		if d.timer <= 0 {
			d.state = StateBossBattle
			res.SpawnBoss = true
		}

	case StateBossBattle:
		// Suppressed until the orchestrator reports the kill
	}

	return res
}

// BossDefeated reports the boss kill. The wave completes immediately and the
// next one is scheduled; the cleared wave number and its bonus are returned
// for scoring.
func (d *Director) BossDefeated() (cleared, bonus int) {
	d.state = StateIdle
	d.timer = nextWaveDelay
	return d.number, d.cfg.Bonus
}

func (d *Director) startWave(n int, res *TickResult) {
	d.number = n
	d.cfg = GenerateConfig(n)
	d.group = 0
	d.spawned = 0
	res.WaveStarted = n

	if d.cfg.Boss {
		d.state = StateBossIntro
		d.timer = bossIntroDelay
		res.BossIntro = true
		return
	}
	d.state = StateSpawning
	d.timer = 0
}

// placeSpawn picks a random edge position far enough from the player, trying
// a bounded number of times before falling back to the fixed top-left margin
// rather than stalling the wave.
func (d *Director) placeSpawn(env Env) geom.Vec {
	for i := 0; i < placeAttempts; i++ {
		pos := randomEdge(env.Bounds, env.Rand)
		if !env.PlayerAlive || pos.DistTo(env.PlayerPos) >= minPlayerDist {
			return pos
		}
	}
	return geom.V(edgeMargin, edgeMargin)
}

func randomEdge(bounds geom.Size, rng *rand.Rand) geom.Vec {
	switch rng.Intn(4) {
	case 0: // Top
		return geom.V(rng.Float64()*bounds.W, edgeMargin)
	case 1: // Bottom
		return geom.V(rng.Float64()*bounds.W, bounds.H-edgeMargin)
	case 2: // Left
		return geom.V(edgeMargin, rng.Float64()*bounds.H)
	default: // Right
		return geom.V(bounds.W-edgeMargin, rng.Float64()*bounds.H)
	}
}
