// Package loop drives one terminal session: it reads keys, ticks the
// simulation and renders half-block frames at a fixed rate. Every session
// owns its own game; only the leaderboard is shared.
package loop

import (
	"bufio"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/bdamage/Astroid-Classic/internal/config"
	"github.com/bdamage/Astroid-Classic/internal/draw"
	"github.com/bdamage/Astroid-Classic/internal/game"
	"github.com/bdamage/Astroid-Classic/internal/geom"
	"github.com/bdamage/Astroid-Classic/internal/input"
	"github.com/bdamage/Astroid-Classic/internal/object"
	"github.com/bdamage/Astroid-Classic/internal/score"
)

// screen is the session's position in the screen flow.
type screen int

const (
	screenTitle    screen = iota // Title, controls and difficulty select
	screenPlaying                // Active gameplay
	screenGameOver               // Final score, name entry and leaderboard
)

// Session runs the loop for a single connection.
type Session struct {
	scores       *score.Store
	canvas       *draw.Canvas
	cw           *draw.ChunkWriter // Accumulates UI text for chunked output
	reader       *bufio.Reader
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	rng          *rand.Rand

	game       *game.Game
	snap       game.Snapshot
	difficulty config.Difficulty
	custom     *config.Settings // Settings file override, nil for presets

	inp         input.Input
	running     bool
	screen      screen
	prevScreen  screen
	forceClear  bool
	lastInput   time.Time
	isInactive  bool
	wasInactive bool
	delta       time.Duration

	particles []*particle
	popups    []popup

	// Game-over bookkeeping
	finalScore int
	finalWave  int
	entering   bool // Name entry open; letter keys must not quit
	nameBuf    []byte
	rank       int
	board      []score.Entry
}

// Options configures a session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Scores       *score.Store // Shared leaderboard; nil runs memory-only
	Difficulty   config.Difficulty
	Settings     *config.Settings // Overrides the presets when non-nil
	Seed         int64            // 0 seeds from the clock
}

// NewSession creates a session reading keys from r and writing frames to w.
func NewSession(r *bufio.Reader, w io.Writer, opts Options) *Session {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	scores := opts.Scores
	if scores == nil {
		scores = score.NewStore(nil)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	difficulty := opts.Difficulty
	if opts.Settings != nil {
		difficulty = config.Custom
	}

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := draw.TerminalSizeRawWith(termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, viewWidth, viewHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	chunkWriter := draw.NewChunkWriter(w, offsetCol, offsetRow)

	return &Session{
		scores:       scores,
		canvas:       canvas,
		cw:           chunkWriter,
		reader:       r,
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		rng:          rand.New(rand.NewSource(seed)),
		difficulty:   difficulty,
		custom:       opts.Settings,
		running:      true,
		screen:       screenTitle,
		lastInput:    time.Now(),
		board:        scores.Top(),
	}
}

// Run drives the session until quit or disconnect.
func (s *Session) Run() error {
	draw.HideCursor(s.writer)
	defer draw.ShowCursor(s.writer)
	draw.ClearScreen(s.writer)

	lastTime := time.Now()

	for s.running {
		frameStart := time.Now()
		s.delta = frameStart.Sub(lastTime)
		if s.delta > maxFrameDelta {
			s.delta = maxFrameDelta
		}
		lastTime = frameStart

		s.processInput()
		s.updateScreen()

		switch s.screen {
		case screenTitle:
			s.updateTitle()
		case screenPlaying:
			s.updatePlaying()
		case screenGameOver:
			s.updateGameOver()
		}

		if err := s.drawFrame(); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(s.writer)
	return nil
}

// processInput reads pending keys and tracks inactivity.
func (s *Session) processInput() {
	s.inp = input.ReadInput(s.inputStream)

	if len(s.inp.Pressed) > 0 {
		s.lastInput = time.Now()
		s.isInactive = false
	} else if time.Since(s.lastInput).Seconds() > inactivityDisconnect {
		s.running = false
	} else if time.Since(s.lastInput).Seconds() > inactivityWarn {
		s.isInactive = true
	}

	// While the name prompt is open, q is just a letter.
	if s.inp.Quit && !s.entering {
		s.running = false
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area.
func (s *Session) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(s.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != s.canvas.TerminalWidth() || renderHeight != s.canvas.TerminalHeight() ||
		offsetCol != s.canvas.OffsetCol() || offsetRow != s.canvas.OffsetRow() {
		draw.ClearScreen(s.writer)
		s.canvas.ForceRedraw()
	}

	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.cw.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and
// computes the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = termWidth
	renderHeight = termHeight
	if renderWidth > maxTermWidth {
		renderWidth = maxTermWidth
	}
	if renderHeight > maxTermHeight {
		renderHeight = maxTermHeight
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// updateTitle handles the title screen: difficulty select and start.
func (s *Session) updateTitle() {
	switch s.inp.Number {
	case 1:
		s.difficulty = config.Easy
	case 2:
		s.difficulty = config.Normal
	case 3:
		s.difficulty = config.Hard
	}

	if s.inp.Fire || s.inp.Enter {
		s.startGame()
	}
}

// updatePlaying ticks the simulation with the mapped controls.
func (s *Session) updatePlaying() {
	ctrl := object.Control{
		Thrust:      s.inp.Thrust,
		Left:        s.inp.Left,
		Right:       s.inp.Right,
		Fire:        s.inp.Fire,
		SpecialJust: s.inp.Missile,
		ShieldJust:  s.inp.Shield,
	}

	dt := s.delta.Seconds()
	s.game.Advance(dt, ctrl)
	s.consumeEvents()
	s.updateParticles(dt)
	s.updatePopups(dt)

	s.snap = s.game.Snapshot()
	if s.snap.Ship != nil && s.snap.Ship.Thrusting {
		s.spawnThrust(s.snap.Ship)
	}
	for _, m := range s.snap.Missiles {
		s.spawnMissileTrail(m)
	}

	if s.snap.Over {
		s.finishGame()
	}
}

// updateGameOver keeps the death debris animating and handles name entry or
// restart.
func (s *Session) updateGameOver() {
	dt := s.delta.Seconds()
	s.updateParticles(dt)
	s.updatePopups(dt)

	if s.entering {
		s.typeName()
		return
	}

	if s.inp.Fire || s.inp.Enter {
		s.startGame()
	} else if s.inp.Escape {
		input.ResetKeyInput(s.inputStream)
		s.screen = screenTitle
	}
}

// typeName feeds printable keys into the name buffer and submits on enter.
func (s *Session) typeName() {
	for _, b := range s.inp.Pressed {
		switch {
		case b == '\b' || b == '\x7f':
			if len(s.nameBuf) > 0 {
				s.nameBuf = s.nameBuf[:len(s.nameBuf)-1]
			}
		case b >= ' ' && b < '\x7f' && len(s.nameBuf) < maxNameLength:
			s.nameBuf = append(s.nameBuf, b)
		}
	}

	if !s.inp.Enter {
		return
	}

	name := strings.TrimSpace(string(s.nameBuf))
	if name == "" {
		name = "ACE"
	}
	s.rank, _ = s.scores.Submit(score.Entry{Name: name, Score: s.finalScore, Wave: s.finalWave})
	s.board = s.scores.Top()
	s.entering = false
	s.forceClear = true
	input.ResetKeyInput(s.inputStream)
}

// startGame begins a fresh run at the selected difficulty.
func (s *Session) startGame() {
	input.ResetKeyInput(s.inputStream)
	s.releaseEffects()

	settings := config.ForDifficulty(s.difficulty)
	if s.difficulty == config.Custom && s.custom != nil {
		settings = *s.custom
	}

	s.game = game.NewGame(geom.Size{W: viewWidth, H: viewHeight}, settings, s.rng)
	s.snap = s.game.Snapshot()
	s.screen = screenPlaying
}

// finishGame freezes the final tallies and opens the game-over screen.
func (s *Session) finishGame() {
	s.finalScore = s.snap.Score
	s.finalWave = s.snap.Wave
	s.entering = s.scores.Qualifies(s.finalScore)
	s.nameBuf = s.nameBuf[:0]
	s.rank = 0
	s.board = s.scores.Top()
	input.ResetKeyInput(s.inputStream)
	s.screen = screenGameOver
}
