package loop

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/bdamage/Astroid-Classic/internal/config"
	"github.com/bdamage/Astroid-Classic/internal/game"
	"github.com/bdamage/Astroid-Classic/internal/input"
	"github.com/bdamage/Astroid-Classic/internal/score"
)

// newTestSession builds a session with a fixed terminal size, a live input
// pipe and an in-memory frame buffer.
func newTestSession(t *testing.T) (*Session, *io.PipeWriter, *bytes.Buffer) {
	t.Helper()

	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	var frames bytes.Buffer
	s := NewSession(bufio.NewReader(pr), &frames, Options{
		TermSizeFunc: func() (int, int, error) { return 100, 30, nil },
		Seed:         1,
	})
	return s, pw, &frames
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestClampTermSize_CentersOversizedTerminal(t *testing.T) {
	w, h, offCol, offRow := clampTermSize(200, 60)

	if w != maxTermWidth || h != maxTermHeight {
		t.Errorf("render size = %dx%d, want %dx%d", w, h, maxTermWidth, maxTermHeight)
	}
	if offCol != (200-maxTermWidth)/2 || offRow != (60-maxTermHeight)/2 {
		t.Errorf("offset = (%d,%d), want (%d,%d)", offCol, offRow, (200-maxTermWidth)/2, (60-maxTermHeight)/2)
	}
}

func TestClampTermSize_SmallTerminalPassesThrough(t *testing.T) {
	w, h, offCol, offRow := clampTermSize(80, 24)

	if w != 80 || h != 24 || offCol != 0 || offRow != 0 {
		t.Errorf("got (%d,%d,%d,%d), want (80,24,0,0)", w, h, offCol, offRow)
	}
}

func TestShouldRenderBlink_NoTimePressureAlwaysVisible(t *testing.T) {
	if !shouldRenderBlink(0, 10) {
		t.Error("zero remaining time should render")
	}
	if !shouldRenderBlink(-1, 10) {
		t.Error("negative remaining time should render")
	}
}

func TestShouldRenderBlink_AlternatesWithPhase(t *testing.T) {
	// At 10Hz, 0.35s remaining is phase 3 (odd, visible) and 0.25s is
	// phase 2 (even, hidden).
	if !shouldRenderBlink(0.35, 10) {
		t.Error("odd phase should render")
	}
	if shouldRenderBlink(0.25, 10) {
		t.Error("even phase should be hidden")
	}
}

func TestDifficultyLine_ConstantWidthAndBrackets(t *testing.T) {
	easy := difficultyLine(config.Easy)
	normal := difficultyLine(config.Normal)
	hard := difficultyLine(config.Hard)

	if len(easy) != len(normal) || len(normal) != len(hard) {
		t.Errorf("widths differ: %d, %d, %d", len(easy), len(normal), len(hard))
	}
	if !strings.Contains(normal, "[2 Normal]") {
		t.Errorf("selection not bracketed: %q", normal)
	}
	if strings.Contains(normal, "[1 Easy]") {
		t.Errorf("unselected option bracketed: %q", normal)
	}
}

func TestUpdateTitle_SelectsDifficultyAndStarts(t *testing.T) {
	s, _, _ := newTestSession(t)

	s.inp = input.Input{Number: 3}
	s.updateTitle()
	if s.difficulty != config.Hard {
		t.Fatalf("difficulty = %v, want Hard", s.difficulty)
	}

	s.inp = input.Input{Fire: true}
	s.updateTitle()
	if s.screen != screenPlaying {
		t.Fatal("fire on title should start the game")
	}
	if s.game == nil {
		t.Fatal("no game created")
	}
}

func TestTypeName_EditsAndSubmits(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.finalScore = 900
	s.finalWave = 4
	s.entering = true

	s.inp = input.Input{Pressed: []byte("KIM")}
	s.typeName()
	if got := string(s.nameBuf); got != "KIM" {
		t.Fatalf("nameBuf = %q, want KIM", got)
	}

	s.inp = input.Input{Pressed: []byte{0x7f}}
	s.typeName()
	if got := string(s.nameBuf); got != "KI" {
		t.Fatalf("nameBuf after delete = %q, want KI", got)
	}

	s.inp = input.Input{Enter: true}
	s.typeName()
	if s.entering {
		t.Error("enter should close name entry")
	}
	if s.rank != 1 {
		t.Errorf("rank = %d, want 1", s.rank)
	}
	if len(s.board) != 1 || s.board[0].Name != "KI" || s.board[0].Score != 900 {
		t.Errorf("board = %+v", s.board)
	}
	if !s.forceClear {
		t.Error("submit should request a full clear for the layout swap")
	}
}

func TestTypeName_BlankNameFallsBack(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.finalScore = 100
	s.entering = true

	s.inp = input.Input{Pressed: []byte("  "), Enter: true}
	s.typeName()

	if len(s.board) != 1 || s.board[0].Name != "ACE" {
		t.Errorf("board = %+v, want single ACE entry", s.board)
	}
}

func TestTypeName_CapsLength(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.entering = true

	s.inp = input.Input{Pressed: []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")}
	s.typeName()

	if len(s.nameBuf) != maxNameLength {
		t.Errorf("nameBuf length = %d, want %d", len(s.nameBuf), maxNameLength)
	}
}

func TestFinishGame_OpensNameEntryWhenQualifying(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.snap = game.Snapshot{Score: 500, Wave: 3, Over: true}

	s.finishGame()

	if s.screen != screenGameOver {
		t.Fatal("not on game over screen")
	}
	if s.finalScore != 500 || s.finalWave != 3 {
		t.Errorf("final tallies = %d/%d, want 500/3", s.finalScore, s.finalWave)
	}
	if !s.entering {
		t.Error("a score on an empty board should open name entry")
	}
}

func TestFinishGame_SkipsNameEntryWhenOutclassed(t *testing.T) {
	s, _, _ := newTestSession(t)
	for i := 0; i < score.TopSize; i++ {
		s.scores.Submit(score.Entry{Name: "BOT", Score: 10000 + i})
	}
	s.snap = game.Snapshot{Score: 5, Wave: 1, Over: true}

	s.finishGame()

	if s.entering {
		t.Error("a score below the board should not open name entry")
	}
}

func TestUpdateGameOver_RestartAndMenu(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.screen = screenGameOver

	s.inp = input.Input{Escape: true}
	s.updateGameOver()
	if s.screen != screenTitle {
		t.Fatal("escape should return to the title")
	}

	s.screen = screenGameOver
	s.inp = input.Input{Fire: true}
	s.updateGameOver()
	if s.screen != screenPlaying {
		t.Fatal("fire should restart")
	}
}

func TestProcessInput_QuitSuppressedDuringNameEntry(t *testing.T) {
	s, pw, _ := newTestSession(t)
	s.entering = true

	pw.Write([]byte("q"))
	waitFor(t, func() bool {
		s.processInput()
		return len(s.inp.Pressed) > 0
	})
	if !s.running {
		t.Fatal("q while typing a name must not quit")
	}

	s.entering = false
	pw.Write([]byte("q"))
	waitFor(t, func() bool {
		s.processInput()
		return !s.running
	})
}

func TestDrawFrame_TitleScreenContent(t *testing.T) {
	s, _, frames := newTestSession(t)

	if err := s.drawFrame(); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}

	out := frames.String()
	if !strings.Contains(out, "Classic Asteroids over SSH") {
		t.Error("title subtitle missing")
	}
	if !strings.Contains(out, "Difficulty:") {
		t.Error("difficulty picker missing")
	}
	if !strings.Contains(out, "Missile") {
		t.Error("controls listing missing")
	}
}

func TestDrawFrame_ClearsOnScreenTransition(t *testing.T) {
	s, _, frames := newTestSession(t)

	// First frame settles prevScreen on the title.
	if err := s.drawFrame(); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
	frames.Reset()

	s.screen = screenPlaying
	s.snap = game.Snapshot{}
	if err := s.drawFrame(); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}

	if !strings.Contains(frames.String(), "\033[2J") {
		t.Error("screen transition should clear the terminal")
	}
	if s.prevScreen != screenPlaying {
		t.Error("prevScreen not synced")
	}
}
