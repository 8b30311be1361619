package loop

import (
	"fmt"
	"strings"
	"time"

	"github.com/bdamage/Astroid-Classic/internal/config"
	"github.com/bdamage/Astroid-Classic/internal/draw"
	"github.com/bdamage/Astroid-Classic/internal/wave"
)

// drawFrame draws the current frame.
func (s *Session) drawFrame() error {
	// On screen or inactivity transitions, do a full terminal clear so UI
	// elements from the previous state don't persist on screen.
	stateChanged := s.screen != s.prevScreen
	inactiveChanged := s.isInactive != s.wasInactive
	if stateChanged || inactiveChanged || s.forceClear {
		s.cw.WriteString("\033[H\033[2J")
		s.canvas.ForceRedraw()
		s.prevScreen = s.screen
		s.wasInactive = s.isInactive
		s.forceClear = false
	}

	s.canvas.Clear()

	// The game-over screen keeps the frozen field and debris behind the text.
	if s.screen == screenPlaying || s.screen == screenGameOver {
		s.renderWorld()
	}

	s.canvas.Render(s.cw)
	s.canvas.RenderBorder(s.cw)

	termWidth := s.canvas.TerminalWidth()
	termHeight := s.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if s.isInactive {
		s.drawInactivityScreen(centerX, centerY)
		return s.cw.Flush()
	}

	switch s.screen {
	case screenTitle:
		s.drawTitleScreen(centerX, centerY)
	case screenPlaying:
		s.drawPopups()
		s.drawHUD(termWidth, termHeight, centerX, centerY)
	case screenGameOver:
		s.drawGameOverScreen(centerX, centerY)
	}

	return s.cw.Flush()
}

// drawInactivityScreen draws the inactivity warning screen.
func (s *Session) drawInactivityScreen(centerX, centerY int) {
	cw := s.cw
	title := "INACTIVITY WARNING"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(inactivityDisconnect-time.Since(s.lastInput).Seconds()),
	)
	cw.WriteAt(centerX-len(msg)/2, centerY, msg)

	hint := "Press any key to continue"
	cw.WriteAt(centerX-len(hint)/2, centerY+2, hint)
}

// drawTitleScreen draws the title screen.
func (s *Session) drawTitleScreen(centerX, centerY int) {
	// ASCII art title (figlet "small" font)
	titleArt := []string{
		`   _    ___  _____  ___   ___   ___  ___  `,
		`  /_\  / __||_   _|| _ \ / _ \ |_ _||   \ `,
		` / _ \ \__ \  | |  |   /| (_) | | | | |) |`,
		`/_/ \_\|___/  |_|  |_|_\ \___/ |___||___/ `,
		`                                          `,
	}

	// Find max width for centering
	titleWidth := 0
	for _, line := range titleArt {
		if len(line) > titleWidth {
			titleWidth = len(line)
		}
	}

	// Draw title art centered
	cw := s.cw
	titleStartY := centerY - 10
	if titleStartY < 1 {
		titleStartY = 1
	}
	for i, line := range titleArt {
		cw.WriteAt(centerX-titleWidth/2, titleStartY+i, line)
	}

	// Subtitle
	subtitle := "~ Classic Asteroids over SSH ~"
	cw.WriteAt(centerX-len(subtitle)/2, titleStartY+len(titleArt)+1, subtitle)

	// Best run so far
	if len(s.board) > 0 {
		best := s.board[0]
		hsText := fmt.Sprintf("High Score: %d by %s", best.Score, best.Name)
		cw.WriteAtColored(centerX-len(hsText)/2, titleStartY+len(titleArt)+2, draw.ColorBrightYellow, hsText)
	}

	// Difficulty select
	diffLine := difficultyLine(s.difficulty)
	cw.WriteAt(centerX-len(diffLine)/2, titleStartY+len(titleArt)+4, diffLine)

	// Controls section
	controlsY := titleStartY + len(titleArt) + 6
	controlHeader := "Controls"
	cw.WriteAt(centerX-len(controlHeader)/2, controlsY, controlHeader)

	controlLines := []string{
		"W / Up  . . . . .  Thrust",
		"A D / < >  . . . . Rotate",
		"SPACE  . . . . . .  Shoot",
		"X  . . . . . . .  Missile",
		"E  . . . . . . . . Shield",
		"Q  . . . . . . . . . Quit",
	}
	for i, line := range controlLines {
		cw.WriteAt(centerX-len(line)/2, controlsY+1+i, line)
	}

	// Blinking start prompt
	if time.Now().UnixMilli()/600%2 == 0 {
		prompt := ">>  Press SPACE to Start  <<"
		cw.WriteAt(centerX-len(prompt)/2, controlsY+len(controlLines)+2, prompt)
	}
}

// difficultyLine renders the difficulty picker with the selection bracketed.
// Every selection produces the same width so the line overwrites cleanly.
func difficultyLine(sel config.Difficulty) string {
	options := []struct {
		d     config.Difficulty
		label string
	}{
		{config.Easy, "1 Easy"},
		{config.Normal, "2 Normal"},
		{config.Hard, "3 Hard"},
	}

	var b strings.Builder
	b.WriteString("Difficulty: ")
	for _, o := range options {
		if o.d == sel {
			b.WriteString("[" + o.label + "]")
		} else {
			b.WriteString(" " + o.label + " ")
		}
		b.WriteString(" ")
	}
	return b.String()
}

// drawHUD draws the in-game overlay.
// Always-on fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen; fields that come and go mark their cells
// dirty so the canvas repaints them once they disappear.
func (s *Session) drawHUD(termWidth, termHeight, centerX, centerY int) {
	cw := s.cw
	snap := s.snap

	// Score and multiplier (top left)
	scoreText := fmt.Sprintf("Score: %-8d", snap.Score)
	cw.WriteAt(2, 1, scoreText)
	multText := fmt.Sprintf("x%-4.1f", snap.Multiplier)
	if snap.Multiplier > 1 {
		cw.WriteAtColored(2+len(scoreText), 1, draw.ColorBrightYellow, multText)
	} else {
		cw.WriteAt(2+len(scoreText), 1, multText)
	}

	// Wave (top center)
	waveText := fmt.Sprintf("Wave: %-3d", snap.Wave)
	cw.WriteAt(centerX-len(waveText)/2, 1, waveText)

	// Lives (top right)
	livesText := fmt.Sprintf("Lives: %-3d", snap.Lives)
	cw.WriteAt(termWidth-len(livesText)-1, 1, livesText)

	// Active weapon effects with their timers (second row, left)
	if len(snap.Effects) > 0 {
		var b strings.Builder
		for _, st := range snap.Effects {
			fmt.Fprintf(&b, "[%s %.1f] ", st.Kind, st.Left)
		}
		effText := b.String()
		cw.WriteAtColored(2, 2, draw.ColorBrightCyan, effText)
		s.canvas.MarkTextDirty(2, 2, len(effText))
	}

	// Boss health bar (second row, center)
	if snap.Boss != nil {
		s.drawBossBar(centerX)
	}

	// Wave countdown between waves
	if snap.WaveState == wave.StateIdle && snap.NextWaveIn > 0 && snap.Wave > 0 {
		countdown := fmt.Sprintf("Next wave in %.1f", snap.NextWaveIn)
		col := centerX - len(countdown)/2
		cw.WriteAt(col, centerY-4, countdown)
		s.canvas.MarkTextDirty(col, centerY-4, len(countdown))
	}

	// Respawn countdown while the ship is gone
	if snap.Ship == nil && snap.Lives > 0 && snap.RespawnIn > 0 {
		countdown := fmt.Sprintf("Respawn in %.1f", snap.RespawnIn)
		col := centerX - len(countdown)/2
		cw.WriteAt(col, centerY+2, countdown)
		s.canvas.MarkTextDirty(col, centerY+2, len(countdown))
	}

	// Combo meter (bottom left)
	comboText := fmt.Sprintf("Combo x%-3d Streak %-4d", snap.Combo, snap.Streak)
	cw.WriteAt(2, termHeight, comboText)

	// Special weapon stock (bottom right)
	ammoText := fmt.Sprintf("Missiles: %-2d Shields: %-2d", snap.MissileAmmo, snap.ShieldStock)
	cw.WriteAt(termWidth-len(ammoText)-1, termHeight, ammoText)
}

// Boss bar layout. The bar uses multi-byte block runes, so its printed width
// is a constant rather than len() of the string.
const (
	bossBarTicks = 20
	bossBarWidth = len("BOSS [") + bossBarTicks + len("] PHASE 9")
)

// drawBossBar draws the boss health bar colored by phase.
func (s *Session) drawBossBar(centerX int) {
	boss := s.snap.Boss

	filled := int(boss.HealthRatio()*bossBarTicks + 0.999)
	if filled > bossBarTicks {
		filled = bossBarTicks
	}
	bar := fmt.Sprintf("BOSS [%s%s] PHASE %d",
		strings.Repeat("█", filled),
		strings.Repeat("░", bossBarTicks-filled),
		boss.Phase(),
	)

	color := draw.ColorBrightMagenta
	switch boss.Phase() {
	case 2:
		color = draw.ColorBrightYellow
	case 3:
		color = draw.ColorBrightRed
	}

	col := centerX - bossBarWidth/2
	s.cw.WriteAtColored(col, 2, color, bar)
	s.canvas.MarkTextDirty(col, 2, bossBarWidth)
}

// drawGameOverScreen draws the final score, name entry and leaderboard.
func (s *Session) drawGameOverScreen(centerX, centerY int) {
	titleArt := []string{
		`   ___   _   __  __ ___    _____   _____ ___  `,
		`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
		` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
		`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
		`                                              `,
	}

	titleWidth := 0
	for _, line := range titleArt {
		if len(line) > titleWidth {
			titleWidth = len(line)
		}
	}

	cw := s.cw
	titleStartY := centerY - 10
	if titleStartY < 1 {
		titleStartY = 1
	}
	for i, line := range titleArt {
		cw.WriteAt(centerX-titleWidth/2, titleStartY+i, line)
	}

	scoreText := fmt.Sprintf("Final Score: %d", s.finalScore)
	cw.WriteAt(centerX-len(scoreText)/2, titleStartY+len(titleArt)+1, scoreText)

	waveText := fmt.Sprintf("Wave Reached: %d", s.finalWave)
	cw.WriteAt(centerX-len(waveText)/2, titleStartY+len(titleArt)+2, waveText)

	if s.entering {
		s.drawNameEntry(centerX, titleStartY+len(titleArt)+4)
		return
	}

	s.drawLeaderboard(centerX, titleStartY+len(titleArt)+4)

	promptY := titleStartY + len(titleArt) + 6 + len(s.board)
	if time.Now().UnixMilli()/600%2 == 0 {
		prompt := ">>  Press SPACE to Restart  <<"
		cw.WriteAt(centerX-len(prompt)/2, promptY, prompt)
	}
	hint := "ESC for menu"
	cw.WriteAt(centerX-len(hint)/2, promptY+1, hint)
}

// drawNameEntry draws the high-score name prompt with a blinking cursor.
func (s *Session) drawNameEntry(centerX, startY int) {
	cw := s.cw

	banner := "** NEW HIGH SCORE **"
	cw.WriteAtColored(centerX-len(banner)/2, startY, draw.ColorBrightYellow, banner)

	cursor := " "
	if time.Now().UnixMilli()/400%2 == 0 {
		cursor = "_"
	}
	field := fmt.Sprintf("Name: %-*s", maxNameLength+1, string(s.nameBuf)+cursor)
	cw.WriteAt(centerX-len(field)/2, startY+2, field)

	hint := "Press ENTER to save"
	cw.WriteAt(centerX-len(hint)/2, startY+4, hint)
}

// drawLeaderboard draws the shared top list, highlighting a fresh entry.
func (s *Session) drawLeaderboard(centerX, startY int) {
	cw := s.cw

	header := "=== TOP PILOTS ==="
	cw.WriteAt(centerX-len(header)/2, startY, header)

	for i, e := range s.board {
		row := fmt.Sprintf("%2d. %-16s %8d  wave %-3d", i+1, e.Name, e.Score, e.Wave)
		if i+1 == s.rank {
			cw.WriteAtColored(centerX-len(row)/2, startY+1+i, draw.ColorBrightCyan, row)
		} else {
			cw.WriteAt(centerX-len(row)/2, startY+1+i, row)
		}
	}
}
