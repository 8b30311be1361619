package loop

import "time"

// Presentation constants. Simulation tuning lives in internal/config; these
// only shape how a session looks and behaves on a terminal.

// View resolution - the playfield in logical units.
// Actual rendering scales to fit terminal size.
const (
	viewWidth  = 120 // Logical playfield width
	viewHeight = 80  // Logical playfield height (in sub-pixels, so 40 terminal rows)
)

// Render resolution cap. Larger terminals get a centered window of this size.
const (
	maxTermWidth  = 120
	maxTermHeight = 40
)

// Frame timing
const (
	targetFPS       = 60
	targetFrameTime = time.Second / targetFPS

	// Frames delayed past this (suspend, SSH stall) advance the simulation
	// by the cap instead of one huge step.
	maxFrameDelta = 100 * time.Millisecond
)

// Blink cadences in Hz for protected or expiring objects.
const (
	playerBlinkFrequency = 10.0
	rockBlinkFrequency   = 5.0
	shieldBlinkFrequency = 6.0
	pickupBlinkFrequency = 4.0
	popupBlinkFrequency  = 8.0
)

// Inactivity
const (
	inactivityWarn       = 90  // Seconds
	inactivityDisconnect = 120 // Seconds
)

// Leaderboard name entry
const maxNameLength = 16
