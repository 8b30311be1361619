// Package draw renders logical game coordinates onto a terminal using
// half-block characters for 2x vertical resolution, with 16-color ANSI
// output and damage-tracked frames.
package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Color is a canvas pixel color: an index into the basic 16-color ANSI
// palette. The zero value means unset (transparent pixel).
type Color uint8

const (
	ColorNone Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite

	colorCount // Count marker, keep last
)

// Reset restores the terminal's default foreground and background.
const Reset = "\033[0m"

// SGR parameter fragments per color. Index 0 maps to the terminal defaults
// so unset pixels render as plain space.
var (
	fgCodes = [colorCount]string{
		"39", "30", "31", "32", "33", "34", "35", "36", "37",
		"90", "91", "92", "93", "94", "95", "96", "97",
	}
	bgCodes = [colorCount]string{
		"49", "40", "41", "42", "43", "44", "45", "46", "47",
		"100", "101", "102", "103", "104", "105", "106", "107",
	}
)

// FG returns the escape sequence selecting this color as foreground, for
// coloring HUD text written outside the canvas.
func (col Color) FG() string {
	if col >= colorCount {
		col = ColorNone
	}
	return "\033[" + fgCodes[col] + "m"
}

// BG returns the escape sequence selecting this color as background.
func (col Color) BG() string {
	if col >= colorCount {
		col = ColorNone
	}
	return "\033[" + bgCodes[col] + "m"
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
