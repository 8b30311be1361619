package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state. Thrust, Left, Right and
// Fire report holds; Missile and Shield report presses seen this frame only.
type Input struct {
	Quit      bool
	Left      bool
	Right     bool
	Thrust    bool
	Down      bool
	Fire      bool
	Missile   bool
	Shield    bool
	Enter     bool
	Backspace bool
	Delete    bool
	Escape    bool
	Number    int
	Pressed   []byte
}

// keyState tracks the last time each held key was pressed, plus one-shot
// flags that live for a single ReadInput call.
type keyState struct {
	quit      time.Time
	left      time.Time
	right     time.Time
	thrust    time.Time
	down      time.Time
	fire      time.Time
	enter     time.Time
	backspace time.Time
	delete_   time.Time
	escape    time.Time
	number    time.Time
	numberVal int
	missile   bool
	shield    bool
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	closed bool
	state  keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:    make(chan byte, 128),
		state: keyState{numberVal: -1},
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// Uses key state persistence to allow detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

	s.state.missile = false
	s.state.shield = false

	// Drain all available bytes
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	// Parse the collected bytes and update key state timestamps
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// Check for escape sequences (arrow keys, etc.)
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			// CSI sequence: ESC [ <code>
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.thrust = now
				i += 2
				continue
			case 'B': // Down arrow
				s.state.down = now
				i += 2
				continue
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			}
		}

		// Single byte handling - update key state
		applyByteToState(&s.state, b, now)
	}

	// Build input from key state - keys are "pressed" if seen within hold duration
	input := Input{
		Quit:      s.closed || now.Sub(s.state.quit) < keyHoldDuration,
		Left:      now.Sub(s.state.left) < keyHoldDuration,
		Right:     now.Sub(s.state.right) < keyHoldDuration,
		Thrust:    now.Sub(s.state.thrust) < keyHoldDuration,
		Down:      now.Sub(s.state.down) < keyHoldDuration,
		Fire:      now.Sub(s.state.fire) < keyHoldDuration,
		Missile:   s.state.missile,
		Shield:    s.state.shield,
		Enter:     now.Sub(s.state.enter) < keyHoldDuration,
		Backspace: now.Sub(s.state.backspace) < keyHoldDuration,
		Delete:    now.Sub(s.state.delete_) < keyHoldDuration,
		Escape:    now.Sub(s.state.escape) < keyHoldDuration,
		Number:    -1,
		Pressed:   buf,
	}

	// Number is only set if recently pressed
	if now.Sub(s.state.number) < keyHoldDuration {
		input.Number = s.state.numberVal
	}

	return input
}

// ResetKeyInput drops buffered bytes and clears key state, so keys pressed on
// one screen do not leak into the next.
func ResetKeyInput(s *Stream) {
drain:
	for {
		select {
		case _, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
		default:
			break drain
		}
	}
	s.state = keyState{numberVal: -1}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.thrust = now
	case 's', 'S', 'k', 'K':
		state.down = now
	case ' ':
		state.fire = now
	case 'x', 'X':
		state.missile = true
	case 'e', 'E':
		state.shield = true
	case '\n', '\r':
		state.enter = now
	case '\b':
		state.backspace = now
	case '\x7f':
		state.delete_ = now
	case '\x1b':
		state.escape = now
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		state.number = now
		state.numberVal = int(b - '0')
	}
}
