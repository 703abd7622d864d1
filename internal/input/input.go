package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals send no key-up, so holding relies on autorepeat arriving within it.
const keyHoldDuration = 80 * time.Millisecond

// Input represents the current frame's terminal input state.
type Input struct {
	Quit  bool
	Left  bool
	Right bool
	Space bool
	Fire  bool // Dedicated fire key, the terminal stand-in for the shoot button
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit  time.Time
	left  time.Time
	right time.Time
	space time.Time
	fire  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The channel is closed when r returns an error (EOF on disconnect).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
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

// ReadInput drains all available bytes from the stream without blocking.
// A closed stream reports Quit.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

drain:
	for !s.closed {
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

	decode(&s.state, buf, now)

	in := s.state.at(now)
	if s.closed {
		in.Quit = true
	}
	return in
}

// decode parses raw terminal bytes, including arrow escape sequences,
// and stamps the keys they press.
func decode(state *keyState, buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'C':
				state.right = now
				i += 2
				continue
			case 'D':
				state.left = now
				i += 2
				continue
			case 'A', 'B':
				i += 2
				continue
			}
		}

		applyByteToState(state, b, now)
	}
}

// at reports which keys are held as of now.
func (k *keyState) at(now time.Time) Input {
	return Input{
		Quit:  now.Sub(k.quit) < keyHoldDuration,
		Left:  now.Sub(k.left) < keyHoldDuration,
		Right: now.Sub(k.right) < keyHoldDuration,
		Space: now.Sub(k.space) < keyHoldDuration,
		Fire:  now.Sub(k.fire) < keyHoldDuration,
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl-C arrives as a byte in raw mode
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case ' ':
		state.space = now
	case 'f', 'F', 'k', 'K':
		state.fire = now
	}
}
