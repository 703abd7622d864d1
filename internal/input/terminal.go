package input

// Terminal is a Source backed by a raw terminal byte stream.
// Space and the fire key both fire; q, Ctrl-C or a closed stream call onQuit.
type Terminal struct {
	stream *Stream
	onQuit func()
	last   Input
}

// NewTerminal wraps stream. onQuit may be nil.
func NewTerminal(stream *Stream, onQuit func()) *Terminal {
	return &Terminal{stream: stream, onQuit: onQuit}
}

// Flags drains the stream and returns the held keys.
func (t *Terminal) Flags() Flags {
	t.last = ReadInput(t.stream)
	if t.last.Quit && t.onQuit != nil {
		t.onQuit()
	}
	return Flags{
		Left:  t.last.Left,
		Right: t.last.Right,
		Fire:  t.last.Space || t.last.Fire,
	}
}

// Last returns the raw input seen by the most recent Flags call.
func (t *Terminal) Last() Input {
	return t.last
}
