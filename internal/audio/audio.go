// Package audio plays the sound cues emitted by the simulation.
package audio

import (
	"io"

	"github.com/tomz197/invaders/internal/effect"
)

// Player plays a named sound. Implementations must not block the frame.
type Player interface {
	Play(snd effect.Sound)
}

// Nop discards every sound.
type Nop struct{}

func (Nop) Play(effect.Sound) {}

// Bell rings the terminal bell for the lose cue. Laser shots stay silent,
// a bell per shot is too noisy over ssh.
type Bell struct {
	W io.Writer
}

func (b Bell) Play(snd effect.Sound) {
	if snd == effect.SoundLose && b.W != nil {
		_, _ = io.WriteString(b.W, "\a")
	}
}
