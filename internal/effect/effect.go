// Package effect defines the commands the simulation emits for its presenters.
//
// The simulation never touches a screen or a speaker. Each frame it produces an
// ordered list of Commands (spawn, place, destroy a visual; play a sound; show a
// banner) and a Presenter executes them for its host: a terminal canvas, a
// browser over websocket, or a desktop window.
package effect

import (
	"fmt"
)

// Handle identifies one visual for the lifetime of a session.
// Handles are allocated by the simulation and start at 1.
type Handle int

// Op is the kind of a Command.
type Op int

const (
	OpNone Op = iota
	OpSpawn
	OpPlace
	OpDestroy
	OpPlay
	OpBanner
)

// Visual is the kind of sprite a handle represents.
type Visual int

const (
	VisualNone Visual = iota
	VisualPlayer
	VisualLaser
	VisualEnemy
	VisualEnemyLaser
)

// Sound is a fire-and-forget audio cue.
type Sound int

const (
	SoundNone Sound = iota
	SoundLaser
	SoundLose
)

// Banner is an end-of-game overlay.
type Banner int

const (
	BannerNone Banner = iota
	BannerGameOver
	BannerVictory
)

// Command is a single presentation instruction.
type Command struct {
	Op     Op      `json:"op"`
	Handle Handle  `json:"handle,omitempty"`
	Visual Visual  `json:"visual,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Sound  Sound   `json:"sound,omitempty"`
	Banner Banner  `json:"banner,omitempty"`
}

// Presenter executes one frame's commands.
type Presenter interface {
	Present(cmds []Command) error
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(cmds []Command) error

// Present calls f(cmds).
func (f PresenterFunc) Present(cmds []Command) error {
	return f(cmds)
}

// Buffer accumulates the commands of one frame.
type Buffer struct {
	cmds []Command
}

// Spawn records the creation of a visual at (x, y).
func (b *Buffer) Spawn(h Handle, v Visual, x, y float64) {
	b.cmds = append(b.cmds, Command{Op: OpSpawn, Handle: h, Visual: v, X: x, Y: y})
}

// Place records a visual's new position.
func (b *Buffer) Place(h Handle, x, y float64) {
	b.cmds = append(b.cmds, Command{Op: OpPlace, Handle: h, X: x, Y: y})
}

// Destroy records the permanent removal of a visual.
func (b *Buffer) Destroy(h Handle) {
	b.cmds = append(b.cmds, Command{Op: OpDestroy, Handle: h})
}

// Play records an audio cue.
func (b *Buffer) Play(s Sound) {
	b.cmds = append(b.cmds, Command{Op: OpPlay, Sound: s})
}

// ShowBanner records an end-of-game overlay.
func (b *Buffer) ShowBanner(bn Banner) {
	b.cmds = append(b.cmds, Command{Op: OpBanner, Banner: bn})
}

// Len returns the number of pending commands.
func (b *Buffer) Len() int {
	return len(b.cmds)
}

// Drain returns the pending commands and empties the buffer.
// The returned slice is owned by the caller.
func (b *Buffer) Drain() []Command {
	cmds := b.cmds
	b.cmds = nil
	return cmds
}

// String implements fmt.Stringer for log output.
func (c Command) String() string {
	switch c.Op {
	case OpSpawn:
		return fmt.Sprintf("spawn %s#%d (%.1f,%.1f)", c.Visual, c.Handle, c.X, c.Y)
	case OpPlace:
		return fmt.Sprintf("place #%d (%.1f,%.1f)", c.Handle, c.X, c.Y)
	case OpDestroy:
		return fmt.Sprintf("destroy #%d", c.Handle)
	case OpPlay:
		return fmt.Sprintf("play %s", c.Sound)
	case OpBanner:
		return fmt.Sprintf("banner %s", c.Banner)
	default:
		return "none"
	}
}
