// Package input turns host input events into the three flags the player reads.
package input

import "sync/atomic"

// Browser key codes understood by the adapter.
const (
	KeyCodeLeft  = 37
	KeyCodeRight = 39
	KeyCodeSpace = 32
)

// Flags is the input snapshot consumed by one tick.
type Flags struct {
	Left  bool
	Right bool
	Fire  bool
}

// Source supplies the latest input flags. The simulation calls Flags once per tick.
type Source interface {
	Flags() Flags
}

// Adapter folds key-down, key-up and fire-button events into Flags.
// Events may arrive from any goroutine; the last write wins.
type Adapter struct {
	left  atomic.Bool
	right atomic.Bool
	fire  atomic.Bool
	shot  atomic.Bool // Fire-button press waiting for the next tick
}

// Compile-time check that Adapter implements Source.
var _ Source = (*Adapter)(nil)

// KeyDown marks the key for code as held. Unknown codes are ignored.
func (a *Adapter) KeyDown(code int) {
	a.set(code, true)
}

// KeyUp releases the key for code. Unknown codes are ignored.
func (a *Adapter) KeyUp(code int) {
	a.set(code, false)
}

// FireButton requests a single shot on the next tick.
// The request still waits on the player's cooldown.
func (a *Adapter) FireButton() {
	a.shot.Store(true)
}

// Release clears every flag, e.g. when the window loses focus.
func (a *Adapter) Release() {
	a.left.Store(false)
	a.right.Store(false)
	a.fire.Store(false)
	a.shot.Store(false)
}

// Flags returns the current flags and consumes a pending fire-button press.
func (a *Adapter) Flags() Flags {
	shot := a.shot.Swap(false)
	return Flags{
		Left:  a.left.Load(),
		Right: a.right.Load(),
		Fire:  a.fire.Load() || shot,
	}
}

func (a *Adapter) set(code int, held bool) {
	switch code {
	case KeyCodeLeft:
		a.left.Store(held)
	case KeyCodeRight:
		a.right.Store(held)
	case KeyCodeSpace:
		a.fire.Store(held)
	}
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() Flags

// Flags calls f().
func (f SourceFunc) Flags() Flags {
	return f()
}
