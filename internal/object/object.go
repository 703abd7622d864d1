// Package object defines the game entities, their factories, and their
// per-entity motion and cooldown rules. Interactions between entities
// (collisions, spawning into collections) live in the loop package.
package object

import (
	"math"
	"time"

	"github.com/tomz197/invaders/internal/loop/config"
)

// Destructible is implemented by entities that are marked for removal and
// compacted out of their collection at the end of the frame.
type Destructible interface {
	// MarkDestroyed marks the entity for removal at the next compaction.
	MarkDestroyed()
	// IsDestroyed returns true if the entity is marked for destruction.
	IsDestroyed() bool
}

// Sway is the displacement shared by the whole enemy formation for one frame.
type Sway struct {
	DX, DY float64
}

// FormationSway computes the formation displacement at wall-clock time t.
// It follows real time rather than simulation time, so the wobble keeps
// its phase regardless of frame rate.
func FormationSway(t time.Time) Sway {
	secs := float64(t.UnixMilli()) / 1000.0
	return Sway{
		DX: math.Sin(secs) * config.FormationSwayX,
		DY: math.Cos(secs) * config.FormationSwayY,
	}
}
