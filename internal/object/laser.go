package object

import (
	"github.com/tomz197/invaders/internal/effect"
	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/physics"
)

// Laser is a projectile travelling straight up (player fire) or down (enemy fire).
type Laser struct {
	X, Y      float64       // Position
	Hostile   bool          // Fired by an enemy; travels downward
	Handle    effect.Handle // Visual handle
	destroyed bool
}

// NewLaser creates a player laser at (x, y).
func NewLaser(h effect.Handle, x, y float64) *Laser {
	return &Laser{X: x, Y: y, Handle: h}
}

// NewEnemyLaser creates an enemy laser at (x, y).
func NewEnemyLaser(h effect.Handle, x, y float64) *Laser {
	return &Laser{X: x, Y: y, Hostile: true, Handle: h}
}

// Visual returns the sprite kind for this laser.
func (l *Laser) Visual() effect.Visual {
	if l.Hostile {
		return effect.VisualEnemyLaser
	}
	return effect.VisualLaser
}

// Advance moves the laser for dt seconds.
func (l *Laser) Advance(dt float64) {
	if l.Hostile {
		l.Y += dt * config.LaserMaxSpeed
	} else {
		l.Y -= dt * config.LaserMaxSpeed
	}
}

// OffScreen reports whether the laser has left the playfield in its direction of travel.
func (l *Laser) OffScreen() bool {
	if l.Hostile {
		return l.Y > config.GameHeight
	}
	return l.Y < 0
}

// Box returns the laser's collision box.
func (l *Laser) Box() physics.Box {
	return physics.BoxAround(l.X, l.Y, config.LaserBoxWidth, config.LaserBoxHeight)
}

// MarkDestroyed marks the laser for removal (implements Destructible).
func (l *Laser) MarkDestroyed() {
	l.destroyed = true
}

// IsDestroyed returns true if the laser is marked for removal (implements Destructible).
func (l *Laser) IsDestroyed() bool {
	return l.destroyed
}
