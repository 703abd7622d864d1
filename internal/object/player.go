package object

import (
	"github.com/tomz197/invaders/internal/effect"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/physics"
)

// Player is the ship at the bottom of the playfield. It only moves horizontally.
type Player struct {
	X, Y      float64       // Position (center of ship)
	Cooldown  float64       // Seconds until the next shot is allowed
	Handle    effect.Handle // Visual handle
	destroyed bool
}

// NewPlayer creates the ship centred horizontally, just above the bottom edge.
func NewPlayer(h effect.Handle) *Player {
	return &Player{
		X:      config.GameWidth / 2,
		Y:      config.GameHeight - config.PlayerSpawnLift,
		Handle: h,
	}
}

// Steer moves the ship for dt seconds of held input and keeps it inside
// [PlayerWidth, GameWidth-PlayerWidth]. Left and right may both be held.
func (p *Player) Steer(dt float64, in input.Flags) {
	if in.Left {
		p.X -= dt * config.PlayerMaxSpeed
	}
	if in.Right {
		p.X += dt * config.PlayerMaxSpeed
	}
	p.X = physics.Clamp(p.X, config.PlayerWidth, config.GameWidth-config.PlayerWidth)
}

// CoolDown runs the fire cooldown timer for dt seconds.
func (p *Player) CoolDown(dt float64) {
	if p.Cooldown > 0 {
		p.Cooldown -= dt
	}
}

// TryFire reports whether a shot goes out this frame and, if so, restarts the cooldown.
func (p *Player) TryFire(in input.Flags) bool {
	if !in.Fire || p.Cooldown > 0 {
		return false
	}
	p.Cooldown = config.LaserCooldown
	return true
}

// Box returns the ship's collision box.
func (p *Player) Box() physics.Box {
	return physics.BoxAround(p.X, p.Y, config.PlayerBoxWidth, config.PlayerBoxHeight)
}

// MarkDestroyed marks the ship as hit (implements Destructible).
func (p *Player) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true once the ship has been hit (implements Destructible).
func (p *Player) IsDestroyed() bool {
	return p.destroyed
}
