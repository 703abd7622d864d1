package object

import (
	"math/rand"

	"github.com/tomz197/invaders/internal/effect"
	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/physics"
)

// Enemy is one member of the formation. Its stored position is the base
// position; where it is drawn and hit-tested depends on the frame's Sway.
type Enemy struct {
	X, Y      float64       // Base position (center)
	Cooldown  float64       // Seconds until the next shot
	Handle    effect.Handle // Visual handle
	destroyed bool
}

// NewEnemy creates an enemy at base position (x, y). The first shot is
// scheduled at a random time in [EnemyMinCooldown, EnemyCooldown) so the
// formation does not fire in unison.
func NewEnemy(h effect.Handle, x, y float64, rng *rand.Rand) *Enemy {
	return &Enemy{
		X:        x,
		Y:        y,
		Cooldown: physics.RandomInRange(rng, config.EnemyMinCooldown, config.EnemyCooldown),
		Handle:   h,
	}
}

// FormationSlot returns the base position of the enemy in row, col of the grid.
func FormationSlot(row, col int) (x, y float64) {
	spacing := (config.GameWidth - config.EnemyHorizontalPadding*2) / (config.EnemiesPerRow - 1)
	x = float64(col)*spacing + config.EnemyHorizontalPadding
	y = config.EnemyVerticalPadding + float64(row)*config.EnemyVerticalSpacing
	return x, y
}

// Position returns where the enemy is this frame.
func (e *Enemy) Position(s Sway) (x, y float64) {
	return e.X + s.DX, e.Y + s.DY
}

// Reload runs the fire cooldown for dt seconds and reports whether the enemy
// fires this frame. After a shot the cooldown restarts at exactly EnemyCooldown.
func (e *Enemy) Reload(dt float64) bool {
	e.Cooldown -= dt
	if e.Cooldown > 0 {
		return false
	}
	e.Cooldown = config.EnemyCooldown
	return true
}

// Box returns the enemy's collision box for this frame.
func (e *Enemy) Box(s Sway) physics.Box {
	x, y := e.Position(s)
	return physics.BoxAround(x, y, config.EnemyBoxWidth, config.EnemyBoxHeight)
}

// MarkDestroyed marks the enemy for removal (implements Destructible).
func (e *Enemy) MarkDestroyed() {
	e.destroyed = true
}

// IsDestroyed returns true if the enemy is marked for removal (implements Destructible).
func (e *Enemy) IsDestroyed() bool {
	return e.destroyed
}
