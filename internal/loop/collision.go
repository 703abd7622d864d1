package loop

import (
	"github.com/tomz197/invaders/internal/effect"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/physics"
)

// firstEnemyHit returns the first live enemy, in formation order, whose box
// touches the laser this frame. A laser takes out at most one enemy.
func firstEnemyHit(s *State, l *object.Laser) *object.Enemy {
	lb := l.Box()
	for _, e := range s.Enemies {
		if e.IsDestroyed() {
			continue
		}
		if physics.BoxesIntersect(lb, e.Box(s.Sway)) {
			return e
		}
	}
	return nil
}

// hitsPlayer reports whether an enemy laser touches the live ship.
func hitsPlayer(s *State, l *object.Laser) bool {
	if s.Player.IsDestroyed() {
		return false
	}
	return physics.BoxesIntersect(l.Box(), s.Player.Box())
}

// killPlayer destroys the ship and ends the game.
func killPlayer(s *State) {
	s.Player.MarkDestroyed()
	s.GameOver = true
	s.fx.Destroy(s.Player.Handle)
	s.fx.Play(effect.SoundLose)
}
