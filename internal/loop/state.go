package loop

import (
	"math/rand"
	"time"

	"github.com/tomz197/invaders/internal/effect"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/object"
)

// State holds everything one game session simulates.
// It is owned by a Session and mutated only from the tick goroutine.
type State struct {
	LastTime    time.Time       // Timestamp of the last completed frame
	Input       input.Flags     // Flags applied to the current frame
	Player      *object.Player  // The ship
	Lasers      []*object.Laser // Live player lasers
	Enemies     []*object.Enemy // Live enemies, in formation order
	EnemyLasers []*object.Laser // Live enemy lasers
	GameOver    bool            // Player was hit; one-way
	Sway        object.Sway     // Formation displacement for the current frame

	rng        *rand.Rand
	nextHandle effect.Handle
	fx         effect.Buffer
}

// NewState creates a session's state at time now: the ship plus a full
// formation. Spawn commands for every visual are queued for the first frame.
// A nil rng uses the package-level random source.
func NewState(now time.Time, rng *rand.Rand) *State {
	s := &State{
		LastTime: now,
		rng:      rng,
	}

	s.Player = object.NewPlayer(s.handle())
	s.fx.Spawn(s.Player.Handle, effect.VisualPlayer, s.Player.X, s.Player.Y)

	s.Enemies = make([]*object.Enemy, 0, config.EnemyRows*config.EnemiesPerRow)
	for row := 0; row < config.EnemyRows; row++ {
		for col := 0; col < config.EnemiesPerRow; col++ {
			x, y := object.FormationSlot(row, col)
			s.AddEnemy(x, y)
		}
	}
	return s
}

// handle allocates the next visual handle.
func (s *State) handle() effect.Handle {
	s.nextHandle++
	return s.nextHandle
}

// AddEnemy adds an enemy at base position (x, y).
func (s *State) AddEnemy(x, y float64) *object.Enemy {
	e := object.NewEnemy(s.handle(), x, y, s.rng)
	s.Enemies = append(s.Enemies, e)
	s.fx.Spawn(e.Handle, effect.VisualEnemy, x, y)
	return e
}

// FireLaser adds a player laser at (x, y).
func (s *State) FireLaser(x, y float64) *object.Laser {
	l := object.NewLaser(s.handle(), x, y)
	s.Lasers = append(s.Lasers, l)
	s.fx.Spawn(l.Handle, l.Visual(), x, y)
	s.fx.Play(effect.SoundLaser)
	return l
}

// FireEnemyLaser adds an enemy laser at (x, y). Enemy fire is silent.
func (s *State) FireEnemyLaser(x, y float64) *object.Laser {
	l := object.NewEnemyLaser(s.handle(), x, y)
	s.EnemyLasers = append(s.EnemyLasers, l)
	s.fx.Spawn(l.Handle, l.Visual(), x, y)
	return l
}

// Effects drains the commands queued since the previous call.
func (s *State) Effects() []effect.Command {
	return s.fx.Drain()
}

// compact drops destroyed entries, reusing the backing array.
// Called once per collection after all scans for the frame are done.
func compact[T object.Destructible](items []T) []T {
	kept := items[:0]
	for _, it := range items {
		if !it.IsDestroyed() {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}
