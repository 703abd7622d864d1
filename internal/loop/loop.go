// Package loop provides the simulation state, the per-frame updaters and the
// frame driver that ties them to a presenter.
package loop

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/tomz197/invaders/internal/effect"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/object"
)

// Status is the phase of a session.
type Status int

const (
	StatusRunning Status = iota // Active gameplay
	StatusWon                   // Every enemy destroyed
	StatusLost                  // Ship destroyed
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Session runs one game from the first frame to a terminal status.
// Tick must be called from a single goroutine.
type Session struct {
	state  *State
	input  input.Source
	status Status
	frames int
}

// NewSession starts a game at time now, reading flags from src each frame.
// A nil rng uses the package-level random source.
func NewSession(src input.Source, now time.Time, rng *rand.Rand) *Session {
	return &Session{
		state: NewState(now, rng),
		input: src,
	}
}

// State exposes the simulated state, for hosts and tests.
func (s *Session) State() *State {
	return s.state
}

// Status returns the current phase.
func (s *Session) Status() Status {
	return s.status
}

// Frames returns the number of frames simulated so far.
func (s *Session) Frames() int {
	return s.frames
}

// Tick advances the game to time now and returns the resulting status with the
// commands produced since the previous tick. Terminal states are checked before
// simulating; the tick that first observes one returns its banner, and later
// ticks return no commands.
func (s *Session) Tick(now time.Time) (Status, []effect.Command) {
	if s.status != StatusRunning {
		return s.status, nil
	}

	st := s.state
	dt := now.Sub(st.LastTime).Seconds()
	if dt < 0 {
		dt = 0
	}

	if st.GameOver {
		return s.finish(StatusLost, effect.BannerGameOver)
	}
	if len(st.Enemies) == 0 {
		return s.finish(StatusWon, effect.BannerVictory)
	}

	if s.input != nil {
		st.Input = s.input.Flags()
	}
	st.Sway = object.FormationSway(st.LastTime)
	updatePlayingFrame(st, dt)
	st.LastTime = now
	s.frames++

	return StatusRunning, st.Effects()
}

// finish moves the session into a terminal status.
func (s *Session) finish(status Status, banner effect.Banner) (Status, []effect.Command) {
	s.status = status
	s.state.fx.ShowBanner(banner)
	return status, s.state.Effects()
}

// Run drives sess until it reaches a terminal status, handing every frame's
// commands to p. It returns early with the context's error if the scheduler is
// cancelled, or with the presenter's error.
func Run(ctx context.Context, sess *Session, p effect.Presenter, sched FrameScheduler) (Status, error) {
	for {
		now, err := sched.Next(ctx)
		if err != nil {
			return sess.Status(), fmt.Errorf("wait for frame: %w", err)
		}

		status, cmds := sess.Tick(now)
		if err := p.Present(cmds); err != nil {
			return status, fmt.Errorf("present frame %d: %w", sess.Frames(), err)
		}
		if status != StatusRunning {
			return status, nil
		}
	}
}
