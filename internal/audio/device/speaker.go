// Package device plays synthesised cues on the local sound card. It is kept
// apart from package audio because the speaker backend needs cgo.
package device

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/invaders/internal/audio"
	"github.com/tomz197/invaders/internal/effect"
)

const sampleRate = beep.SampleRate(44100)

// Speaker mixes cues into the default output device.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

var _ audio.Player = (*Speaker)(nil)

// NewSpeaker creates a speaker at the given linear volume (1 is full scale).
func NewSpeaker(volume float64) *Speaker {
	return &Speaker{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the sound device. Safe to call more than once.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play mixes the cue for snd into the output. Before Init it does nothing.
func (s *Speaker) Play(snd effect.Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	st := audio.Streamer(snd, sampleRate, s.volume)
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}
