package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/tomz197/invaders/internal/effect"
)

// WaveType selects the oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// sweep is an oscillator whose frequency glides linearly from one value to another.
type sweep struct {
	from, to float64
	phase    float64
	total    int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewSweep creates an oscillator gliding from one frequency to another over duration.
// Use the same frequency twice for a steady tone.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:  from,
		to:    to,
		total: rate.N(duration),
		wave:  wave,
		rate:  rate,
	}
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.total)
		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// envelope fades a stream in over attack and out over its last release samples.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = float64(remaining) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s by a linear factor. Zero or below is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

const (
	laserDuration = 120 * time.Millisecond
	loseDuration  = 600 * time.Millisecond
)

// Streamer synthesises the cue for snd, or returns nil if it has none.
func Streamer(snd effect.Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	switch snd {
	case effect.SoundLaser:
		osc := NewSweep(1200, 400, laserDuration, WaveSquare, rate)
		shaped := NewEnvelope(osc, laserDuration, 5*time.Millisecond, 60*time.Millisecond, rate)
		return withVolume(shaped, 0.4*volume)
	case effect.SoundLose:
		osc := NewSweep(220, 55, loseDuration, WaveSaw, rate)
		shaped := NewEnvelope(osc, loseDuration, 10*time.Millisecond, 300*time.Millisecond, rate)
		return withVolume(shaped, 0.6*volume)
	default:
		return nil
	}
}
