// Package audio synthesizes the session's sound cues and plays them when
// the matching events are published.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/opd-ai/go-orbit/pkg/random"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Cue timings
const (
	LinkDuration      = 90 * time.Millisecond
	ReleaseDuration   = 70 * time.Millisecond
	CollisionDuration = 60 * time.Millisecond
	DeathDuration     = 900 * time.Millisecond

	cueAttack  = 5 * time.Millisecond
	cueRelease = 40 * time.Millisecond
)

// oscillator generates a fixed-length wave whose frequency slides from
// startFreq to endFreq.
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
	rng       random.Source
}

// NewOscillator creates a constant-pitch oscillator. rng is only read by
// WaveNoise.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate, rng random.Source) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate, rng)
}

// NewSweep creates an oscillator gliding linearly between two pitches.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate, rng random.Source) beep.Streamer {
	return &oscillator{
		startFreq: from,
		endFreq:   to,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
		rng:       rng,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
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
		case WaveNoise:
			val = o.rng.Uniform(-1, 1)
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.startFreq + (o.endFreq-o.startFreq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream of known
// length.
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

// NewEnvelope shapes s, which should last duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:     s,
		attack:       rate.N(attack),
		release:      rate.N(release),
		totalSamples: rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		}
		if remaining := e.totalSamples - e.position; e.release > 0 && remaining < e.release {
			gain = math.Max(0, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s by gain. A gain at or below zero is silent.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

func shaped(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(s, d, cueAttack, cueRelease, rate)
}

// LinkSound is a short rising chirp.
func LinkSound(rate beep.SampleRate) beep.Streamer {
	return shaped(NewSweep(520, 880, LinkDuration, WaveSine, rate, nil), LinkDuration, rate)
}

// ReleaseSound is a short falling chirp.
func ReleaseSound(rate beep.SampleRate) beep.Streamer {
	return shaped(NewSweep(700, 420, ReleaseDuration, WaveSine, rate, nil), ReleaseDuration, rate)
}

// CollisionSound is a low thump whose loudness follows the impulse,
// saturating at FullImpulse.
func CollisionSound(rate beep.SampleRate, impulse float64) beep.Streamer {
	gain := math.Min(impulse/FullImpulse, 1)
	thump := shaped(NewSweep(140, 60, CollisionDuration, WaveSquare, rate, nil), CollisionDuration, rate)
	return withVolume(thump, 0.5*gain)
}

// DeathSound is a falling saw mixed with a noise burst.
func DeathSound(rate beep.SampleRate, rng random.Source) beep.Streamer {
	saw := shaped(NewSweep(220, 40, DeathDuration, WaveSaw, rate, nil), DeathDuration, rate)
	noise := NewEnvelope(NewOscillator(0, DeathDuration, WaveNoise, rate, rng), DeathDuration, cueAttack, DeathDuration/2, rate)
	return beep.Mix(
		withVolume(saw, 0.6),
		withVolume(noise, 0.4),
	)
}
