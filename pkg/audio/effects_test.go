package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/opd-ai/go-orbit/pkg/random"
)

const testRate = beep.SampleRate(8000)

// drain streams s to completion and returns every sample written.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 256)
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never drained")
	return nil
}

func peak(samples [][2]float64) float64 {
	m := 0.0
	for _, s := range samples {
		m = math.Max(m, math.Abs(s[0]))
	}
	return m
}

func TestOscillator_Length(t *testing.T) {
	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440, 50*time.Millisecond, tt.wave, testRate, random.New(1))
			samples := drain(t, osc)

			if want := testRate.N(50 * time.Millisecond); len(samples) != want {
				t.Errorf("got %d samples, want %d", len(samples), want)
			}
			if p := peak(samples); p > 1 {
				t.Errorf("peak %f exceeds full scale", p)
			}
			for i, s := range samples {
				if s[0] != s[1] {
					t.Fatalf("sample %d not mono: %v", i, s)
				}
			}
		})
	}
}

func TestOscillator_SquareLevels(t *testing.T) {
	samples := drain(t, NewOscillator(100, 20*time.Millisecond, WaveSquare, testRate, nil))

	for i, s := range samples {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("sample %d = %f, want ±1", i, s[0])
		}
	}
}

func TestEnvelope_RampsToSilence(t *testing.T) {
	d := 100 * time.Millisecond
	shapedSquare := NewEnvelope(NewOscillator(100, d, WaveSquare, testRate, nil), d, 10*time.Millisecond, 20*time.Millisecond, testRate)
	samples := drain(t, shapedSquare)

	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, want 0 at the start of the attack", samples[0][0])
	}
	mid := samples[len(samples)/2][0]
	if math.Abs(mid) != 1 {
		t.Errorf("sustain sample = %f, want full scale", mid)
	}
	last := samples[len(samples)-1][0]
	if math.Abs(last) > 0.01 {
		t.Errorf("last sample = %f, want near silence", last)
	}
}

func TestCollisionSound_LouderWithImpulse(t *testing.T) {
	soft := peak(drain(t, CollisionSound(testRate, MinImpulse)))
	hard := peak(drain(t, CollisionSound(testRate, FullImpulse)))
	capped := peak(drain(t, CollisionSound(testRate, 10*FullImpulse)))

	if soft >= hard {
		t.Errorf("soft peak %f not below hard peak %f", soft, hard)
	}
	if math.Abs(capped-hard) > 1e-9 {
		t.Errorf("impulse above FullImpulse changed the peak: %f vs %f", capped, hard)
	}
}

func TestCues_Durations(t *testing.T) {
	tests := []struct {
		name string
		cue  beep.Streamer
		want time.Duration
	}{
		{"link", LinkSound(testRate), LinkDuration},
		{"release", ReleaseSound(testRate), ReleaseDuration},
		{"collision", CollisionSound(testRate, 100), CollisionDuration},
		{"death", DeathSound(testRate, random.New(3)), DeathDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Mixed cues may pad their final buffer with silence.
			samples := drain(t, tt.cue)
			want := testRate.N(tt.want)
			if len(samples) < want || len(samples) > want+256 {
				t.Errorf("got %d samples, want about %d", len(samples), want)
			}
		})
	}
}
