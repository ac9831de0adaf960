package audio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/opd-ai/go-orbit/pkg/config"
	"github.com/opd-ai/go-orbit/pkg/event"
	"github.com/opd-ai/go-orbit/pkg/logging"
	"github.com/opd-ai/go-orbit/pkg/random"
)

// Collision cue thresholds. Contacts softer than MinImpulse are silent.
const (
	MinImpulse  = 20.0
	FullImpulse = 400.0
)

// bufferDuration is the speaker's output latency.
const bufferDuration = 100 * time.Millisecond

// Output is the device the mixer is played on.
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
}

type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}
func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Lock()                { speaker.Lock() }
func (speakerOutput) Unlock()              { speaker.Unlock() }

// SoundManager plays a cue for each session event it is attached to.
// Every method is safe to call before Initialize or after a failed one;
// cues are then dropped.
type SoundManager struct {
	mu          sync.Mutex
	out         Output
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	rng         random.Source
	logger      *logging.Logger
	subs        []*event.Subscription
	initialized bool
}

// NewSoundManager creates a manager for the system speaker.
func NewSoundManager(cfg config.AudioConfig, rng random.Source, logger *logging.Logger) *SoundManager {
	return newSoundManager(cfg, speakerOutput{}, rng, logger)
}

func newSoundManager(cfg config.AudioConfig, out Output, rng random.Source, logger *logging.Logger) *SoundManager {
	if rng == nil {
		rng = random.NewFromTime()
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &SoundManager{
		out:    out,
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
		rng:    rng,
		logger: logger,
	}
}

// Initialize opens the output device and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := sm.out.Init(sm.rate, sm.rate.N(bufferDuration)); err != nil {
		return fmt.Errorf("init speaker at %d Hz: %w", int(sm.rate), err)
	}

	sm.out.Play(&effects.Volume{Streamer: sm.mixer, Base: 2, Volume: sm.volume})
	sm.initialized = true
	return nil
}

// Attach subscribes the manager to bus. Attaching again replaces the
// previous subscriptions.
func (sm *SoundManager) Attach(bus *event.Bus) {
	sm.Detach()

	subs := []*event.Subscription{
		bus.Subscribe(event.PlayerLinked, func(event.Event) {
			sm.Play(LinkSound(sm.rate))
		}),
		bus.Subscribe(event.PlayerReleased, func(event.Event) {
			sm.Play(ReleaseSound(sm.rate))
		}),
		bus.Subscribe(event.PlayerDied, func(event.Event) {
			sm.Play(DeathSound(sm.rate, sm.rng))
		}),
		bus.Subscribe(event.BodyCollision, func(e event.Event) {
			if ce, ok := e.(*event.CollisionEvent); ok && ce.Impulse >= MinImpulse {
				sm.Play(CollisionSound(sm.rate, ce.Impulse))
			}
		}),
	}

	sm.mu.Lock()
	sm.subs = subs
	sm.mu.Unlock()
}

// Detach cancels the manager's subscriptions.
func (sm *SoundManager) Detach() {
	sm.mu.Lock()
	subs := sm.subs
	sm.subs = nil
	sm.mu.Unlock()

	for _, s := range subs {
		s.Cancel()
	}
}

// Play mixes s into the output. It is dropped when no device is open.
func (sm *SoundManager) Play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.out.Lock()
	sm.mixer.Add(s)
	sm.out.Unlock()
}

// Playing returns the number of cues still sounding.
func (sm *SoundManager) Playing() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return 0
	}
	sm.out.Lock()
	defer sm.out.Unlock()
	return sm.mixer.Len()
}

// Cleanup detaches from the bus and silences every cue.
func (sm *SoundManager) Cleanup() {
	sm.Detach()

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.out.Lock()
	sm.mixer.Clear()
	sm.out.Unlock()
	sm.initialized = false
	sm.logger.Debug(context.Background(), "audio stopped")
}
