// cmd/orbit/main_test.go
package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-orbit/pkg/config"
	"github.com/opd-ai/go-orbit/pkg/engine"
	"github.com/opd-ai/go-orbit/pkg/event"
	"github.com/opd-ai/go-orbit/pkg/logging"
	"github.com/opd-ai/go-orbit/pkg/physics"
	"github.com/opd-ai/go-orbit/pkg/random"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestTerminalInput_Quit(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"ctrl_c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), true},
		{"q", runeKey('q'), true},
		{"space", runeKey(' '), false},
		{"w", runeKey('w'), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newTerminalInput()
			if got := in.HandleKey(tt.ev, time.Now()); got != tt.want {
				t.Errorf("HandleKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTerminalInput_ThrustHold(t *testing.T) {
	in := newTerminalInput()
	now := time.Unix(100, 0)

	in.HandleKey(runeKey('w'), now)

	if !in.Poll(now.Add(keyHold/2), false).Thrust {
		t.Error("thrust not held right after the key event")
	}
	if in.Poll(now.Add(2*keyHold), false).Thrust {
		t.Error("thrust still held after the hold window")
	}
}

func TestTerminalInput_SpaceToggle(t *testing.T) {
	tests := []struct {
		name   string
		linked bool
		want   engine.Input
	}{
		{"links_when_free", false, engine.Input{LinkPressed: true}},
		{"releases_when_linked", true, engine.Input{LinkReleased: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newTerminalInput()
			now := time.Unix(100, 0)
			in.HandleKey(runeKey(' '), now)

			if got := in.Poll(now, tt.linked); got != tt.want {
				t.Errorf("Poll() = %+v, want %+v", got, tt.want)
			}
			if got := in.Poll(now, tt.linked); got != (engine.Input{}) {
				t.Errorf("toggle repeated on the next frame: %+v", got)
			}
		})
	}
}

func TestTerminalInput_DebugArrows(t *testing.T) {
	in := newTerminalInput()
	now := time.Unix(100, 0)

	in.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), now)
	in.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), now)
	in.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), now)

	if got := in.Poll(now, false).Debug; got != (physics.Vector2D{X: 1, Y: -1}) {
		t.Errorf("debug = %v, want (1, -1)", got)
	}
	if got := in.Poll(now.Add(2*keyHold), false).Debug; got != (physics.Vector2D{}) {
		t.Errorf("debug after hold = %v, want zero", got)
	}

	later := now.Add(2 * keyHold)
	in.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), later)
	if got := in.Poll(later, false).Debug; got != (physics.Vector2D{X: -1}) {
		t.Errorf("stale direction kept: debug = %v", got)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		renderer string
		seed     uint64
		width    int
		height   int
		check    func(t *testing.T, cfg *config.GameConfig)
	}{
		{
			name: "zero_values_keep_config",
			check: func(t *testing.T, cfg *config.GameConfig) {
				def := config.DefaultConfig()
				if cfg.Display != def.Display || cfg.Simulation != def.Simulation {
					t.Error("zero flags changed the configuration")
				}
			},
		},
		{
			name:     "overrides",
			renderer: "TERMINAL",
			seed:     42,
			width:    800,
			height:   600,
			check: func(t *testing.T, cfg *config.GameConfig) {
				if cfg.Display.Renderer != config.RendererTerminal {
					t.Errorf("renderer = %q", cfg.Display.Renderer)
				}
				if cfg.Simulation.Seed != 42 {
					t.Errorf("seed = %d", cfg.Simulation.Seed)
				}
				if cfg.Display.Width != 800 || cfg.Display.Height != 600 {
					t.Errorf("size = %dx%d", cfg.Display.Width, cfg.Display.Height)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			applyFlags(cfg, tt.renderer, tt.seed, tt.width, tt.height)
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(config.EnvPlanetCount, "4")

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.World.PlanetCount != 4 {
		t.Errorf("environment override ignored: %d planets", cfg.World.PlanetCount)
	}

	path := filepath.Join(t.TempDir(), "orbit.json")
	if err := writeDefaultConfig(path); err != nil {
		t.Fatalf("writeDefaultConfig failed: %v", err)
	}
	if _, err := loadConfig(path); err != nil {
		t.Errorf("loading the written default failed: %v", err)
	}

	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for a missing file")
	}
	if err := writeDefaultConfig(""); err == nil {
		t.Error("expected error writing without a path")
	}
}

func TestNewLogger_FileDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.log")
	logger, closeLog, err := newLogger(config.RendererTerminal, path)
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}

	logger.Info(t.Context(), "hello")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(data) == 0 {
		t.Error("nothing written to the log file")
	}
}

func TestRunHeadless(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Display.Renderer = config.RendererNull
	bus := event.NewEventBus()
	ended := 0
	bus.Subscribe(event.GameEnded, func(event.Event) { ended++ })

	a := &app{
		cfg:    cfg,
		rng:    random.New(5),
		bus:    bus,
		logger: logging.NewNopLogger(),
	}

	state, err := runHeadless(a, 30)
	if err != nil {
		t.Fatalf("runHeadless failed: %v", err)
	}
	if state.Tick != 30 {
		t.Errorf("ticks = %d, want 30", state.Tick)
	}
	if ended != 1 {
		t.Errorf("GameEnded published %d times, want 1", ended)
	}
}

func TestSoundManagerLeavesWorldSeedAlone(t *testing.T) {
	newApp := func() *app {
		cfg := config.DefaultConfig()
		cfg.Display.Renderer = config.RendererNull
		return &app{
			cfg:    cfg,
			rng:    random.New(11),
			bus:    event.NewEventBus(),
			logger: logging.NewNopLogger(),
		}
	}

	quiet, loud := newApp(), newApp()
	if loud.newSoundManager() == nil {
		t.Fatal("newSoundManager returned nil")
	}

	a, err := quiet.newGame()
	if err != nil {
		t.Fatalf("newGame failed: %v", err)
	}
	b, err := loud.newGame()
	if err != nil {
		t.Fatalf("newGame failed: %v", err)
	}

	pa, pb := a.GetGameState().Planets, b.GetGameState().Planets
	if len(pa) != len(pb) {
		t.Fatalf("planet counts differ: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i].Position != pb[i].Position || pa[i].Velocity != pb[i].Velocity {
			t.Errorf("planet %d differs once audio is built: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}
