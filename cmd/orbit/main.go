// cmd/orbit/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/opd-ai/go-orbit/pkg/audio"
	"github.com/opd-ai/go-orbit/pkg/config"
	"github.com/opd-ai/go-orbit/pkg/engine"
	"github.com/opd-ai/go-orbit/pkg/event"
	"github.com/opd-ai/go-orbit/pkg/logging"
	"github.com/opd-ai/go-orbit/pkg/random"
	"github.com/opd-ai/go-orbit/pkg/render"
	engorender "github.com/opd-ai/go-orbit/pkg/render/engo"
)

// app carries what every frontend needs to start a session.
type app struct {
	cfg    *config.GameConfig
	rng    *random.Rand
	bus    *event.Bus
	logger *logging.Logger
}

func (a *app) newGame() (*engine.Game, error) {
	return engine.NewGame(a.cfg, a.rng, a.bus, a.logger)
}

// newSoundManager builds the audio cues on a clock-seeded stream so that
// enabling sound never changes the world a seed produces.
func (a *app) newSoundManager() *audio.SoundManager {
	return audio.NewSoundManager(a.cfg.Audio, random.NewFromTime(), a.logger)
}

func main() {
	configPath := flag.String("config", "", "Path to configuration file (built-in defaults when empty)")
	createDefault := flag.Bool("default", false, "Write the default configuration to -config and exit")
	rendererName := flag.String("renderer", "", "Renderer: 'engo', 'terminal' or 'null' (overrides config)")
	seed := flag.Uint64("seed", 0, "World seed (0 uses the configured seed, or the clock)")
	width := flag.Int("width", 0, "Window width (engo only, overrides config)")
	height := flag.Int("height", 0, "Window height (engo only, overrides config)")
	frames := flag.Int("frames", 600, "Frames to simulate with the null renderer")
	logPath := flag.String("log", "", "Log file (the terminal renderer discards logs otherwise)")
	flag.Parse()

	if *createDefault {
		if err := writeDefaultConfig(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applyFlags(cfg, *rendererName, *seed, *width, *height)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg.Display.Renderer, *logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	rng := random.NewFromTime()
	if cfg.Simulation.Seed != 0 {
		rng = random.New(cfg.Simulation.Seed)
	}

	a := &app{
		cfg:    cfg,
		rng:    rng,
		bus:    event.NewEventBus(),
		logger: logger,
	}
	ctx := context.Background()
	logger.Info(ctx, "starting orbit",
		"renderer", cfg.Display.Renderer,
		"seed", rng.Seed(),
		"planets", cfg.World.PlanetCount,
	)

	if cfg.Audio.Enabled && cfg.Display.Renderer != config.RendererNull {
		sounds := a.newSoundManager()
		if err := sounds.Initialize(); err != nil {
			logger.Warn(ctx, "audio unavailable, continuing without sound", "error", err.Error())
		} else {
			sounds.Attach(a.bus)
			defer sounds.Cleanup()
		}
	}

	if err := run(a, *frames); err != nil {
		logger.Error(ctx, "orbit exited with error", err)
		closeLog()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(a *app, frames int) error {
	switch a.cfg.Display.Renderer {
	case config.RendererTerminal:
		return runTerminal(a)
	case config.RendererNull:
		_, err := runHeadless(a, frames)
		return err
	default:
		game, err := a.newGame()
		if err != nil {
			return err
		}
		engorender.Run(game, a.cfg.Display, a.logger)
		return nil
	}
}

// loadConfig reads path, or returns the defaults when path is empty, then
// applies ORBIT_* environment overrides.
func loadConfig(path string) (*config.GameConfig, error) {
	cfg := config.DefaultConfig()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("load configuration: %w", err)
		}
		cfg = loaded
	}

	if err := config.ApplyEnvironmentOverrides(cfg); err != nil {
		return nil, fmt.Errorf("apply environment configuration: %w", err)
	}
	return cfg, nil
}

func writeDefaultConfig(path string) error {
	if path == "" {
		return fmt.Errorf("-default needs -config to name the file")
	}
	if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
		return fmt.Errorf("create default configuration: %w", err)
	}
	return nil
}

// applyFlags lets non-zero command line values win over file and
// environment settings.
func applyFlags(cfg *config.GameConfig, renderer string, seed uint64, width, height int) {
	if renderer != "" {
		cfg.Display.Renderer = strings.ToLower(renderer)
	}
	if seed != 0 {
		cfg.Simulation.Seed = seed
	}
	if width > 0 {
		cfg.Display.Width = width
	}
	if height > 0 {
		cfg.Display.Height = height
	}
}

// newLogger picks the log destination. The terminal renderer owns stdout
// and stderr, so it logs to a file or nowhere.
func newLogger(renderer, path string) (*logging.Logger, func(), error) {
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return logging.NewLoggerWithWriter(f), func() { f.Close() }, nil
	}
	if renderer == config.RendererTerminal {
		return logging.NewLoggerWithWriter(io.Discard), func() {}, nil
	}
	return logging.NewLogger(), func() {}, nil
}

// runHeadless plays frames fixed-length frames with no input against the
// null renderer and returns the final state.
func runHeadless(a *app, frames int) (*engine.GameState, error) {
	game, err := a.newGame()
	if err != nil {
		return nil, err
	}
	game.Start()
	defer game.Stop()

	r := render.NewNullRenderer(a.logger)
	dt := 1 / float64(a.cfg.Display.TargetFPS)
	for i := 0; i < frames; i++ {
		game.Update(dt, engine.Input{})
		game.Draw(r)
	}

	state := game.GetGameState()
	a.logger.Info(game.Context(), "headless run finished",
		"ticks", state.Tick,
		"status", state.Status.String(),
		"elapsed", state.ElapsedTime,
	)
	return state, nil
}
