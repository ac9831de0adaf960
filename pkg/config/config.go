// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrInvalidConfig is matched by every ValidationError.
var ErrInvalidConfig = errors.New("invalid configuration")

// Renderer names accepted by DisplayConfig.Renderer.
const (
	RendererEngo     = "engo"
	RendererTerminal = "terminal"
	RendererNull     = "null"
)

// GameConfig contains configuration for an orbit session
type GameConfig struct {
	World      WorldConfig      `json:"world"`
	Player     PlayerConfig     `json:"player"`
	Zones      []ZoneConfig     `json:"zones"`
	Simulation SimulationConfig `json:"simulation"`
	Display    DisplayConfig    `json:"display"`
	Audio      AudioConfig      `json:"audio"`
}

// WorldConfig controls planet generation. Planet i is placed at
// y = -(i+1) * uniform(RowSpacingMin, RowSpacingMax), so the field
// stretches upward from the player.
type WorldConfig struct {
	PlanetCount   int     `json:"planetCount"`
	SpawnWidth    float64 `json:"spawnWidth"`
	RowSpacingMin float64 `json:"rowSpacingMin"`
	RowSpacingMax float64 `json:"rowSpacingMax"`
	PlanetSpeed   float64 `json:"planetSpeed"` // max speed per axis
	RadiusMin     float64 `json:"radiusMin"`
	RadiusMax     float64 `json:"radiusMax"`
}

// PlayerConfig contains the player's body and handling
type PlayerConfig struct {
	Radius            float64 `json:"radius"`
	Deceleration      float64 `json:"deceleration"`
	ThrustPower       float64 `json:"thrustPower"`
	MaxTurnRate       float64 `json:"maxTurnRate"`
	RadialCorrection  float64 `json:"radialCorrection"`
	DebugControls     bool    `json:"debugControls"`
	DebugAcceleration float64 `json:"debugAcceleration"`
}

// ZoneConfig describes one danger zone. Offset is the distance from the
// player's start to the zone's near edge.
type ZoneConfig struct {
	Edge       string  `json:"edge"`
	Offset     float64 `json:"offset"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Speed      float64 `json:"speed"`
	GrowthRate float64 `json:"growthRate"`
	EmitPeriod float64 `json:"emitPeriod"`
}

// SimulationConfig controls time stepping and randomness
type SimulationConfig struct {
	MaxStep  float64 `json:"maxStep"`  // longest single integration step, seconds
	MaxFrame float64 `json:"maxFrame"` // longest simulated frame; the rest of a stall is dropped
	Seed     uint64  `json:"seed"`     // 0 seeds from the clock
}

// DisplayConfig contains window and frontend settings
type DisplayConfig struct {
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	Renderer      string  `json:"renderer"`
	TargetFPS     int     `json:"targetFPS"`
	TerminalScale float64 `json:"terminalScale"` // world units per terminal cell
}

// AudioConfig contains sound cue settings
type AudioConfig struct {
	Enabled    bool    `json:"enabled"`
	Volume     float64 `json:"volume"` // base-2 gain, 0 is unchanged
	SampleRate int     `json:"sampleRate"`
}

// ValidationError reports the first invalid field found
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Is makes errors.Is(err, ErrInvalidConfig) hold for validation failures.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*GameConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default game configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		World: WorldConfig{
			PlanetCount:   10,
			SpawnWidth:    1280,
			RowSpacingMin: 10,
			RowSpacingMax: 1000,
			PlanetSpeed:   30,
			RadiusMin:     10,
			RadiusMax:     100,
		},
		Player: PlayerConfig{
			Radius:            10,
			Deceleration:      0.5,
			ThrustPower:       200,
			MaxTurnRate:       6,
			RadialCorrection:  1,
			DebugControls:     false,
			DebugAcceleration: 400,
		},
		Zones: []ZoneConfig{
			{
				Edge:       "bottom",
				Offset:     600,
				Width:      4000,
				Height:     400,
				Speed:      40,
				GrowthRate: 0.2,
				EmitPeriod: 0.004,
			},
			{
				Edge:       "left",
				Offset:     1500,
				Width:      400,
				Height:     4000,
				Speed:      15,
				GrowthRate: 0.05,
				EmitPeriod: 0.01,
			},
			{
				Edge:       "right",
				Offset:     1500,
				Width:      400,
				Height:     4000,
				Speed:      15,
				GrowthRate: 0.05,
				EmitPeriod: 0.01,
			},
		},
		Simulation: SimulationConfig{
			MaxStep:  1.0 / 30.0,
			MaxFrame: 0.25,
			Seed:     0,
		},
		Display: DisplayConfig{
			Width:         1280,
			Height:        720,
			Renderer:      RendererEngo,
			TargetFPS:     60,
			TerminalScale: 8,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     -1,
			SampleRate: 44100,
		},
	}
}

// Validate checks that the configuration can drive a session
func (c *GameConfig) Validate() error {
	w := c.World
	switch {
	case w.PlanetCount < 1 || w.PlanetCount > 1000:
		return &ValidationError{Field: "World.PlanetCount", Message: "must be between 1 and 1000"}
	case w.SpawnWidth <= 0:
		return &ValidationError{Field: "World.SpawnWidth", Message: "must be positive"}
	case w.RowSpacingMin < 0 || w.RowSpacingMax < w.RowSpacingMin:
		return &ValidationError{Field: "World.RowSpacing", Message: "need 0 <= min <= max"}
	case w.PlanetSpeed < 0:
		return &ValidationError{Field: "World.PlanetSpeed", Message: "must not be negative"}
	case w.RadiusMin <= 0 || w.RadiusMax < w.RadiusMin:
		return &ValidationError{Field: "World.Radius", Message: "need 0 < min <= max"}
	}

	p := c.Player
	switch {
	case p.Radius <= 0:
		return &ValidationError{Field: "Player.Radius", Message: "must be positive"}
	case p.Deceleration < 0:
		return &ValidationError{Field: "Player.Deceleration", Message: "must not be negative"}
	case p.ThrustPower < 0:
		return &ValidationError{Field: "Player.ThrustPower", Message: "must not be negative"}
	case p.MaxTurnRate <= 0:
		return &ValidationError{Field: "Player.MaxTurnRate", Message: "must be positive"}
	}

	for i, z := range c.Zones {
		field := fmt.Sprintf("Zones[%d]", i)
		switch strings.ToLower(z.Edge) {
		case "bottom", "left", "right", "threshold":
		default:
			return &ValidationError{Field: field + ".Edge", Message: fmt.Sprintf("unknown edge %q", z.Edge)}
		}
		if z.Width <= 0 || z.Height <= 0 {
			return &ValidationError{Field: field + ".Size", Message: "width and height must be positive"}
		}
		if z.Speed < 0 || z.GrowthRate < 0 {
			return &ValidationError{Field: field + ".Speed", Message: "speed and growth must not be negative"}
		}
	}

	if c.Simulation.MaxStep <= 0 || c.Simulation.MaxStep > 1 {
		return &ValidationError{Field: "Simulation.MaxStep", Message: "must be in (0, 1] seconds"}
	}
	if c.Simulation.MaxFrame < c.Simulation.MaxStep || c.Simulation.MaxFrame > 10 {
		return &ValidationError{Field: "Simulation.MaxFrame", Message: "must be between MaxStep and 10 seconds"}
	}

	d := c.Display
	switch d.Renderer {
	case RendererEngo, RendererTerminal, RendererNull:
	default:
		return &ValidationError{Field: "Display.Renderer", Message: fmt.Sprintf("unknown renderer %q", d.Renderer)}
	}
	if d.Width <= 0 || d.Height <= 0 {
		return &ValidationError{Field: "Display.Size", Message: "width and height must be positive"}
	}
	if d.TargetFPS < 1 || d.TargetFPS > 240 {
		return &ValidationError{Field: "Display.TargetFPS", Message: "must be between 1 and 240"}
	}
	if d.TerminalScale <= 0 {
		return &ValidationError{Field: "Display.TerminalScale", Message: "must be positive"}
	}

	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return &ValidationError{Field: "Audio.SampleRate", Message: "must be positive"}
	}

	return nil
}
