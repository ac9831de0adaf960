// pkg/config/env.go
package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variable names
const (
	EnvSeed          = "ORBIT_SEED"
	EnvMaxStep       = "ORBIT_MAX_STEP"
	EnvPlanetCount   = "ORBIT_PLANET_COUNT"
	EnvRenderer      = "ORBIT_RENDERER"
	EnvWidth         = "ORBIT_WIDTH"
	EnvHeight        = "ORBIT_HEIGHT"
	EnvTargetFPS     = "ORBIT_TARGET_FPS"
	EnvAudio         = "ORBIT_AUDIO"
	EnvVolume        = "ORBIT_VOLUME"
	EnvDebugControls = "ORBIT_DEBUG_CONTROLS"
)

// EnvironmentConfig holds the settings that can be supplied through
// ORBIT_* environment variables.
type EnvironmentConfig struct {
	Seed          uint64
	MaxStep       time.Duration
	PlanetCount   int
	Renderer      string
	Width         int
	Height        int
	TargetFPS     int
	AudioEnabled  bool
	Volume        float64
	DebugControls bool
}

// LoadConfigFromEnv reads the environment, falling back to the defaults of
// DefaultConfig for anything unset.
func LoadConfigFromEnv() (*EnvironmentConfig, error) {
	def := DefaultConfig()

	config := &EnvironmentConfig{
		Seed:          getEnvAsUint64OrDefault(EnvSeed, def.Simulation.Seed),
		MaxStep:       getEnvAsDurationOrDefault(EnvMaxStep, secondsToDuration(def.Simulation.MaxStep)),
		PlanetCount:   getEnvAsIntOrDefault(EnvPlanetCount, def.World.PlanetCount),
		Renderer:      getEnvOrDefault(EnvRenderer, def.Display.Renderer),
		Width:         getEnvAsIntOrDefault(EnvWidth, def.Display.Width),
		Height:        getEnvAsIntOrDefault(EnvHeight, def.Display.Height),
		TargetFPS:     getEnvAsIntOrDefault(EnvTargetFPS, def.Display.TargetFPS),
		AudioEnabled:  getEnvAsBoolOrDefault(EnvAudio, def.Audio.Enabled),
		Volume:        getEnvAsFloatOrDefault(EnvVolume, def.Audio.Volume),
		DebugControls: getEnvAsBoolOrDefault(EnvDebugControls, def.Player.DebugControls),
	}

	if err := validateEnvironmentConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateEnvironmentConfig(c *EnvironmentConfig) error {
	if c.MaxStep < time.Millisecond || c.MaxStep > time.Second {
		return &ValidationError{Field: "MaxStep", Message: "must be between 1ms and 1s"}
	}
	if c.PlanetCount < 1 || c.PlanetCount > 1000 {
		return &ValidationError{Field: "PlanetCount", Message: "must be between 1 and 1000"}
	}
	switch c.Renderer {
	case RendererEngo, RendererTerminal, RendererNull:
	default:
		return &ValidationError{Field: "Renderer", Message: "must be engo, terminal or null"}
	}
	if c.Width < 100 || c.Width > 10000 {
		return &ValidationError{Field: "Width", Message: "must be between 100 and 10000"}
	}
	if c.Height < 100 || c.Height > 10000 {
		return &ValidationError{Field: "Height", Message: "must be between 100 and 10000"}
	}
	if c.TargetFPS < 1 || c.TargetFPS > 240 {
		return &ValidationError{Field: "TargetFPS", Message: "must be between 1 and 240"}
	}
	if c.Volume < -10 || c.Volume > 2 {
		return &ValidationError{Field: "Volume", Message: "must be between -10 and 2"}
	}
	return nil
}

// ApplyEnvironmentOverrides copies every ORBIT_* variable that is set onto
// config. Unset variables leave config untouched.
func ApplyEnvironmentOverrides(config *GameConfig) error {
	env, err := LoadConfigFromEnv()
	if err != nil {
		return err
	}

	if isSet(EnvSeed) {
		config.Simulation.Seed = env.Seed
	}
	if isSet(EnvMaxStep) {
		config.Simulation.MaxStep = env.MaxStep.Seconds()
	}
	if isSet(EnvPlanetCount) {
		config.World.PlanetCount = env.PlanetCount
	}
	if isSet(EnvRenderer) {
		config.Display.Renderer = env.Renderer
	}
	if isSet(EnvWidth) {
		config.Display.Width = env.Width
	}
	if isSet(EnvHeight) {
		config.Display.Height = env.Height
	}
	if isSet(EnvTargetFPS) {
		config.Display.TargetFPS = env.TargetFPS
	}
	if isSet(EnvAudio) {
		config.Audio.Enabled = env.AudioEnabled
	}
	if isSet(EnvVolume) {
		config.Audio.Volume = env.Volume
	}
	if isSet(EnvDebugControls) {
		config.Player.DebugControls = env.DebugControls
	}

	return config.Validate()
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func isSet(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsUint64OrDefault(key string, defaultValue uint64) uint64 {
	if value, err := strconv.ParseUint(os.Getenv(key), 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
