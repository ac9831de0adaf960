package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	// Test basic structure
	if config == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	// Test world generation
	if config.World.PlanetCount != 10 {
		t.Errorf("Expected PlanetCount 10, got %d", config.World.PlanetCount)
	}
	if config.World.RowSpacingMin != 10 || config.World.RowSpacingMax != 1000 {
		t.Errorf("Expected row spacing 10..1000, got %f..%f", config.World.RowSpacingMin, config.World.RowSpacingMax)
	}
	if config.World.RadiusMin != 10 || config.World.RadiusMax != 100 {
		t.Errorf("Expected radius 10..100, got %f..%f", config.World.RadiusMin, config.World.RadiusMax)
	}

	// Test player handling
	if config.Player.Deceleration != 0.5 {
		t.Errorf("Expected Deceleration 0.5, got %f", config.Player.Deceleration)
	}
	if config.Player.ThrustPower != 200 {
		t.Errorf("Expected ThrustPower 200, got %f", config.Player.ThrustPower)
	}
	if config.Player.MaxTurnRate != 6 {
		t.Errorf("Expected MaxTurnRate 6, got %f", config.Player.MaxTurnRate)
	}
	if config.Player.DebugControls {
		t.Error("Expected DebugControls to be false")
	}

	// Test simulation
	if config.Simulation.MaxStep != 1.0/30.0 {
		t.Errorf("Expected MaxStep 1/30, got %f", config.Simulation.MaxStep)
	}
	if config.Simulation.MaxFrame != 0.25 {
		t.Errorf("Expected MaxFrame 0.25, got %f", config.Simulation.MaxFrame)
	}

	// Test display
	if config.Display.Renderer != RendererEngo {
		t.Errorf("Expected Renderer %q, got %q", RendererEngo, config.Display.Renderer)
	}

	if err := config.Validate(); err != nil {
		t.Errorf("DefaultConfig does not validate: %v", err)
	}
}

// Test table-driven approach for zone configurations
func TestDefaultConfig_ZoneConfigurations(t *testing.T) {
	config := DefaultConfig()

	tests := []struct {
		name           string
		zoneIndex      int
		expectedEdge   string
		expectedGrowth float64
	}{
		{
			name:           "Bottom zone",
			zoneIndex:      0,
			expectedEdge:   "bottom",
			expectedGrowth: 0.2,
		},
		{
			name:           "Left zone",
			zoneIndex:      1,
			expectedEdge:   "left",
			expectedGrowth: 0.05,
		},
		{
			name:           "Right zone",
			zoneIndex:      2,
			expectedEdge:   "right",
			expectedGrowth: 0.05,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.zoneIndex >= len(config.Zones) {
				t.Fatalf("Zone index %d out of range, only %d zones available", tt.zoneIndex, len(config.Zones))
			}

			zone := config.Zones[tt.zoneIndex]

			if zone.Edge != tt.expectedEdge {
				t.Errorf("Expected edge '%s', got '%s'", tt.expectedEdge, zone.Edge)
			}
			if zone.GrowthRate != tt.expectedGrowth {
				t.Errorf("Expected GrowthRate %f, got %f", tt.expectedGrowth, zone.GrowthRate)
			}
			if zone.Speed <= 0 || zone.EmitPeriod <= 0 {
				t.Errorf("Expected positive speed and emit period, got %f and %f", zone.Speed, zone.EmitPeriod)
			}
		})
	}
}

func TestLoadConfig_Success(t *testing.T) {
	// Create temporary config file
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.json")

	// Create test config data
	testConfig := DefaultConfig()
	testConfig.World.PlanetCount = 25
	testConfig.Zones = []ZoneConfig{
		{
			Edge:       "threshold",
			Offset:     300,
			Width:      1000,
			Height:     50,
			Speed:      10,
			GrowthRate: 0.3,
			EmitPeriod: 0.1,
		},
	}
	testConfig.Simulation.Seed = 1234
	testConfig.Display.Renderer = RendererTerminal

	// Write test config to file
	data, err := json.MarshalIndent(testConfig, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal test config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0o644)
	if err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}

	// Test loading config
	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	// Verify loaded config matches original
	if loadedConfig.World.PlanetCount != 25 {
		t.Errorf("Expected PlanetCount 25, got %d", loadedConfig.World.PlanetCount)
	}
	if len(loadedConfig.Zones) != 1 || loadedConfig.Zones[0].Edge != "threshold" {
		t.Errorf("Expected one threshold zone, got %+v", loadedConfig.Zones)
	}
	if loadedConfig.Simulation.Seed != 1234 {
		t.Errorf("Expected Seed 1234, got %d", loadedConfig.Simulation.Seed)
	}
	if loadedConfig.Display.Renderer != RendererTerminal {
		t.Errorf("Expected Renderer terminal, got %s", loadedConfig.Display.Renderer)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "partial.json")

	err := os.WriteFile(configPath, []byte(`{"world": {"planetCount": 3}}`), 0o644)
	if err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loadedConfig.World.PlanetCount != 3 {
		t.Errorf("Expected PlanetCount 3, got %d", loadedConfig.World.PlanetCount)
	}
	if loadedConfig.Player.ThrustPower != 200 {
		t.Errorf("Expected default ThrustPower 200, got %f", loadedConfig.Player.ThrustPower)
	}
	if len(loadedConfig.Zones) != 3 {
		t.Errorf("Expected default zones, got %d", len(loadedConfig.Zones))
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	nonExistentPath := "/path/that/does/not/exist/config.json"

	config, err := LoadConfig(nonExistentPath)

	if err == nil {
		t.Error("Expected error when loading non-existent file, got nil")
	}
	if config != nil {
		t.Error("Expected nil config when file not found, got non-nil")
	}

	// Check error message contains expected information
	expectedSubstring := "failed to open config file"
	if err != nil && !strings.Contains(err.Error(), expectedSubstring) {
		t.Errorf("Expected error to contain '%s', got '%s'", expectedSubstring, err.Error())
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	// Create temporary file with invalid JSON
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid_config.json")

	invalidJSON := `{"world": {"planetCount": 5}, invalid json}`
	err := os.WriteFile(configPath, []byte(invalidJSON), 0o644)
	if err != nil {
		t.Fatalf("Failed to write invalid JSON file: %v", err)
	}

	config, err := LoadConfig(configPath)

	if err == nil {
		t.Error("Expected error when loading invalid JSON, got nil")
	}
	if config != nil {
		t.Error("Expected nil config when JSON is invalid, got non-nil")
	}

	// Check error message contains expected information
	expectedSubstring := "failed to parse config file"
	if err != nil && !strings.Contains(err.Error(), expectedSubstring) {
		t.Errorf("Expected error to contain '%s', got '%s'", expectedSubstring, err.Error())
	}
}

func TestSaveConfig_Success(t *testing.T) {
	// Create test config
	testConfig := DefaultConfig()
	testConfig.World.SpawnWidth = 2000
	testConfig.Audio.Enabled = false

	// Create temporary file path
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "save_test_config.json")

	// Test saving config
	err := SaveConfig(testConfig, configPath)
	if err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	// Verify file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	// Load the saved config and verify contents
	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load saved config: %v", err)
	}

	if loadedConfig.World.SpawnWidth != 2000 {
		t.Errorf("Expected SpawnWidth 2000, got %f", loadedConfig.World.SpawnWidth)
	}
	if loadedConfig.Audio.Enabled {
		t.Error("Expected audio to stay disabled")
	}
}

func TestSaveConfig_InvalidPath(t *testing.T) {
	testConfig := DefaultConfig()

	// Try to save into a directory that does not exist
	invalidPath := filepath.Join(t.TempDir(), "nonexistent", "directory", "config.json")

	err := SaveConfig(testConfig, invalidPath)

	if err == nil {
		t.Error("Expected error when saving to invalid path, got nil")
	}

	// Check error message contains expected information
	expectedSubstring := "failed to write config file"
	if err != nil && !strings.Contains(err.Error(), expectedSubstring) {
		t.Errorf("Expected error to contain '%s', got '%s'", expectedSubstring, err.Error())
	}
}

func TestGameConfig_Validate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(c *GameConfig)
		errorField string
	}{
		{
			name:   "Defaults",
			mutate: func(c *GameConfig) {},
		},
		{
			name:       "NoPlanets",
			mutate:     func(c *GameConfig) { c.World.PlanetCount = 0 },
			errorField: "World.PlanetCount",
		},
		{
			name:       "ReversedRowSpacing",
			mutate:     func(c *GameConfig) { c.World.RowSpacingMin = 500; c.World.RowSpacingMax = 10 },
			errorField: "World.RowSpacing",
		},
		{
			name:       "ZeroRadius",
			mutate:     func(c *GameConfig) { c.World.RadiusMin = 0 },
			errorField: "World.Radius",
		},
		{
			name:       "NegativePlayerRadius",
			mutate:     func(c *GameConfig) { c.Player.Radius = -1 },
			errorField: "Player.Radius",
		},
		{
			name:       "NoTurnRate",
			mutate:     func(c *GameConfig) { c.Player.MaxTurnRate = 0 },
			errorField: "Player.MaxTurnRate",
		},
		{
			name:       "UnknownEdge",
			mutate:     func(c *GameConfig) { c.Zones[1].Edge = "top" },
			errorField: "Zones[1].Edge",
		},
		{
			name:       "FlatZone",
			mutate:     func(c *GameConfig) { c.Zones[0].Height = 0 },
			errorField: "Zones[0].Size",
		},
		{
			name:       "ZeroMaxStep",
			mutate:     func(c *GameConfig) { c.Simulation.MaxStep = 0 },
			errorField: "Simulation.MaxStep",
		},
		{
			name:       "FrameShorterThanStep",
			mutate:     func(c *GameConfig) { c.Simulation.MaxFrame = c.Simulation.MaxStep / 2 },
			errorField: "Simulation.MaxFrame",
		},
		{
			name:       "UnknownRenderer",
			mutate:     func(c *GameConfig) { c.Display.Renderer = "opengl" },
			errorField: "Display.Renderer",
		},
		{
			name:       "TooFast",
			mutate:     func(c *GameConfig) { c.Display.TargetFPS = 1000 },
			errorField: "Display.TargetFPS",
		},
		{
			name:       "AudioWithoutSampleRate",
			mutate:     func(c *GameConfig) { c.Audio.SampleRate = 0 },
			errorField: "Audio.SampleRate",
		},
		{
			name: "SilentWithoutSampleRate",
			mutate: func(c *GameConfig) {
				c.Audio.Enabled = false
				c.Audio.SampleRate = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)

			err := config.Validate()

			if tt.errorField == "" {
				if err != nil {
					t.Errorf("Expected no validation error, but got: %v", err)
				}
				return
			}

			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("Expected ValidationError, got %T: %v", err, err)
			}
			if validationErr.Field != tt.errorField {
				t.Errorf("Expected error for field '%s', got error for field '%s'", tt.errorField, validationErr.Field)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Error("Expected error to match ErrInvalidConfig")
			}
		})
	}
}
