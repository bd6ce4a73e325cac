// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/gridsnake/engine"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters. Gameplay tunables default
// to the classic values; the board dimension is fixed (engine.GridSize)
// and deliberately not configurable.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Game      GameConfig      `yaml:"game"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	TargetFPS int  `yaml:"target_fps"`
	ShowGrid  bool `yaml:"show_grid"` // draw cell outlines behind the board
}

// GameConfig holds gameplay timing and scoring.
type GameConfig struct {
	StartIntervalMs int `yaml:"start_interval_ms"` // tick period at game start
	MinIntervalMs   int `yaml:"min_interval_ms"`   // speed ramp floor
	SpeedStepMs     int `yaml:"speed_step_ms"`     // interval reduction per food
	FoodScore       int `yaml:"food_score"`        // points per food
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	WindowTicks         int `yaml:"window_ticks"`          // ticks per stats window
	PerfCollectorWindow int `yaml:"perf_collector_window"` // tick samples for perf stats
}

// Rules converts the gameplay section into engine rules.
func (c *Config) Rules() engine.Rules {
	return engine.Rules{
		StartInterval: time.Duration(c.Game.StartIntervalMs) * time.Millisecond,
		MinInterval:   time.Duration(c.Game.MinIntervalMs) * time.Millisecond,
		SpeedStep:     time.Duration(c.Game.SpeedStepMs) * time.Millisecond,
		FoodScore:     c.Game.FoodScore,
	}
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded
// defaults if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
