// Package config holds the run configuration for the simulator: which body
// table to load, the simulated start time, clock speed, and the visual
// scale settings.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSpeed         = 86400.0 // one simulated day per real second
	DefaultPlanetScale   = 5.0
	DefaultUniverseScale = 20.0
	DefaultFrameRate     = 30
)

type Config struct {
	// BodiesFile is a YAML body table; empty selects the built-in star
	// system.
	BodiesFile string `yaml:"bodies_file"`

	// Start is the simulated start timestamp in RFC 3339; empty means the
	// current wall-clock time.
	Start string `yaml:"start"`

	// Speed multiplies elapsed real time per tick. Zero pauses, negative
	// rewinds.
	Speed float64 `yaml:"speed"`

	PlanetScale   float64 `yaml:"planet_scale"`
	UniverseScale float64 `yaml:"universe_scale"`

	// FrameRate is ticks per second for the live view.
	FrameRate int `yaml:"frame_rate"`
}

func DefaultConfig() *Config {
	return &Config{
		Speed:         DefaultSpeed,
		PlanetScale:   DefaultPlanetScale,
		UniverseScale: DefaultUniverseScale,
		FrameRate:     DefaultFrameRate,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// StartTime parses the configured start timestamp, defaulting to now.
func (c *Config) StartTime() (time.Time, error) {
	if c.Start == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, c.Start)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start time %q: %w", c.Start, err)
	}
	return t, nil
}
