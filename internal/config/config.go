package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/full2null/fallingsimulator/internal/sim"
)

// Defaults mirror the form values the simulator historically started
// with: a one-tonne body with a parachute-sized drag area.
const (
	DefaultCd      = 0.42
	DefaultArea    = 19.25
	DefaultHeight  = 70.0
	DefaultMass    = 1000.0
	DefaultSeconds = 10
	DefaultFPS     = 30
)

// Config is the on-disk run description.
type Config struct {
	Cd            float64  `yaml:"cd"`
	Area          float64  `yaml:"area"`
	Height        float64  `yaml:"height"`
	Mass          float64  `yaml:"mass"`
	AirResistance bool     `yaml:"air_resistance"`
	Mode          sim.Mode `yaml:"mode"`
	Seconds       int      `yaml:"seconds"`
	FPS           int      `yaml:"fps"`
	Output        string   `yaml:"output,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Cd:            DefaultCd,
		Area:          DefaultArea,
		Height:        DefaultHeight,
		Mass:          DefaultMass,
		AirResistance: true,
		Mode:          sim.ModeHeight,
		Seconds:       DefaultSeconds,
		FPS:           DefaultFPS,
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

// Split returns the value pair the simulation core consumes.
func (c *Config) Split() (sim.Parameters, sim.Config) {
	params := sim.Parameters{
		Cd:     c.Cd,
		Area:   c.Area,
		Height: c.Height,
		Mass:   c.Mass,
	}
	cfg := sim.Config{
		AirResistance: c.AirResistance,
		Mode:          c.Mode,
		Seconds:       c.Seconds,
		FPS:           c.FPS,
	}
	return params, cfg
}
