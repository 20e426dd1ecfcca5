package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitlab/internal/physics"
)

// Hand-tuned defaults. All of them are visual-stability tuning, not
// physically derived.
const (
	DefaultG            = 10.0
	DefaultForceDamping = 0.01
	DefaultMinDistance  = 2.0
	DefaultMaxDt        = 1.0 / 60.0
	DefaultSensitivity  = 2.0
	DefaultSpeed        = 25.0
)

type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Camera  CameraConfig  `yaml:"camera"`
	// MaxDt caps the simulated time step per frame.
	MaxDt float64 `yaml:"max_dt"`
	// Scene optionally names a scene yaml file; empty means the built-in
	// default scene.
	Scene string `yaml:"scene"`
}

type PhysicsConfig struct {
	G            float64 `yaml:"g"`
	ForceDamping float64 `yaml:"force_damping"`
	MinDistance  float64 `yaml:"min_distance"`
}

type CameraConfig struct {
	Sensitivity float64 `yaml:"sensitivity"`
	Speed       float64 `yaml:"speed"`
}

func DefaultConfig() *Config {
	return &Config{
		Physics: PhysicsConfig{
			G:            DefaultG,
			ForceDamping: DefaultForceDamping,
			MinDistance:  DefaultMinDistance,
		},
		Camera: CameraConfig{
			Sensitivity: DefaultSensitivity,
			Speed:       DefaultSpeed,
		},
		MaxDt: DefaultMaxDt,
	}
}

// Load reads a config file over the defaults, so absent fields keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
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

// Params maps the physics section onto the simulation tuning struct.
func (c *Config) Params() physics.Params {
	return physics.Params{
		G:            c.Physics.G,
		ForceDamping: c.Physics.ForceDamping,
		MinDistance:  c.Physics.MinDistance,
	}
}
