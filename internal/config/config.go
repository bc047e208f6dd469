package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/robolab/slambot/internal/robot"
)

const (
	DefaultWorldSize        = 100.0
	DefaultMeasurementRange = 30.0
	DefaultMotionNoise      = 1.0
	DefaultMeasurementNoise = 1.0
	DefaultLandmarks        = 5
	DefaultSteps            = 20
	DefaultStepDistance     = 1.0
)

type Config struct {
	WorldSize        float64 `yaml:"world_size"`
	MeasurementRange float64 `yaml:"measurement_range"`
	MotionNoise      float64 `yaml:"motion_noise"`
	MeasurementNoise float64 `yaml:"measurement_noise"`
	Landmarks        int     `yaml:"num_landmarks"`
	Steps            int     `yaml:"steps"`
	StepDistance     float64 `yaml:"step_distance"`
	Seed             int64   `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		WorldSize:        DefaultWorldSize,
		MeasurementRange: DefaultMeasurementRange,
		MotionNoise:      DefaultMotionNoise,
		MeasurementNoise: DefaultMeasurementNoise,
		Landmarks:        DefaultLandmarks,
		Steps:            DefaultSteps,
		StepDistance:     DefaultStepDistance,
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

func (c *Config) Validate() error {
	if c.WorldSize <= 0 {
		return fmt.Errorf("world_size must be positive, got %f", c.WorldSize)
	}
	if c.MotionNoise < 0 {
		return fmt.Errorf("motion_noise must be non-negative, got %f", c.MotionNoise)
	}
	if c.MeasurementNoise < 0 {
		return fmt.Errorf("measurement_noise must be non-negative, got %f", c.MeasurementNoise)
	}
	if c.MeasurementRange < 0 && c.MeasurementRange != robot.UnlimitedRange {
		return fmt.Errorf("measurement_range must be -1 or non-negative, got %f", c.MeasurementRange)
	}
	if c.Landmarks < 0 {
		return fmt.Errorf("num_landmarks must be non-negative, got %d", c.Landmarks)
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d", c.Steps)
	}
	if c.StepDistance <= 0 {
		return fmt.Errorf("step_distance must be positive, got %f", c.StepDistance)
	}
	return nil
}

// NewRobot builds a robot from the config, using src for all randomness.
func (c *Config) NewRobot(src robot.Source) (*robot.Robot, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return robot.New(c.WorldSize, c.MeasurementRange, c.MotionNoise, c.MeasurementNoise, src)
}
