package config

import (
	"sort"

	"github.com/robolab/slambot/internal/robot"
)

var presets = map[string]*Config{
	"default": DefaultConfig(),
	// Small noiseless world, handy for checking measurements by hand.
	"classroom": {
		WorldSize:        10,
		MeasurementRange: 5,
		MotionNoise:      0,
		MeasurementNoise: 0,
		Landmarks:        2,
		Steps:            10,
		StepDistance:     1,
	},
	// Every landmark visible every step regardless of distance.
	"openworld": {
		WorldSize:        100,
		MeasurementRange: robot.UnlimitedRange,
		MotionNoise:      1,
		MeasurementNoise: 1,
		Landmarks:        8,
		Steps:            50,
		StepDistance:     2,
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
