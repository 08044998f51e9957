package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gravity: GravityConfig{
			IntervalMS: 250,
			Progression: ProgressionConfig{
				Type:          ProgressionNone,
				MaxAt:         100,
				MinIntervalMS: 80,
			},
		},
		FrameRate: 60,
		Keys: KeyConfig{
			Left:    []string{"j", "left"},
			Right:   []string{"l", "right"},
			Rotate:  []string{"i", "up"},
			Drop:    []string{"k", "down", " "},
			Pause:   []string{"p"},
			Restart: []string{"r"},
			Quit:    []string{"q", "ctrl+c"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
