// Package config loads the YAML game configuration and derives the gravity
// cadence from it.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig is the full game configuration.
type TetrisConfig struct {
	Gravity   GravityConfig `yaml:"gravity"`
	FrameRate int           `yaml:"frame_rate"`
	Keys      KeyConfig     `yaml:"keys"`
}

// GravityConfig controls how fast pieces fall.
type GravityConfig struct {
	IntervalMS  int               `yaml:"interval_ms"`
	Progression ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how the interval shrinks over a game.
type ProgressionConfig struct {
	Type          string `yaml:"type"`   // "lines" or "none"
	MaxAt         int    `yaml:"max_at"` // Lines at which MinIntervalMS is reached
	MinIntervalMS int    `yaml:"min_interval_ms"`
}

// KeyConfig lists the key names bound to each command.
type KeyConfig struct {
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Rotate  []string `yaml:"rotate"`
	Drop    []string `yaml:"drop"`
	Pause   []string `yaml:"pause"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
}

// Progression types.
const (
	ProgressionNone  = "none"
	ProgressionLines = "lines"
)

// Interval returns the base gravity interval.
func (c TetrisConfig) Interval() time.Duration {
	return time.Duration(c.Gravity.IntervalMS) * time.Millisecond
}

// Validate reports the first setting that cannot drive a game.
func (c TetrisConfig) Validate() error {
	if c.Gravity.IntervalMS <= 0 {
		return fmt.Errorf("config: gravity.interval_ms must be positive, got %d", c.Gravity.IntervalMS)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("config: frame_rate must be positive, got %d", c.FrameRate)
	}
	switch c.Gravity.Progression.Type {
	case "", ProgressionNone:
	case ProgressionLines:
		p := c.Gravity.Progression
		if p.MinIntervalMS <= 0 || p.MinIntervalMS > c.Gravity.IntervalMS {
			return fmt.Errorf("config: gravity.progression.min_interval_ms must be in (0, %d], got %d",
				c.Gravity.IntervalMS, p.MinIntervalMS)
		}
	default:
		return fmt.Errorf("config: unknown gravity.progression.type %q", c.Gravity.Progression.Type)
	}
	if len(c.Keys.Quit) == 0 {
		return errors.New("config: at least one quit key is required")
	}
	return nil
}

// DifficultyPreset is a named gravity setting.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IntervalForPreset returns the starting gravity interval in milliseconds,
// or 0 for presets that keep the configured interval.
func IntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 400
	case DifficultyNormal:
		return 250
	case DifficultyHard:
		return 150
	default:
		return 0
	}
}
