package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultTetrisConfig()
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))

	assert.Equal(t, DefaultTetrisConfig(), cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 250*time.Millisecond, cfg.Interval())
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
gravity:
  interval_ms: 500
keys:
  left: ["a"]
`), 0o600))

	cfg, err := LoadTetris(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Gravity.IntervalMS)
	assert.Equal(t, []string{"a"}, cfg.Keys.Left)
	// Unmentioned settings keep their defaults.
	assert.Equal(t, 60, cfg.FrameRate)
	assert.Equal(t, []string{"q", "ctrl+c"}, cfg.Keys.Quit)
}

func TestLoadTetrisCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTetris(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("gravity: [unclosed"), 0o600))
	_, err = LoadTetris(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("frame_rate: 0\n"), 0o600))
	_, err = LoadTetris(invalid)
	assert.ErrorContains(t, err, "frame_rate")
}

func TestLoadTetrisSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	// Nothing on disk: embedded defaults.
	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Gravity.IntervalMS)

	// Local ./configs file.
	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "tetris.yaml"),
		[]byte("gravity:\n  interval_ms: 300\n"), 0o600))
	cfg, err = LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Gravity.IntervalMS)

	// User file wins over the local one.
	userDir := filepath.Join(home, ".tetris", "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "tetris.yaml"),
		[]byte("gravity:\n  interval_ms: 350\n"), 0o600))
	cfg, err = LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 350, cfg.Gravity.IntervalMS)

	// An invalid user file is skipped.
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "tetris.yaml"),
		[]byte("gravity:\n  interval_ms: -1\n"), 0o600))
	cfg, err = LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Gravity.IntervalMS)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
		ok     bool
	}{
		{"defaults", func(*TetrisConfig) {}, true},
		{"zero interval", func(c *TetrisConfig) { c.Gravity.IntervalMS = 0 }, false},
		{"zero frame rate", func(c *TetrisConfig) { c.FrameRate = 0 }, false},
		{"unknown progression", func(c *TetrisConfig) { c.Gravity.Progression.Type = "score" }, false},
		{"lines progression", func(c *TetrisConfig) { c.Gravity.Progression.Type = ProgressionLines }, true},
		{"min above base", func(c *TetrisConfig) {
			c.Gravity.Progression.Type = ProgressionLines
			c.Gravity.Progression.MinIntervalMS = 1000
		}, false},
		{"no quit key", func(c *TetrisConfig) { c.Keys.Quit = nil }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestApplyTetrisPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		interval    int
		progression string
	}{
		{"", 250, ProgressionNone},
		{DifficultyEasy, 400, ProgressionLines},
		{DifficultyNormal, 250, ProgressionLines},
		{DifficultyHard, 150, ProgressionLines},
		{DifficultyFixed, 250, ProgressionNone},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyTetrisPreset(&cfg, tc.preset)

			assert.Equal(t, tc.interval, cfg.Gravity.IntervalMS)
			assert.Equal(t, tc.progression, cfg.Gravity.Progression.Type)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	p, err = ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyPreset(""), p)

	_, err = ParsePreset("nightmare")
	assert.Error(t, err)
}
