package config

import "time"

// GravityCurve maps lines cleared to the current gravity interval.
type GravityCurve struct {
	cfg GravityConfig
}

// NewGravityCurve creates a curve for the given settings.
func NewGravityCurve(cfg GravityConfig) *GravityCurve {
	return &GravityCurve{cfg: cfg}
}

// IsEnabled reports whether the interval changes during a game.
func (c *GravityCurve) IsEnabled() bool {
	return c.cfg.Progression.Type == ProgressionLines
}

// Interval returns the gravity interval after the given number of cleared
// lines, interpolating linearly from the base to the minimum interval.
func (c *GravityCurve) Interval(lines int) time.Duration {
	base := c.cfg.IntervalMS
	if !c.IsEnabled() {
		return time.Duration(base) * time.Millisecond
	}

	maxAt := c.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1
	}
	progress := min(max(float64(lines)/float64(maxAt), 0), 1)

	span := float64(base - c.cfg.Progression.MinIntervalMS)
	ms := float64(base) - progress*span
	return time.Duration(ms * float64(time.Millisecond))
}
