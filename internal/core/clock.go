package core

import "time"

// Clock is the monotonic time source consulted by the gravity timer.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock (monotonic reading included).
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// GravityTimer decides when the next gravity tick is due. The platform polls
// Due once per frame; the timer fires at most once per poll.
type GravityTimer struct {
	clock    Clock
	interval time.Duration
	last     time.Time
	paused   bool
}

// NewGravityTimer starts a timer at the clock's current time.
func NewGravityTimer(clock Clock, interval time.Duration) *GravityTimer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &GravityTimer{
		clock:    clock,
		interval: interval,
		last:     clock.Now(),
	}
}

// Interval returns the current gravity cadence.
func (t *GravityTimer) Interval() time.Duration {
	return t.interval
}

// SetInterval changes the cadence without resetting the elapsed time.
func (t *GravityTimer) SetInterval(d time.Duration) {
	t.interval = d
}

// Elapsed returns the time since the last tick fired.
func (t *GravityTimer) Elapsed() time.Duration {
	return t.clock.Now().Sub(t.last)
}

// Due reports whether a tick should run now and, if so, restarts the interval.
func (t *GravityTimer) Due() bool {
	if t.paused {
		return false
	}
	now := t.clock.Now()
	if now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}

// Reset restarts the interval from now.
func (t *GravityTimer) Reset() {
	t.last = t.clock.Now()
}

// SetPaused freezes or resumes the timer. Resuming restarts the interval so a
// long pause does not produce an immediate tick.
func (t *GravityTimer) SetPaused(paused bool) {
	if t.paused && !paused {
		t.Reset()
	}
	t.paused = paused
}

// Paused reports whether the timer is frozen.
func (t *GravityTimer) Paused() bool {
	return t.paused
}
