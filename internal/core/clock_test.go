package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestGravityTimerDue(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	timer := NewGravityTimer(clock, 250*time.Millisecond)

	assert.False(t, timer.Due(), "no tick before the interval elapses")

	clock.advance(249 * time.Millisecond)
	assert.False(t, timer.Due())
	assert.Equal(t, 249*time.Millisecond, timer.Elapsed())

	clock.advance(time.Millisecond)
	require.True(t, timer.Due(), "tick due once the interval is reached")
	assert.Equal(t, time.Duration(0), timer.Elapsed(), "firing restarts the interval")

	// A long stall fires once, not once per missed interval.
	clock.advance(time.Second)
	assert.True(t, timer.Due())
	assert.False(t, timer.Due())
}

func TestGravityTimerPause(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	timer := NewGravityTimer(clock, 100*time.Millisecond)

	timer.SetPaused(true)
	clock.advance(time.Second)
	assert.False(t, timer.Due(), "paused timer never fires")
	assert.True(t, timer.Paused())

	timer.SetPaused(false)
	assert.False(t, timer.Due(), "resuming restarts the interval")

	clock.advance(100 * time.Millisecond)
	assert.True(t, timer.Due())
}

func TestGravityTimerSetInterval(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	timer := NewGravityTimer(clock, time.Second)

	clock.advance(300 * time.Millisecond)
	timer.SetInterval(200 * time.Millisecond)

	assert.Equal(t, 200*time.Millisecond, timer.Interval())
	assert.True(t, timer.Due(), "shorter interval applies to the running wait")
}

func TestNewGravityTimerDefaultsToSystemClock(t *testing.T) {
	timer := NewGravityTimer(nil, time.Hour)
	require.NotNil(t, timer.clock)
	assert.False(t, timer.Due())
}
