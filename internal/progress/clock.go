// Package progress tracks elapsed playback time from wall-clock deltas.
//
// The clock is an approximation of the audio device's own clock: it is never
// synchronized with the device position, so device underruns make the two
// drift apart.
package progress

import (
	"errors"
	"time"
)

// ErrInvalidDuration is returned for clips with a zero or negative duration.
var ErrInvalidDuration = errors.New("duration must be positive")

// Clock accumulates musical time.
//
// Tick adds the wall time since the previous Tick or ResetTick, scaled by the
// current speed. While playback is paused callers use ResetTick instead so
// that the paused interval is never counted.
type Clock struct {
	passed   float64 // seconds of musical time
	duration time.Duration
	last     time.Time
	now      func() time.Time
}

// Option configures a Clock.
type Option func(*Clock)

// WithNow replaces the wall clock.
func WithNow(now func() time.Time) Option {
	return func(c *Clock) {
		c.now = now
	}
}

// New returns a clock for a clip of the given duration, started now.
func New(duration time.Duration, opts ...Option) (*Clock, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	c := &Clock{
		duration: duration,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.last = c.now()
	return c, nil
}

// Tick advances passed time by the wall time elapsed since the last tick
// multiplied by speed, and returns the new progress.
// A clock going backwards adds nothing.
func (c *Clock) Tick(speed float64) float64 {
	now := c.now()
	if elapsed := now.Sub(c.last).Seconds(); elapsed > 0 && speed > 0 {
		c.passed += elapsed * speed
	}
	c.last = now
	return c.Progress()
}

// ResetTick restarts the wall-time measurement without touching passed time.
func (c *Clock) ResetTick() {
	c.last = c.now()
}

// Progress returns passed time over duration. Values above 1.0 mean the clip
// is over.
func (c *Clock) Progress() float64 {
	return c.passed / c.duration.Seconds()
}

// Finished reports whether progress went past the end of the clip.
func (c *Clock) Finished() bool {
	return c.Progress() > 1.0
}

// PassedSeconds returns the musical time played so far, in seconds.
func (c *Clock) PassedSeconds() float64 { return c.passed }

// Passed returns the musical time played so far.
func (c *Clock) Passed() time.Duration {
	return time.Duration(c.passed * float64(time.Second))
}

// Duration returns the clip duration.
func (c *Clock) Duration() time.Duration { return c.duration }
