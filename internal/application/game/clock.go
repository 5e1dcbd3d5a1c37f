package game

import "time"

// Clock measures wall time between frame boundaries.
type Clock struct {
	now  func() time.Time
	last time.Time
}

// NewClock creates a clock using the system monotonic time source.
func NewClock() *Clock {
	return newClock(time.Now)
}

// newClock creates a clock with an injectable time source for tests.
func newClock(now func() time.Time) *Clock {
	return &Clock{now: now, last: now()}
}

// Tick returns the seconds elapsed since the previous Tick (or since
// construction, for the first call) and advances the frame boundary.
// A clock reporting backwards or zero elapsed time yields 0, never a
// negative delta.
func (c *Clock) Tick() float64 {
	t := c.now()
	dt := t.Sub(c.last).Seconds()
	c.last = t
	if dt < 0 {
		dt = 0
	}
	return dt
}
