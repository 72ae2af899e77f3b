package core

import "time"

// FrameClock measures the wall-clock time between consecutive frames.
type FrameClock struct {
	last time.Time
	now  func() time.Time
}

// NewFrameClock returns a clock backed by time.Now.
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Tick returns the seconds elapsed since the previous Tick. The first call
// returns 0.
func (c *FrameClock) Tick() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	delta := now.Sub(c.last)
	c.last = now
	return delta.Seconds()
}
