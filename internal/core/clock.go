package core

import "time"

// Clock is a monotonic millisecond clock.
type Clock interface {
	NowMillis() int64
}

// SystemClock reports milliseconds elapsed since it was created.
// It reads Go's monotonic clock, so wall-clock jumps do not affect it.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMillis returns elapsed milliseconds.
func (c *SystemClock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock only moves when told to. Used by tests and headless runs.
type ManualClock struct {
	now int64
}

// NowMillis returns the current manual time.
func (c *ManualClock) NowMillis() int64 {
	return c.now
}

// Advance moves the clock forward by ms milliseconds.
func (c *ManualClock) Advance(ms int64) {
	c.now += ms
}

// Set jumps the clock to ms.
func (c *ManualClock) Set(ms int64) {
	c.now = ms
}
