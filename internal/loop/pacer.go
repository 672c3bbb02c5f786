// Package loop drives a game at a fixed tick rate against a frontend.
// The scheduler owns timing and termination; frontends only poll input and
// present frames.
package loop

import "time"

// Pacer computes fixed tick boundaries measured from a start time, so time
// spent working inside a frame does not accumulate drift. When the caller
// falls behind, missed boundaries are skipped rather than replayed.
type Pacer struct {
	interval time.Duration
	start    time.Duration
	last     int64 // Index of the most recent boundary handed out
	skipped  uint64
}

// NewPacer creates a pacer for tickRate frames per second. A non-positive
// rate falls back to 60.
func NewPacer(tickRate int) *Pacer {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Pacer{interval: time.Second / time.Duration(tickRate)}
}

// Interval returns the length of one tick.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Start anchors boundary zero at now.
func (p *Pacer) Start(now time.Duration) {
	p.start = now
	p.last = 0
	p.skipped = 0
}

// Next returns the delay from now until the first boundary strictly after now.
func (p *Pacer) Next(now time.Duration) time.Duration {
	elapsed := now - p.start
	if elapsed < 0 {
		elapsed = 0
	}
	k := int64(elapsed/p.interval) + 1
	if k <= p.last {
		k = p.last + 1
	}
	if gap := k - p.last - 1; gap > 0 {
		p.skipped += uint64(gap)
	}
	p.last = k
	return p.start + time.Duration(k)*p.interval - now
}

// Skipped returns how many boundaries were dropped because the caller
// was late.
func (p *Pacer) Skipped() uint64 {
	return p.skipped
}
