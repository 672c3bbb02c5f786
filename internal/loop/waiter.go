package loop

import (
	"context"
	"time"
)

// Waiter is the scheduler's time source. Now is monotonic and relative to
// the waiter's creation.
type Waiter interface {
	Now() time.Duration
	Wait(ctx context.Context, d time.Duration) error
}

// RealWaiter sleeps on timers.
type RealWaiter struct {
	start time.Time
}

// NewRealWaiter creates a waiter whose clock starts now.
func NewRealWaiter() *RealWaiter {
	return &RealWaiter{start: time.Now()}
}

// Now returns time elapsed since creation.
func (w *RealWaiter) Now() time.Duration {
	return time.Since(w.start)
}

// Wait blocks for d or until ctx is done.
func (w *RealWaiter) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// InstantWaiter advances a virtual clock instead of sleeping. Headless runs
// and tests use it to play thousands of frames without wall time passing.
type InstantWaiter struct {
	now time.Duration
}

// Now returns the virtual time.
func (w *InstantWaiter) Now() time.Duration {
	return w.now
}

// Wait advances the virtual clock by d.
func (w *InstantWaiter) Wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d > 0 {
		w.now += d
	}
	return nil
}

// Advance moves the virtual clock without waiting, simulating work time.
func (w *InstantWaiter) Advance(d time.Duration) {
	w.now += d
}
