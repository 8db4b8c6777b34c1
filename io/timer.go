package io

import (
	"time"
)

const (
	TIMER_PERIOD = time.Second // Default period of a WallTimer.
)

// WallTimer fires once per period of wall clock time.
// It is polled, never asynchronous.
type WallTimer struct {
	Period time.Duration    // Period, or TIMER_PERIOD if zero.
	Now    func() time.Time // Clock source, or time.Now if nil.

	start time.Time
}

var _ Timer = (*WallTimer)(nil)

func (wt *WallTimer) now() time.Time {
	if wt.Now == nil {
		return time.Now()
	}
	return wt.Now()
}

func (wt *WallTimer) period() time.Duration {
	if wt.Period <= 0 {
		return TIMER_PERIOD
	}
	return wt.Period
}

// Rewind restarts the period from now.
func (wt *WallTimer) Rewind() {
	wt.start = wt.now()
}

// Poll returns true, and restarts the period, if a full period has
// elapsed since the last rewind or firing.
func (wt *WallTimer) Poll() bool {
	now := wt.now()
	if wt.start.IsZero() {
		wt.start = now
		return false
	}

	if now.Sub(wt.start) < wt.period() {
		return false
	}

	wt.start = now
	return true
}
