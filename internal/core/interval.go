package core

import "time"

// Interval converts fixed simulation steps into firings of a slower periodic
// timer (e.g. a 150ms snake move driven by 60 steps per second).
type Interval struct {
	period  time.Duration
	elapsed time.Duration
}

// NewInterval creates a timer with the given period. Non-positive periods
// are treated as one millisecond.
func NewInterval(period time.Duration) Interval {
	if period <= 0 {
		period = time.Millisecond
	}
	return Interval{period: period}
}

// Period returns the current firing period.
func (iv Interval) Period() time.Duration {
	return iv.period
}

// SetPeriod changes the period, keeping accumulated time.
func (iv *Interval) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = time.Millisecond
	}
	iv.period = period
}

// Advance adds dt to the timer and returns how many times it fired.
func (iv *Interval) Advance(dt time.Duration) int {
	if iv.period <= 0 {
		iv.period = time.Millisecond
	}
	iv.elapsed += dt
	fired := int(iv.elapsed / iv.period)
	iv.elapsed -= time.Duration(fired) * iv.period
	return fired
}

// Reset discards accumulated time.
func (iv *Interval) Reset() {
	iv.elapsed = 0
}
