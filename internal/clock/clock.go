// Package clock provides start/stop schedules for hosts that poll timers from
// their own frame loop instead of receiving timer callbacks.
package clock

import "time"

// Interval is a stoppable periodic schedule measured on a wall clock.
// Missed periods are coalesced: Due fires at most once per call.
type Interval struct {
	period  time.Duration
	now     func() time.Time
	running bool
	next    time.Time
}

// NewInterval creates a stopped interval. A nil now uses time.Now.
func NewInterval(period time.Duration, now func() time.Time) *Interval {
	if now == nil {
		now = time.Now
	}
	return &Interval{period: period, now: now}
}

// Start (re)arms the interval; the first firing is one period from now.
func (i *Interval) Start() {
	i.running = true
	i.next = i.now().Add(i.period)
}

// Stop disarms the interval. A stopped interval never fires.
func (i *Interval) Stop() {
	i.running = false
}

// Running reports whether the interval is armed.
func (i *Interval) Running() bool {
	return i.running
}

// Due reports whether at least one period has elapsed since the last firing
// and schedules the next one.
func (i *Interval) Due() bool {
	if !i.running {
		return false
	}
	now := i.now()
	if now.Before(i.next) {
		return false
	}
	for !now.Before(i.next) {
		i.next = i.next.Add(i.period)
	}
	return true
}

// Toggle is an on/off schedule for hosts whose frame loop already runs at the
// desired rate: every frame is due while it is on.
type Toggle struct {
	on bool
}

// Start turns the toggle on.
func (t *Toggle) Start() {
	t.on = true
}

// Stop turns the toggle off.
func (t *Toggle) Stop() {
	t.on = false
}

// Running reports whether the toggle is on.
func (t *Toggle) Running() bool {
	return t.on
}
