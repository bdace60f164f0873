// Package engine is the presentation engine the scenes run on: a virtual
// clock for deferred and repeating callbacks, tweens, pointer/drag dispatch,
// and a small arcade physics step. Everything is driven by explicit Advance
// and Dispatch calls from the platform loop, so it runs on a single goroutine
// and is fully deterministic under test.
package engine

import "time"

// Timer is a deferred or repeating callback scheduled on a Clock.
type Timer struct {
	due      time.Duration
	interval time.Duration // 0 for one-shot timers
	seq      uint64
	fn       func()
	stopped  bool
}

// Stop cancels the timer. A stopped timer never fires again.
func (t *Timer) Stop() {
	t.stopped = true
}

// Stopped reports whether the timer was cancelled or has already fired (one-shot).
func (t *Timer) Stopped() bool {
	return t.stopped
}

// Clock is a virtual clock. Time only moves when Advance is called.
type Clock struct {
	now    time.Duration
	seq    uint64
	timers []*Timer
}

// NewClock creates a clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the elapsed virtual time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// After schedules fn to run once, d after the current time.
func (c *Clock) After(d time.Duration, fn func()) *Timer {
	return c.schedule(d, 0, fn)
}

// Every schedules fn to run every d. Non-positive intervals are clamped
// to one millisecond so Advance always terminates.
func (c *Clock) Every(d time.Duration, fn func()) *Timer {
	if d <= 0 {
		d = time.Millisecond
	}
	return c.schedule(d, d, fn)
}

func (c *Clock) schedule(d, interval time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &Timer{due: c.now + d, interval: interval, seq: c.seq, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward by dt, firing due timers in (due, schedule) order.
// Timers scheduled by a callback fire in the same Advance if they fall due.
func (c *Clock) Advance(dt time.Duration) {
	target := c.now + dt
	for {
		next := c.nextDue(target)
		if next == nil {
			break
		}
		c.now = next.due
		if next.interval > 0 {
			next.due += next.interval
		} else {
			next.stopped = true
		}
		next.fn()
	}
	c.now = target
	c.compact()
}

// nextDue returns the earliest live timer due at or before target.
func (c *Clock) nextDue(target time.Duration) *Timer {
	var best *Timer
	for _, t := range c.timers {
		if t.stopped || t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (c *Clock) compact() {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(c.timers); i++ {
		c.timers[i] = nil
	}
	c.timers = live
}

// Pending returns the number of live timers.
func (c *Clock) Pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// StopAll cancels every timer on the clock.
func (c *Clock) StopAll() {
	for _, t := range c.timers {
		t.stopped = true
	}
	c.timers = nil
}
