// internal/sched/tickclock.go

package sched

// Clock is the simulated time source of one scheduling run.
// Time only moves forward; jumps over empty stretches are counted as idle.
type Clock struct {
	now  int64
	idle int64
}

// NewClock creates a clock positioned at start.
func NewClock(start int64) *Clock {
	return &Clock{now: start}
}

// Now returns the current tick.
func (c *Clock) Now() int64 { return c.now }

// Advance moves the clock forward by d busy ticks and returns the new tick.
func (c *Clock) Advance(d int64) int64 {
	if d > 0 {
		c.now += d
	}
	return c.now
}

// JumpTo moves the clock forward to t and returns the idle gap it covered.
// Jumping to the past is a no-op.
func (c *Clock) JumpTo(t int64) int64 {
	if t <= c.now {
		return 0
	}
	gap := t - c.now
	c.now = t
	c.idle += gap
	return gap
}

// Idle returns the total number of idle ticks so far.
func (c *Clock) Idle() int64 { return c.idle }
