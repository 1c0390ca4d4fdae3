// Package sim provides a virtual time source and mocked input lines so edge
// sequences can be replayed without hardware.
package sim

import (
	"sync/atomic"

	"syncscope/core"
)

// Clock is a manually driven counter
type Clock struct {
	ticks atomic.Uint64
	freq  core.Frequency
}

// NewClock returns a clock counting at freq ticks per second
func NewClock(freq core.Frequency) *Clock {
	return &Clock{freq: freq}
}

// Ticks implements core.TimeSource
func (c *Clock) Ticks() core.Tick {
	return c.ticks.Load()
}

// Frequency implements core.TimeSource
func (c *Clock) Frequency() core.Frequency {
	return c.freq
}

// Set moves the clock to tick
func (c *Clock) Set(tick core.Tick) {
	c.ticks.Store(tick)
}

// Advance moves the clock forward by n ticks and returns the new value
func (c *Clock) Advance(n core.Tick) core.Tick {
	return c.ticks.Add(n)
}
