//go:build !linux

package gpio

import (
	"time"

	"syncscope/core"
)

var epoch = time.Now()

// MonotonicClock counts time since process start, reported in BitRate ticks
type MonotonicClock struct{}

// Ticks implements core.TimeSource
func (MonotonicClock) Ticks() core.Tick {
	return fromNanos(uint64(time.Since(epoch)))
}

// Frequency implements core.TimeSource
func (MonotonicClock) Frequency() core.Frequency {
	return core.BitRate
}

func monotonicNanos() (uint64, error) {
	return uint64(time.Since(epoch)), nil
}
