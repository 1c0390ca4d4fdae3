//go:build linux

package gpio

import (
	"golang.org/x/sys/unix"

	"syncscope/core"
)

// MonotonicClock reads CLOCK_MONOTONIC, reported in BitRate ticks
type MonotonicClock struct{}

// Ticks implements core.TimeSource
func (MonotonicClock) Ticks() core.Tick {
	ns, err := monotonicNanos()
	if err != nil {
		return 0
	}
	return fromNanos(ns)
}

// Frequency implements core.TimeSource
func (MonotonicClock) Frequency() core.Frequency {
	return core.BitRate
}

func monotonicNanos() (uint64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0, err
	}
	return uint64(ts.Nano()), nil
}
