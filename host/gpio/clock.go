package gpio

import "syncscope/core"

const nanosPerSecond = 1000000000

// fromNanos converts a nanosecond timestamp into BitRate ticks. Edge event
// timestamps and MonotonicClock share this conversion so they stay on one
// time base.
func fromNanos(ns uint64) core.Tick {
	return core.ScaleToBitRate(ns, nanosPerSecond)
}
