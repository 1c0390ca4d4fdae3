package core

import "sync/atomic"

// Stats counts decoder outcomes. Counters are bumped from the edge path,
// so they are plain atomics and never block.
type Stats struct {
	dispatched    atomic.Uint64
	dropped       atomic.Uint64
	outOfRange    atomic.Uint64
	frameSyncs    atomic.Uint64
	lineSyncs     atomic.Uint64
	spans         atomic.Uint64
	rejectedSpans atomic.Uint64
}

// StatsSnapshot is a point-in-time copy of Stats
type StatsSnapshot struct {
	Dispatched    uint64 // Lines handed to the consumer
	Dropped       uint64 // Lines lost to a full channel
	OutOfRange    uint64 // Lines whose row was outside the frame
	FrameSyncs    uint64 // Long sync pulses
	LineSyncs     uint64 // Short sync pulses
	Spans         uint64 // LEVEL pulses that painted columns
	RejectedSpans uint64 // Falling edges with no usable rising edge
}

// Snapshot copies the counters
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Dispatched:    s.dispatched.Load(),
		Dropped:       s.dropped.Load(),
		OutOfRange:    s.outOfRange.Load(),
		FrameSyncs:    s.frameSyncs.Load(),
		LineSyncs:     s.lineSyncs.Load(),
		Spans:         s.spans.Load(),
		RejectedSpans: s.rejectedSpans.Load(),
	}
}
