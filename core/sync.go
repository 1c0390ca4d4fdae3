// SYNC line decoding
// Classifies sync pulses as line or frame boundaries and dispatches
// completed lines to the consumer.
package core

// FrameMessage is a completed line and its row in the frame
type FrameMessage struct {
	Line   LineNumber
	Pixels Line
}

// SyncDecoder handles edges on the SYNC line.
// It runs in interrupt context: it never blocks, allocates or logs.
type SyncDecoder struct {
	state *State
	clock TimeSource
	stats *Stats
	out   chan<- FrameMessage
}

// NewSyncDecoder binds a decoder to shared state, a time source and the
// hand-off channel
func NewSyncDecoder(state *State, clock TimeSource, stats *Stats, out chan<- FrameMessage) *SyncDecoder {
	if stats == nil {
		stats = &Stats{}
	}
	return &SyncDecoder{state: state, clock: clock, stats: stats, out: out}
}

// IsLineSync reports whether a pulse from lastLow to tick is short enough
// to be a line boundary. A pulse of exactly the threshold is a frame sync.
func IsLineSync(lastLow, tick Tick, freq Frequency) bool {
	return lastLow+TicksFromUS(TimeBetweenLowTypes, freq) > tick
}

// HandleEdge processes one SYNC transition observed at tick
func (d *SyncDecoder) HandleEdge(level Level, tick Tick) {
	if level == Low {
		d.state.lastLow.Store(tick)
		return
	}

	// Trailing edge: the next line is measured from here
	d.state.lineStart.Store(tick)

	var line LineNumber
	if IsLineSync(d.state.lastLow.Load(), tick, d.clock.Frequency()) {
		// New line: the dispatched buffer takes the incremented row
		line = d.state.lineNumber.Add(1)
		d.stats.lineSyncs.Add(1)
	} else {
		// New frame: the dispatched buffer keeps the row it ended on
		line = d.state.lineNumber.Swap(0)
		d.stats.frameSyncs.Add(1)
	}

	pixels := d.state.retireLine()
	if line >= LineCount {
		d.stats.outOfRange.Add(1)
		return
	}

	select {
	case d.out <- FrameMessage{Line: line, Pixels: pixels}:
		d.stats.dispatched.Add(1)
	default:
		d.stats.dropped.Add(1)
	}
}

// Sample handles an edge using the current counter value
func (d *SyncDecoder) Sample(level Level) {
	d.HandleEdge(level, d.clock.Ticks())
}
