// LEVEL line decoding
// Converts edge ticks into columns and paints lit runs into the line buffer.
package core

// LevelDecoder handles edges on the LEVEL line.
// It runs in interrupt context: it never blocks, allocates or logs.
type LevelDecoder struct {
	state *State
	clock TimeSource
	stats *Stats
}

// NewLevelDecoder binds a decoder to shared state and a time source
func NewLevelDecoder(state *State, clock TimeSource, stats *Stats) *LevelDecoder {
	if stats == nil {
		stats = &Stats{}
	}
	return &LevelDecoder{state: state, clock: clock, stats: stats}
}

// Index converts tick into a column of the current line
func (d *LevelDecoder) Index(tick Tick) PixelIndex {
	start := d.state.lineStart.Load()
	if tick < start {
		// Edge from before the current line, delivered late
		return ^PixelIndex(0)
	}
	return PixelAt(tick-start, d.clock.Frequency())
}

// HandleEdge processes one LEVEL transition observed at tick
func (d *LevelDecoder) HandleEdge(level Level, tick Tick) {
	index := d.Index(tick)

	if level == High {
		// Only the most recent rising edge matters
		d.state.pendingRise.Store(index)
		return
	}

	rise := d.state.pendingRise.Swap(NoPendingEdge)
	if index < rise {
		d.stats.rejectedSpans.Add(1)
		return
	}
	if d.state.current.Load().Fill(rise, index) {
		d.stats.spans.Add(1)
	} else {
		d.stats.rejectedSpans.Add(1)
	}
}

// Sample handles an edge using the current counter value
func (d *LevelDecoder) Sample(level Level) {
	d.HandleEdge(level, d.clock.Ticks())
}
