package sim

import (
	"syncscope/core"
)

// Source selects which input an event is delivered to
type Source uint8

const (
	SyncSource Source = iota
	LevelSource
)

// Event is one edge on one input
type Event struct {
	Source Source
	Level  core.Level
	Tick   core.Tick
}

// Signal describes the timing of a generated raster
type Signal struct {
	Frequency   core.Frequency // Counter rate the ticks are expressed in
	TotalLines  int            // Lines per frame including blanking
	LineSyncUS  uint64         // Width of a line sync pulse
	FrameSyncUS uint64         // Width of a frame sync pulse
}

// DefaultSignal returns timing a decoder accepts at freq. Above BitRate a
// tick covers more than one column, so run edges snap to the next reachable
// column.
func DefaultSignal(freq core.Frequency) Signal {
	return Signal{
		Frequency:   freq,
		TotalLines:  core.LineCount + 12,
		LineSyncUS:  5,
		FrameSyncUS: 1000,
	}
}

// LinePeriod returns the length of one raster line in ticks
func (s Signal) LinePeriod() core.Tick {
	return core.TicksForPixel(core.LineWidth, s.Frequency)
}

// Frame generates the edges of one frame of p starting at tick start.
//
// The frame opens with a frame sync. Segment k (k >= 1) is painted after
// the k-th sync trailing edge and closed by a line sync, so the decoder
// numbers it k; pattern row k is drawn there. Segments at or past
// LineCount are blanking. The returned tick is where the next frame starts.
func (s Signal) Frame(p Pattern, start core.Tick) ([]Event, core.Tick) {
	freq := s.Frequency
	lineSync := core.TicksFromUS(s.LineSyncUS, freq)
	frameSync := core.TicksFromUS(s.FrameSyncUS, freq)
	period := s.LinePeriod()

	var events []Event
	t := start
	events = append(events,
		Event{Source: SyncSource, Level: core.Low, Tick: t},
		Event{Source: SyncSource, Level: core.High, Tick: t + frameSync},
	)
	t += frameSync

	for k := 1; k < s.TotalLines; k++ {
		if k < core.LineCount && p != nil {
			for _, run := range Runs(p, k) {
				events = append(events,
					Event{Source: LevelSource, Level: core.High, Tick: t + core.TicksForPixel(core.PixelIndex(run[0]), freq)},
					Event{Source: LevelSource, Level: core.Low, Tick: t + core.TicksForPixel(core.PixelIndex(run[1]), freq)},
				)
			}
		}
		end := t + period
		events = append(events,
			Event{Source: SyncSource, Level: core.Low, Tick: end - lineSync},
			Event{Source: SyncSource, Level: core.High, Tick: end},
		)
		t = end
	}
	// Last segment stays blank and is closed by the next frame's sync
	return events, t + period
}
