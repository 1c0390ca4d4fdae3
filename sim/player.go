package sim

import (
	"context"
	"fmt"
	"time"

	"syncscope/core"
)

// Player replays a timeline through mocked lines, moving the clock to each
// event's tick before delivering it.
type Player struct {
	Clock *Clock
	Sync  *Line
	Level *Line

	// Pace, when non-zero, is slept after every sync trailing edge so the
	// consumer can keep up with a live stream.
	Pace time.Duration
}

// NewPlayer wires a player to the lines a decoder acquired from driver
func NewPlayer(clock *Clock, driver *Driver, pins core.Pins) (*Player, error) {
	syncLine := driver.Line(pins.Sync)
	levelLine := driver.Line(pins.Level)
	if syncLine == nil || levelLine == nil {
		return nil, fmt.Errorf("pins %d/%d not acquired", pins.Sync, pins.Level)
	}
	return &Player{Clock: clock, Sync: syncLine, Level: levelLine}, nil
}

// Play delivers events in order. It returns ctx.Err() if cancelled.
func (p *Player) Play(ctx context.Context, events []Event) error {
	for _, ev := range events {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.Clock.Set(ev.Tick)

		line := p.Level
		if ev.Source == SyncSource {
			line = p.Sync
		}
		if err := line.Emit(ev.Level, ev.Tick); err != nil {
			return fmt.Errorf("pin %d: %w", line.Pin(), err)
		}

		if p.Pace > 0 && ev.Source == SyncSource && ev.Level == core.High {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.Pace):
			}
		}
	}
	return nil
}

// Loop plays frames of pattern back to back. frames <= 0 repeats until ctx
// is cancelled.
func (p *Player) Loop(ctx context.Context, signal Signal, pattern Pattern, frames int) error {
	start := p.Clock.Ticks()
	for n := 0; frames <= 0 || n < frames; n++ {
		events, next := signal.Frame(pattern, start)
		if err := p.Play(ctx, events); err != nil {
			return err
		}
		start = next
	}
	return nil
}
