package core

import (
	"errors"
	"fmt"
)

var (
	ErrNoDriver = errors.New("no GPIO driver")
	ErrAttached = errors.New("decoder already attached")
)

// Pins names the two input lines feeding a decoder
type Pins struct {
	Sync  GPIOPin
	Level GPIOPin
	Pull  Pull
}

// Decoder is one SYNC/LEVEL decoding pipeline: the shared state, both
// edge handlers and the depth-1 hand-off channel.
type Decoder struct {
	State *State
	Level *LevelDecoder
	Sync  *SyncDecoder
	Stats *Stats

	frames chan FrameMessage
	lines  []InputLine
}

// NewDecoder builds an unattached pipeline measuring time with clock
func NewDecoder(clock TimeSource) *Decoder {
	state := NewState()
	stats := &Stats{}
	frames := make(chan FrameMessage, 1)
	return &Decoder{
		State:  state,
		Level:  NewLevelDecoder(state, clock, stats),
		Sync:   NewSyncDecoder(state, clock, stats, frames),
		Stats:  stats,
		frames: frames,
	}
}

// Frames returns the channel completed lines are delivered on
func (d *Decoder) Frames() <-chan FrameMessage {
	return d.frames
}

// Attach acquires both input lines and registers the edge handlers
func (d *Decoder) Attach(driver GPIODriver, pins Pins) error {
	if driver == nil {
		return ErrNoDriver
	}
	if len(d.lines) != 0 {
		return ErrAttached
	}

	syncLine, err := attachLine(driver, pins.Sync, pins.Pull, d.Sync.HandleEdge)
	if err != nil {
		return fmt.Errorf("sync pin %d: %w", pins.Sync, err)
	}
	levelLine, err := attachLine(driver, pins.Level, pins.Pull, d.Level.HandleEdge)
	if err != nil {
		_ = syncLine.Close()
		return fmt.Errorf("level pin %d: %w", pins.Level, err)
	}
	d.lines = []InputLine{syncLine, levelLine}

	Logger().Info("decoder attached", "sync", pins.Sync, "level", pins.Level, "pull", pins.Pull)
	return nil
}

func attachLine(driver GPIODriver, pin GPIOPin, pull Pull, handler EdgeHandler) (InputLine, error) {
	line, err := driver.AcquireInput(pin, pull)
	if err != nil {
		return nil, fmt.Errorf("acquire: %w", err)
	}
	if err := line.Watch(handler); err != nil {
		_ = line.Close()
		return nil, fmt.Errorf("watch: %w", err)
	}
	return line, nil
}

// Detach releases the input lines. The frame channel stays open.
func (d *Decoder) Detach() error {
	var errs []error
	for _, line := range d.lines {
		if err := line.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	d.lines = nil
	if len(errs) != 0 {
		return fmt.Errorf("detach: %w", errors.Join(errs...))
	}
	Logger().Info("decoder detached", "stats", d.Stats.Snapshot())
	return nil
}
