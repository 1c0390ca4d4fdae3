package sim

import (
	"errors"
	"fmt"
	"sync"

	"syncscope/core"
)

var (
	ErrInUse     = errors.New("line already acquired")
	ErrClosed    = errors.New("line closed")
	ErrWatched   = errors.New("line already has an edge handler")
	ErrNoHandler = errors.New("line has no edge handler")
)

// Driver hands out mocked input lines
type Driver struct {
	mu    sync.Mutex
	lines map[core.GPIOPin]*Line
}

// NewDriver returns a driver with no lines acquired
func NewDriver() *Driver {
	return &Driver{lines: make(map[core.GPIOPin]*Line)}
}

// AcquireInput implements core.GPIODriver
func (d *Driver) AcquireInput(pin core.GPIOPin, pull core.Pull) (core.InputLine, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if l, exists := d.lines[pin]; exists && !l.isClosed() {
		return nil, fmt.Errorf("pin %d: %w", pin, ErrInUse)
	}
	l := &Line{pin: pin, pull: pull}
	d.lines[pin] = l
	return l, nil
}

// Line returns the line acquired on pin, or nil
func (d *Driver) Line(pin core.GPIOPin) *Line {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lines[pin]
}

// Line is a mocked input line. Emit calls the handler synchronously, the
// way an interrupt controller would invoke it.
type Line struct {
	mu      sync.Mutex
	pin     core.GPIOPin
	pull    core.Pull
	handler core.EdgeHandler
	closed  bool
	level   core.Level
}

// Pin returns the line offset
func (l *Line) Pin() core.GPIOPin { return l.pin }

// Pull returns the bias requested at acquisition
func (l *Line) Pull() core.Pull { return l.pull }

// Watch implements core.InputLine
func (l *Line) Watch(handler core.EdgeHandler) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	if l.handler != nil {
		return ErrWatched
	}
	l.handler = handler
	return nil
}

// Close implements core.InputLine
func (l *Line) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	l.closed = true
	l.handler = nil
	return nil
}

func (l *Line) isClosed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}

// Level returns the level of the last emitted edge
func (l *Line) Level() core.Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// Emit delivers an edge to the registered handler
func (l *Line) Emit(level core.Level, tick core.Tick) error {
	l.mu.Lock()
	handler := l.handler
	closed := l.closed
	l.level = level
	l.mu.Unlock()

	if closed {
		return ErrClosed
	}
	if handler == nil {
		return ErrNoHandler
	}
	handler(level, tick)
	return nil
}
