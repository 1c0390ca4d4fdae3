// Package gpio drives the decoder from Linux GPIO character devices.
package gpio

import (
	"fmt"
	"sync"

	"syncscope/core"
)

// Config selects the chip lines are requested from
type Config struct {
	// Chip name or path, e.g. "gpiochip0"
	Chip string

	// Consumer label shown by gpioinfo
	Consumer string
}

// DefaultConfig returns the configuration for the first GPIO chip
func DefaultConfig() *Config {
	return &Config{
		Chip:     "gpiochip0",
		Consumer: "syncscope",
	}
}

// Driver implements core.GPIODriver on a GPIO chip
type Driver struct {
	cfg *Config

	mu    sync.Mutex
	lines map[core.GPIOPin]*Line
}

// NewDriver returns a driver for cfg.Chip
func NewDriver(cfg *Config) (*Driver, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.Chip == "" {
		return nil, fmt.Errorf("chip name cannot be empty")
	}
	if _, err := probeClock(); err != nil {
		core.Logger().Warn("monotonic clock unreadable, edges will paint nothing", "err", err)
	}
	return &Driver{cfg: cfg, lines: make(map[core.GPIOPin]*Line)}, nil
}

// probeClock is checked once per driver so a broken clock shows up in the log
var probeClock = monotonicNanos

// AcquireInput implements core.GPIODriver. The line is requested lazily by
// Watch, since the kernel needs the event handler at request time.
func (d *Driver) AcquireInput(pin core.GPIOPin, pull core.Pull) (core.InputLine, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.lines[pin]; exists {
		return nil, fmt.Errorf("%s line %d already acquired", d.cfg.Chip, pin)
	}
	l := &Line{driver: d, pin: pin, pull: pull}
	d.lines[pin] = l
	return l, nil
}

func (d *Driver) release(pin core.GPIOPin) {
	d.mu.Lock()
	delete(d.lines, pin)
	d.mu.Unlock()
}
