//go:build rp2040

package main

import (
	"errors"
	"machine"

	"syncscope/core"
)

// irqDriver implements core.GPIODriver with pin-change interrupts
type irqDriver struct {
	clock core.TimeSource

	// Track configured pins to prevent conflicts
	configuredPins map[core.GPIOPin]bool
}

func newIRQDriver(clock core.TimeSource) *irqDriver {
	return &irqDriver{
		clock:          clock,
		configuredPins: make(map[core.GPIOPin]bool),
	}
}

// AcquireInput configures the pin as an input with the requested bias
func (d *irqDriver) AcquireInput(pin core.GPIOPin, pull core.Pull) (core.InputLine, error) {
	if d.configuredPins[pin] {
		return nil, errors.New("pin already configured")
	}

	mode := machine.PinInput
	switch pull {
	case core.PullUp:
		mode = machine.PinInputPullup
	case core.PullDown:
		mode = machine.PinInputPulldown
	}

	// For RP2040, pins map directly to GPIO numbers
	machinePin := machine.Pin(pin)
	machinePin.Configure(machine.PinConfig{Mode: mode})
	d.configuredPins[pin] = true

	return &irqLine{driver: d, pin: machinePin, id: pin}, nil
}

// irqLine delivers both edges of one pin from interrupt context
type irqLine struct {
	driver *irqDriver
	pin    machine.Pin
	id     core.GPIOPin
}

// Watch installs handler as the pin-change interrupt
func (l *irqLine) Watch(handler core.EdgeHandler) error {
	clock := l.driver.clock
	return l.pin.SetInterrupt(machine.PinToggle, func(p machine.Pin) {
		// Sample the counter before anything else
		tick := clock.Ticks()
		handler(core.Level(p.Get()), tick)
	})
}

// Close removes the interrupt handler
func (l *irqLine) Close() error {
	delete(l.driver.configuredPins, l.id)
	return l.pin.SetInterrupt(0, nil)
}
