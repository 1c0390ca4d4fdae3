//go:build !linux

package gpio

import (
	"errors"

	"syncscope/core"
)

var errUnsupported = errors.New("GPIO character devices need linux")

// Line is unavailable off Linux
type Line struct {
	driver *Driver
	pin    core.GPIOPin
	pull   core.Pull
}

// Watch always fails off Linux
func (l *Line) Watch(handler core.EdgeHandler) error {
	return errUnsupported
}

// Close releases the pin reservation
func (l *Line) Close() error {
	l.driver.release(l.pin)
	return nil
}
