// Package serial mirrors rendered rows to a serial console.
//
// The mirror only writes: the console is a display, and nothing it sends
// back is read.
package serial

import (
	"errors"
	"fmt"
)

// EOL is the line terminator serial terminals expect
const EOL = "\r\n"

// Config selects the console rows are mirrored to. Frames are always 8N1.
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "/dev/serial0")
	Device string

	// Baud rate of the console
	Baud int
}

// DefaultConfig returns a configuration for a typical serial console
func DefaultConfig(device string) *Config {
	return &Config{
		Device: device,
		Baud:   115200,
	}
}

// supportedBauds are the standard console rates
var supportedBauds = map[int]bool{
	9600:   true,
	19200:  true,
	38400:  true,
	57600:  true,
	115200: true,
	230400: true,
	460800: true,
	921600: true,
}

// Validate reports a configuration Open would reject
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config cannot be nil")
	}
	if c.Device == "" {
		return errors.New("device cannot be empty")
	}
	if !supportedBauds[c.Baud] {
		return fmt.Errorf("unsupported baud rate %d", c.Baud)
	}
	return nil
}
