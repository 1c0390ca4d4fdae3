package serial

import (
	"fmt"
	"io"

	"github.com/tarm/serial"

	"syncscope/core"
	"syncscope/render"
)

// openPort is replaced in tests
var openPort = func(c *serial.Config) (io.WriteCloser, error) {
	return serial.OpenPort(c)
}

// Mirror is a render.Sink writing CRLF-terminated rows to a serial port
type Mirror struct {
	device string
	port   io.WriteCloser
	term   *render.Terminal
}

// Open validates cfg and opens the port
func Open(cfg *Config) (*Mirror, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("serial mirror: %w", err)
	}

	port, err := openPort(&serial.Config{
		Name:     cfg.Device,
		Baud:     cfg.Baud,
		Size:     8,
		Parity:   serial.ParityNone,
		StopBits: serial.Stop1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}
	core.Logger().Info("serial mirror open", "device", cfg.Device, "baud", cfg.Baud)

	return NewMirror(cfg.Device, port), nil
}

// NewMirror mirrors rows to an already open port
func NewMirror(device string, port io.WriteCloser) *Mirror {
	return &Mirror{
		device: device,
		port:   port,
		term:   render.NewTerminalEOL(port, EOL),
	}
}

// WriteLine implements render.Sink
func (m *Mirror) WriteLine(msg core.FrameMessage) error {
	if err := m.term.WriteLine(msg); err != nil {
		return fmt.Errorf("serial %s: %w", m.device, err)
	}
	return nil
}

// Close closes the port
func (m *Mirror) Close() error {
	if m.port == nil {
		return nil
	}
	err := m.port.Close()
	m.port = nil
	return err
}
