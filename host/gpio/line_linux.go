//go:build linux

package gpio

import (
	"errors"
	"fmt"
	"sync"

	"github.com/warthog618/go-gpiocdev"

	"syncscope/core"
)

// Line is a requested input with both-edge detection
type Line struct {
	driver *Driver
	pin    core.GPIOPin
	pull   core.Pull

	mu  sync.Mutex
	req *gpiocdev.Line
}

// Watch requests the line from the kernel with the handler attached.
// Event timestamps come from CLOCK_MONOTONIC, the same clock
// MonotonicClock reads, and both are scaled to BitRate ticks.
func (l *Line) Watch(handler core.EdgeHandler) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.req != nil {
		return errors.New("line already watched")
	}

	opts := []gpiocdev.LineReqOption{
		gpiocdev.AsInput,
		gpiocdev.WithConsumer(l.driver.cfg.Consumer),
		gpiocdev.WithBothEdges,
		gpiocdev.WithMonotonicEventClock,
		gpiocdev.WithEventHandler(func(evt gpiocdev.LineEvent) {
			handler(evt.Type == gpiocdev.LineEventRisingEdge, fromNanos(uint64(evt.Timestamp)))
		}),
	}
	switch l.pull {
	case core.PullUp:
		opts = append(opts, gpiocdev.WithPullUp)
	case core.PullDown:
		opts = append(opts, gpiocdev.WithPullDown)
	}

	req, err := gpiocdev.RequestLine(l.driver.cfg.Chip, int(l.pin), opts...)
	if err != nil {
		return fmt.Errorf("request %s line %d: %w", l.driver.cfg.Chip, l.pin, err)
	}
	l.req = req
	core.Logger().Debug("line requested", "chip", l.driver.cfg.Chip, "pin", l.pin, "pull", l.pull)
	return nil
}

// Close releases the line
func (l *Line) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	defer l.driver.release(l.pin)

	if l.req == nil {
		return nil
	}
	err := l.req.Close()
	l.req = nil
	return err
}
