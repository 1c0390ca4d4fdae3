// Package render drains decoded lines into output sinks.
package render

import (
	"context"
	"errors"
	"fmt"

	"syncscope/core"
)

// Sink consumes completed lines
type Sink interface {
	WriteLine(msg core.FrameMessage) error
}

// Run receives from frames and writes each message to every sink until the
// channel is closed or ctx is cancelled. A sink error stops the loop.
func Run(ctx context.Context, frames <-chan core.FrameMessage, sinks ...Sink) error {
	if len(sinks) == 0 {
		return errors.New("render: no sinks")
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-frames:
			if !ok {
				return nil
			}
			for i, s := range sinks {
				if err := s.WriteLine(msg); err != nil {
					return fmt.Errorf("render: sink %d line %d: %w", i, msg.Line, err)
				}
			}
		}
	}
}
