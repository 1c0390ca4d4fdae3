//go:build rp2040

package main

import (
	"context"
	"machine"
	"time"

	"syncscope/core"
	"syncscope/render"
)

// Board wiring: LEVEL on GP10, SYNC on GP11
const (
	levelPin = 10
	syncPin  = 11
)

func main() {
	// Give USB CDC time to enumerate before the first row
	time.Sleep(2 * time.Second)

	clock := hardwareClock{}
	dec := core.NewDecoder(clock)

	pins := core.Pins{Sync: syncPin, Level: levelPin}
	if err := dec.Attach(newIRQDriver(clock), pins); err != nil {
		halt("attach: " + err.Error())
	}

	sinks := []render.Sink{render.NewTerminalEOL(machine.Serial, "\r\n")}
	if dev, err := initDisplay(); err == nil {
		sinks = append(sinks, render.NewDisplay(dev))
	} else {
		println("display disabled:", err.Error())
	}

	if err := render.Run(context.Background(), dec.Frames(), sinks...); err != nil {
		halt("render: " + err.Error())
	}
}

// halt reports a fatal setup error and parks the core
func halt(msg string) {
	for {
		println(msg)
		time.Sleep(time.Second)
	}
}
