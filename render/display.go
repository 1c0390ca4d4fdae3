package render

import (
	"image/color"

	"tinygo.org/x/drivers"

	"syncscope/core"
)

var (
	On  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Off = color.RGBA{A: 255}
)

// Display scales the raster onto a small pixel display. A display pixel is
// lit when any source column or row mapped onto it is lit. A frame is
// flushed when the row number goes backwards.
type Display struct {
	dev    drivers.Displayer
	width  int16
	height int16

	lastLine core.LineNumber
	started  bool
}

// NewDisplay draws onto dev, which is cleared first
func NewDisplay(dev drivers.Displayer) *Display {
	w, h := dev.Size()
	d := &Display{dev: dev, width: w, height: h}
	d.clear()
	return d
}

// WriteLine implements Sink
func (d *Display) WriteLine(msg core.FrameMessage) error {
	if d.started && msg.Line < d.lastLine {
		if err := d.Flush(); err != nil {
			return err
		}
	}
	d.started = true
	d.lastLine = msg.Line

	if d.width <= 0 || d.height <= 0 {
		return nil
	}
	y := int16(int(msg.Line) * int(d.height) / core.LineCount)
	for x := int16(0); x < d.width; x++ {
		from := int(x) * core.VisWidth / int(d.width)
		to := (int(x) + 1) * core.VisWidth / int(d.width)
		for col := from; col < to; col++ {
			if msg.Pixels.Lit(col) {
				d.dev.SetPixel(x, y, On)
				break
			}
		}
	}
	return nil
}

// Flush pushes the accumulated frame to the device and starts a new one
func (d *Display) Flush() error {
	if err := d.dev.Display(); err != nil {
		return err
	}
	d.clear()
	return nil
}

func (d *Display) clear() {
	for y := int16(0); y < d.height; y++ {
		for x := int16(0); x < d.width; x++ {
			d.dev.SetPixel(x, y, Off)
		}
	}
}
