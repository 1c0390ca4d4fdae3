// Raster geometry and sync timing
// The decoder is tuned at compile time; only platform wiring is configurable.
package core

const (
	VisWidth  = 1180 // Columns in a rendered line
	LineWidth = 1280 // Nominal pixel slots per raster line, used only for BitRate
	LineCount = 300  // Valid rows per frame
	Hertz     = 50   // Nominal frame rate

	// BitRate is the pixel rate across the whole raster
	BitRate = Hertz * LineWidth * LineCount

	// TimeBetweenLowTypes separates line sync from frame sync, in microseconds.
	// 1 row blank ~ 5us, 1 frame blank ~ 1000us
	TimeBetweenLowTypes = 100

	usConvFactor = 1000000

	// NoPendingEdge marks the rising-edge slot as empty. It compares as
	// already past the end of the line, so a lone falling edge paints nothing.
	NoPendingEdge PixelIndex = VisWidth
)

// Tick is a hardware counter sample
type Tick = uint64

// Frequency is the counter rate in ticks per second
type Frequency = uint64

// PixelIndex is a column within the current line
type PixelIndex = uint32

// LineNumber is a row within the current frame
type LineNumber = uint32

// Level is the logic level a line changed to
type Level bool

const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l {
		return "high"
	}
	return "low"
}
