package core

import "math/bits"

// TimeSource is a free-running hardware counter
type TimeSource interface {
	// Ticks returns the current counter value
	Ticks() Tick

	// Frequency returns the counter rate in ticks per second
	Frequency() Frequency
}

// PixelAt converts ticks elapsed since the line start into a column:
// round(diff * freq / BitRate). The product is computed in 128 bits;
// results that do not fit saturate, which lands past the end of any line.
func PixelAt(diff Tick, freq Frequency) PixelIndex {
	hi, lo := bits.Mul64(diff, freq)
	lo, carry := bits.Add64(lo, BitRate/2, 0)
	hi += carry
	if hi >= BitRate {
		return ^PixelIndex(0)
	}
	q, _ := bits.Div64(hi, lo, BitRate)
	if q > uint64(^PixelIndex(0)) {
		return ^PixelIndex(0)
	}
	return PixelIndex(q)
}

// TicksFromUS converts microseconds to counter ticks
func TicksFromUS(us uint64, freq Frequency) Tick {
	return freq * us / usConvFactor
}

// TicksForPixel returns the smallest tick offset that PixelAt maps to col
// or beyond. Counters faster than BitRate skip columns.
func TicksForPixel(col PixelIndex, freq Frequency) Tick {
	// Invert (d*freq + BitRate/2) / BitRate >= col
	if col == 0 || freq == 0 {
		return 0
	}
	target := uint64(col)*BitRate - BitRate/2
	return (target + freq - 1) / freq
}

// ScaleToBitRate re-expresses a count of a freq counter in BitRate ticks,
// rounding down. Clocks whose hardware rate differs from BitRate report
// scaled ticks so PixelAt maps one tick to one column.
func ScaleToBitRate(ticks Tick, freq Frequency) Tick {
	if freq == 0 {
		return 0
	}
	hi, lo := bits.Mul64(ticks, BitRate)
	if hi >= freq {
		return ^Tick(0)
	}
	q, _ := bits.Div64(hi, lo, freq)
	return q
}
