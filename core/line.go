package core

import "sync/atomic"

const lineWords = (VisWidth + 63) / 64

// LineBuffer holds the lit columns of the line being decoded.
// All access goes through atomics so edge callbacks may paint it while the
// sync callback retires it.
type LineBuffer struct {
	words [lineWords]atomic.Uint64
}

// Fill marks columns [from, to) as lit. The range is clamped to the line
// width; an empty or inverted range is a no-op.
func (b *LineBuffer) Fill(from, to PixelIndex) bool {
	if to > VisWidth {
		to = VisWidth
	}
	if from >= to {
		return false
	}

	first, last := from/64, (to-1)/64
	for w := first; w <= last; w++ {
		lo, hi := uint32(0), uint32(64)
		if w == first {
			lo = from % 64
		}
		if w == last {
			hi = (to-1)%64 + 1
		}
		mask := ^uint64(0) << lo
		if hi < 64 {
			mask &= (uint64(1) << hi) - 1
		}
		orWord(&b.words[w], mask)
	}
	return true
}

// orWord sets bits with a compare-and-swap loop so no paint is lost when two
// spans touch the same word.
func orWord(w *atomic.Uint64, mask uint64) {
	for {
		old := w.Load()
		if old&mask == mask || w.CompareAndSwap(old, old|mask) {
			return
		}
	}
}

// Snapshot copies the buffer into an immutable Line
func (b *LineBuffer) Snapshot() Line {
	var l Line
	for i := range b.words {
		l[i] = b.words[i].Load()
	}
	return l
}

// Reset clears every column
func (b *LineBuffer) Reset() {
	for i := range b.words {
		b.words[i].Store(0)
	}
}

// Line is a completed raster line, one bit per column
type Line [lineWords]uint64

// Lit reports whether column col is lit. Columns outside the line are unlit.
func (l *Line) Lit(col int) bool {
	if col < 0 || col >= VisWidth {
		return false
	}
	return l[col/64]&(uint64(1)<<(col%64)) != 0
}

// Count returns the number of lit columns
func (l *Line) Count() int {
	n := 0
	for col := 0; col < VisWidth; col++ {
		if l.Lit(col) {
			n++
		}
	}
	return n
}

// Bools expands the line into one bool per column
func (l *Line) Bools() [VisWidth]bool {
	var out [VisWidth]bool
	for col := range out {
		out[col] = l.Lit(col)
	}
	return out
}
