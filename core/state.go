package core

import "sync/atomic"

// State is the timing state shared by the two edge callbacks.
// Each field has one writer per kind of update; every access is atomic.
type State struct {
	lineStart   atomic.Uint64 // Tick at the end of the last sync pulse
	pendingRise atomic.Uint32 // Column of the last LEVEL rising edge
	lastLow     atomic.Uint64 // Tick at the start of the current sync pulse
	lineNumber  atomic.Uint32 // Row within the current frame

	// Two preallocated buffers alternate so the edge path never allocates.
	// Only the sync callback touches spare.
	current atomic.Pointer[LineBuffer]
	spare   atomic.Pointer[LineBuffer]
	buffers [2]LineBuffer
}

// NewState returns zeroed state with no pending rising edge
func NewState() *State {
	s := &State{}
	s.pendingRise.Store(NoPendingEdge)
	s.current.Store(&s.buffers[0])
	s.spare.Store(&s.buffers[1])
	return s
}

// LineStart returns the reference tick for the line being decoded
func (s *State) LineStart() Tick {
	return s.lineStart.Load()
}

// LineNumber returns the current row counter
func (s *State) LineNumber() LineNumber {
	return s.lineNumber.Load()
}

// PendingRise returns the stored rising-edge column, or NoPendingEdge
func (s *State) PendingRise() PixelIndex {
	return s.pendingRise.Load()
}

// Peek snapshots the line being decoded without retiring it
func (s *State) Peek() Line {
	return s.current.Load().Snapshot()
}

// retireLine swaps in a cleared buffer and returns the completed line.
// A level callback still holding the old buffer may paint it after the
// snapshot; that paint is lost when the buffer is cleared for reuse.
func (s *State) retireLine() Line {
	next := s.spare.Load()
	next.Reset()
	done := s.current.Swap(next)
	line := done.Snapshot()
	s.spare.Store(done)
	return line
}
