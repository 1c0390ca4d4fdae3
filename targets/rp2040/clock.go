//go:build rp2040

package main

import (
	"runtime/volatile"
	"unsafe"

	"syncscope/core"
)

// RP2040 Timer peripheral memory map
const (
	timerBase     = 0x40054000
	timerTIMERAWH = timerBase + 0x24 // Raw timer high word
	timerTIMERAWL = timerBase + 0x28 // Raw timer low word

	timerFreq = 1000000 // The timer counts microseconds
)

var (
	timerRAWH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWH)))
	timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
)

// hardwareClock reads the 64-bit RP2040 microsecond timer and reports it in
// BitRate ticks. The timer only advances once per microsecond, so spans
// still land on a grid of about 19 columns.
type hardwareClock struct{}

// Ticks implements core.TimeSource
func (hardwareClock) Ticks() core.Tick {
	return core.ScaleToBitRate(readTimer(), timerFreq)
}

// Frequency implements core.TimeSource
func (hardwareClock) Frequency() core.Frequency {
	return core.BitRate
}

func readTimer() uint64 {
	// Must read high first, then low, then high again to detect rollover
	for {
		high1 := timerRAWH.Get()
		low := timerRAWL.Get()
		high2 := timerRAWH.Get()

		// If high didn't change, we got a consistent reading
		if high1 == high2 {
			return (uint64(high1) << 32) | uint64(low)
		}
	}
}
