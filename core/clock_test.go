package core

import (
	"math"
	"testing"
)

// fixedClock is a TimeSource with a settable tick
type fixedClock struct {
	tick Tick
	freq Frequency
}

func (c *fixedClock) Ticks() Tick          { return c.tick }
func (c *fixedClock) Frequency() Frequency { return c.freq }

func TestPixelAtIdentityAtBitRate(t *testing.T) {
	for _, diff := range []Tick{0, 1, 10, 19, 1179, 1180, 123456} {
		if got := PixelAt(diff, BitRate); got != PixelIndex(diff) {
			t.Errorf("PixelAt(%d, BitRate) = %d, want %d", diff, got, diff)
		}
	}
}

func TestPixelAtRounds(t *testing.T) {
	// Two ticks per column: odd ticks sit on a half and round up
	freq := Frequency(BitRate / 2)
	cases := map[Tick]PixelIndex{0: 0, 1: 1, 2: 1, 3: 2, 4: 2, 5: 3}
	for diff, want := range cases {
		if got := PixelAt(diff, freq); got != want {
			t.Errorf("PixelAt(%d, BitRate/2) = %d, want %d", diff, got, want)
		}
	}
}

func TestPixelAtScalesByFrequency(t *testing.T) {
	cases := []struct {
		freq Frequency
		want PixelIndex
	}{
		{1000000, 52},
		{19200000, 1000},
		{54000000, 2813},
		{1000000000, 52083},
	}
	for _, c := range cases {
		if got := PixelAt(1000, c.freq); got != c.want {
			t.Errorf("PixelAt(1000, %d) = %d, want %d", c.freq, got, c.want)
		}
	}
}

func TestPixelAtMonotonic(t *testing.T) {
	for _, freq := range []Frequency{1000000, 19200000, 54000000, 1000000000} {
		prev := PixelAt(0, freq)
		for diff := Tick(1); diff < 200000; diff += 7 {
			got := PixelAt(diff, freq)
			if got < prev {
				t.Fatalf("freq %d: PixelAt(%d) = %d < %d", freq, diff, got, prev)
			}
			prev = got
		}
	}
}

func TestPixelAtSaturates(t *testing.T) {
	if got := PixelAt(math.MaxUint64, 1000000000); got != math.MaxUint32 {
		t.Errorf("PixelAt(max) = %d, want saturation", got)
	}
	if got := PixelAt(100, 0); got != 0 {
		t.Errorf("PixelAt with zero frequency = %d, want 0", got)
	}
	// One second at BitRate, large but representable
	if got := PixelAt(BitRate, BitRate); got != BitRate {
		t.Errorf("PixelAt(1s) = %d, want %d", got, BitRate)
	}
}

func TestTicksForPixelInvertsPixelAt(t *testing.T) {
	for _, freq := range []Frequency{1000000, BitRate / 4, BitRate, 54000000, 1000000000} {
		for col := PixelIndex(0); col <= VisWidth; col++ {
			d := TicksForPixel(col, freq)
			got := PixelAt(d, freq)
			if got < col || (freq <= BitRate && got != col) {
				t.Fatalf("freq %d: PixelAt(TicksForPixel(%d)) = %d", freq, col, got)
			}
			if d > 0 && PixelAt(d-1, freq) >= col {
				t.Fatalf("freq %d: TicksForPixel(%d) = %d is not the first tick", freq, col, d)
			}
		}
	}
}

func TestScaleToBitRate(t *testing.T) {
	cases := []struct {
		ticks Tick
		freq  Frequency
		want  Tick
	}{
		{1000000000, 1000000000, BitRate},
		{1000000, 1000000, BitRate},
		{1, 1000000, 19},
		{5, 1000000, 96},
		{1250, 1000000000, 24},
		{12345, BitRate, 12345},
		{7, 0, 0},
		{math.MaxUint64, 1000000, math.MaxUint64},
	}
	for _, c := range cases {
		if got := ScaleToBitRate(c.ticks, c.freq); got != c.want {
			t.Errorf("ScaleToBitRate(%d, %d) = %d, want %d", c.ticks, c.freq, got, c.want)
		}
	}
}

func TestTicksFromUS(t *testing.T) {
	if got := TicksFromUS(TimeBetweenLowTypes, 1000000000); got != 100000 {
		t.Errorf("TicksFromUS(100, 1GHz) = %d, want 100000", got)
	}
	if got := TicksFromUS(TimeBetweenLowTypes, 19200000); got != 1920 {
		t.Errorf("TicksFromUS(100, 19.2MHz) = %d, want 1920", got)
	}
}
