package gpio

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"syncscope/core"
)

func TestNewDriverValidatesConfig(t *testing.T) {
	if _, err := NewDriver(nil); err == nil {
		t.Error("expected an error for a nil config")
	}
	if _, err := NewDriver(&Config{}); err == nil {
		t.Error("expected an error for an empty chip name")
	}
}

func TestAcquireInputReservesPin(t *testing.T) {
	d, err := NewDriver(DefaultConfig())
	if err != nil {
		t.Fatalf("NewDriver failed: %v", err)
	}

	line, err := d.AcquireInput(17, core.PullUp)
	if err != nil {
		t.Fatalf("AcquireInput failed: %v", err)
	}
	if _, err := d.AcquireInput(17, core.PullUp); err == nil {
		t.Error("expected an error acquiring the same pin twice")
	}

	// Closing a line that was never requested just frees the pin
	if err := line.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := d.AcquireInput(17, core.PullNone); err != nil {
		t.Errorf("AcquireInput after Close failed: %v", err)
	}
}

func TestMonotonicClock(t *testing.T) {
	var c MonotonicClock
	if c.Frequency() != core.BitRate {
		t.Errorf("Frequency() = %d, want BitRate", c.Frequency())
	}
	a := c.Ticks()
	b := c.Ticks()
	if b < a {
		t.Errorf("clock went backwards: %d then %d", a, b)
	}
}

func TestFromNanos(t *testing.T) {
	cases := map[uint64]core.Tick{
		0:          0,
		1250:       24,
		1000:       19,
		1000000000: core.BitRate,
	}
	for ns, want := range cases {
		if got := fromNanos(ns); got != want {
			t.Errorf("fromNanos(%d) = %d, want %d", ns, got, want)
		}
	}
}

func TestNewDriverLogsUnreadableClock(t *testing.T) {
	var buf bytes.Buffer
	core.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer core.SetLogger(nil)

	saved := probeClock
	probeClock = func() (uint64, error) { return 0, errors.New("clock gone") }
	defer func() { probeClock = saved }()

	if _, err := NewDriver(DefaultConfig()); err != nil {
		t.Fatalf("NewDriver failed: %v", err)
	}
	if !strings.Contains(buf.String(), "clock gone") {
		t.Errorf("log = %q, want the clock error", buf.String())
	}
}
