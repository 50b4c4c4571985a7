package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepPeriod(t *testing.T) {
	if got := NewFixedStep(10).Step(); got != 100*time.Millisecond {
		t.Fatalf("step = %s, want 100ms", got)
	}
	if got := NewFixedStep(0).Step(); got != time.Second/60 {
		t.Fatalf("fallback step = %s, want %s", got, time.Second/60)
	}
	tk := NewFixedStep(1000).Ticker()
	defer tk.Stop()
	select {
	case <-tk.C:
	case <-time.After(time.Second):
		t.Fatal("ticker never fired")
	}
}

func TestFrameTimerAverages(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	ft := NewFrameTimer()
	ft.now = clk.now

	ft.Start()
	clk.advance(800 * time.Microsecond)
	if got := ft.Stop(); got != 800*time.Microsecond {
		t.Fatalf("first frame = %s", got)
	}
	if ft.Average() != 800*time.Microsecond {
		t.Fatalf("first average = %s", ft.Average())
	}

	ft.Start()
	clk.advance(1600 * time.Microsecond)
	ft.Stop()
	if ft.Last() != 1600*time.Microsecond {
		t.Fatalf("last = %s", ft.Last())
	}
	if ft.Average() != 900*time.Microsecond {
		t.Fatalf("average = %s, want 900µs", ft.Average())
	}
	if ft.Frames() != 2 {
		t.Fatalf("frames = %d", ft.Frames())
	}
}
