package core

import "time"

// FixedStep holds the tick period for a steady ticks-per-second rate.
type FixedStep struct {
	step time.Duration
}

// NewFixedStep constructs a FixedStep targeting the given TPS. A non-positive
// rate falls back to 60.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	return &FixedStep{step: time.Second / time.Duration(tps)}
}

// Step returns the tick duration.
func (f *FixedStep) Step() time.Duration { return f.step }

// Ticker starts a ticker firing once per step. The caller must stop it.
func (f *FixedStep) Ticker() *time.Ticker { return time.NewTicker(f.step) }

// FrameTimer measures how long each sweep takes and keeps a smoothed average.
type FrameTimer struct {
	started time.Time
	last    time.Duration
	avg     time.Duration
	frames  int
	now     func() time.Time
}

// NewFrameTimer returns a timer using the wall clock.
func NewFrameTimer() *FrameTimer { return &FrameTimer{now: time.Now} }

// Start marks the beginning of a frame.
func (t *FrameTimer) Start() { t.started = t.now() }

// Stop closes the frame opened by Start and returns its duration.
func (t *FrameTimer) Stop() time.Duration {
	t.last = t.now().Sub(t.started)
	t.frames++
	if t.frames == 1 {
		t.avg = t.last
	} else {
		// Exponential moving average weighted 1/8 toward the new frame.
		t.avg += (t.last - t.avg) / 8
	}
	return t.last
}

// Last returns the duration of the most recent frame.
func (t *FrameTimer) Last() time.Duration { return t.last }

// Average returns the smoothed frame duration.
func (t *FrameTimer) Average() time.Duration { return t.avg }

// Frames returns how many frames were measured.
func (t *FrameTimer) Frames() int { return t.frames }
