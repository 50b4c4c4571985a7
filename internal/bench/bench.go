// Package bench times full-circle sweeps and compares the two tracing
// strategies on a layout.
package bench

import (
	"fmt"
	"math"
	"time"

	"gridcast/internal/core"
	"gridcast/pkg/raycast"
	"gridcast/pkg/trig"
)

// Result is the timing of one layout under one strategy.
type Result struct {
	Layout   string
	Strategy raycast.Strategy
	Frames   int
	Rays     int
	Escaped  int
	Elapsed  time.Duration
}

// PerFrame returns the mean sweep time.
func (r Result) PerFrame() time.Duration {
	if r.Frames == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Frames)
}

func (r Result) String() string {
	return fmt.Sprintf("%-10s %-6s frames=%d rays=%d escaped=%d per-frame=%s",
		r.Layout, r.Strategy, r.Frames, r.Rays, r.Escaped, r.PerFrame())
}

// Sweep renders rounds full turns from the layout's spawn, one frame per
// heading, into a sink that discards the bands.
func Sweep(l core.Layout, t *trig.Tables, cfg raycast.Config, rounds int) (Result, error) {
	rc, err := raycast.New(l.Map, t, cfg)
	if err != nil {
		return Result{}, fmt.Errorf("layout %s: %w", l.Name, err)
	}
	res := Result{Layout: l.Name, Strategy: cfg.Strategy}
	discard := raycast.SinkFunc(func(raycast.Band) {})
	p := l.Spawn
	start := time.Now()
	for r := 0; r < rounds; r++ {
		for a := 0; a < trig.Degrees; a++ {
			p.Angle = a
			stats := rc.Sweep(p, discard)
			res.Frames++
			res.Rays += stats.Rays
			res.Escaped += stats.Escaped
		}
	}
	res.Elapsed = time.Since(start)
	return res, nil
}

// Diff summarizes how far the marcher's distances drift from the exact grid
// search.
type Diff struct {
	Layout string
	Rays   int
	Max    float64
	Mean   float64
	// Worst is the absolute ray angle of the largest drift.
	Worst int
}

func (d Diff) String() string {
	return fmt.Sprintf("%-10s rays=%d max=%.4f mean=%.4f worst=%d°", d.Layout, d.Rays, d.Max, d.Mean, d.Worst)
}

// Compare traces every heading from the spawn with both strategies.
func Compare(l core.Layout, t *trig.Tables, cfg raycast.Config) (Diff, error) {
	exactCfg, marchCfg := cfg, cfg
	exactCfg.Strategy = raycast.StrategyDDA
	marchCfg.Strategy = raycast.StrategyMarch
	exact, err := raycast.New(l.Map, t, exactCfg)
	if err != nil {
		return Diff{}, err
	}
	march, err := raycast.New(l.Map, t, marchCfg)
	if err != nil {
		return Diff{}, err
	}

	d := Diff{Layout: l.Name}
	var sum float64
	p := l.Spawn
	for a := 0; a < trig.Degrees; a++ {
		p.Angle = a
		var want []float64
		exact.Trace(p, func(r raycast.Ray) { want = append(want, r.Distance) })
		march.Trace(p, func(r raycast.Ray) {
			delta := math.Abs(r.Distance - want[r.Index])
			sum += delta
			d.Rays++
			if delta > d.Max {
				d.Max = delta
				d.Worst = r.Angle
			}
		})
	}
	if d.Rays > 0 {
		d.Mean = sum / float64(d.Rays)
	}
	return d, nil
}
