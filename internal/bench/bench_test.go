package bench

import (
	"testing"

	"gridcast/internal/core"
	_ "gridcast/internal/maps/reference"
	"gridcast/pkg/raycast"
	"gridcast/pkg/trig"
)

func referenceLayout(t *testing.T) core.Layout {
	t.Helper()
	l, err := core.Build("reference", nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return l
}

func TestSweepCountsEveryHeading(t *testing.T) {
	l := referenceLayout(t)
	cfg := raycast.DefaultConfig()
	res, err := Sweep(l, trig.New(), cfg, 2)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if res.Frames != 2*trig.Degrees {
		t.Fatalf("frames = %d, want %d", res.Frames, 2*trig.Degrees)
	}
	if res.Rays != res.Frames*cfg.Rays {
		t.Fatalf("rays = %d, want %d", res.Rays, res.Frames*cfg.Rays)
	}
	if res.Escaped != 0 {
		t.Fatalf("escaped = %d on a bordered map", res.Escaped)
	}
	if res.Layout != "reference" || res.Strategy != raycast.StrategyDDA {
		t.Fatalf("unexpected labels %+v", res)
	}
}

func TestSweepRejectsBadConfig(t *testing.T) {
	cfg := raycast.DefaultConfig()
	cfg.Rays = 0
	if _, err := Sweep(referenceLayout(t), trig.New(), cfg, 1); err == nil {
		t.Fatal("expected config error")
	}
}

func TestCompareStrategiesStayClose(t *testing.T) {
	d, err := Compare(referenceLayout(t), trig.New(), raycast.DefaultConfig())
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if d.Rays != trig.Degrees*raycast.DefaultConfig().Rays {
		t.Fatalf("rays = %d", d.Rays)
	}
	// The marcher overshoots the wall by at most one step of 1/16 cell
	// along the ray, plus the grid search's rounding near corners.
	if d.Mean > 0.25 {
		t.Fatalf("mean drift %.4f too large", d.Mean)
	}
	if d.Max < d.Mean {
		t.Fatalf("max %.4f below mean %.4f", d.Max, d.Mean)
	}
}
