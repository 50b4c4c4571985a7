package raycast

import (
	"errors"
	"fmt"
	"strings"

	"gridcast/pkg/core"
	"gridcast/pkg/trig"
)

// ErrUnknownStrategy reports a strategy name that is not dda or march.
var ErrUnknownStrategy = errors.New("unknown tracing strategy")

// Strategy selects the wall-intersection algorithm.
type Strategy uint8

const (
	// StrategyDDA steps exactly from grid line to grid line.
	StrategyDDA Strategy = iota
	// StrategyMarch advances in small fixed increments. Cheaper, approximate,
	// and every hit is tagged Horizontal.
	StrategyMarch
)

func (s Strategy) String() string {
	switch s {
	case StrategyDDA:
		return "dda"
	case StrategyMarch:
		return "march"
	}
	return fmt.Sprintf("strategy(%d)", uint8(s))
}

// Next cycles to the other strategy.
func (s Strategy) Next() Strategy {
	if s == StrategyDDA {
		return StrategyMarch
	}
	return StrategyDDA
}

// ParseStrategy maps a config name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dda", "grid", "exact":
		return StrategyDDA, nil
	case "march", "step", "fast":
		return StrategyMarch, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Tracer finds the nearest wall along a ray from (x, y). angle must already be
// normalized into [0, 360). A ray that runs out of steps fails with
// core.ErrRayEscaped.
type Tracer interface {
	Trace(x, y float64, angle int) (Hit, error)
}

// NewTracer builds the tracer for s over m.
func NewTracer(s Strategy, m *core.TileMap, t *trig.Tables, marchDivisor int) (Tracer, error) {
	switch s {
	case StrategyDDA:
		return NewGridDDA(m, t), nil
	case StrategyMarch:
		return NewMarcher(m, t, marchDivisor), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
}
