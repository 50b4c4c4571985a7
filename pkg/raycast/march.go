package raycast

import (
	"fmt"
	"math"

	"gridcast/pkg/core"
	"gridcast/pkg/trig"
)

// DefaultMarchDivisor splits each unit step into 16 increments.
const DefaultMarchDivisor = 16

// Marcher walks a ray in fixed increments of 1/divisor cells until it lands in
// a wall tile.
type Marcher struct {
	m     *core.TileMap
	steps [trig.Degrees][2]float64
	limit int
}

// NewMarcher precomputes the per-degree step vectors. A divisor below 1 falls
// back to DefaultMarchDivisor.
func NewMarcher(m *core.TileMap, t *trig.Tables, divisor int) *Marcher {
	if divisor < 1 {
		divisor = DefaultMarchDivisor
	}
	mr := &Marcher{m: m, limit: divisor * (m.W + m.H + 2)}
	k := float64(divisor)
	for d := 0; d < trig.Degrees; d++ {
		mr.steps[d] = [2]float64{t.Cos(d) / k, t.Sin(d) / k}
	}
	return mr
}

// Trace implements Tracer. The face is not resolved, so hits are always
// Horizontal. Leaving the grid counts as hitting a wall.
func (mr *Marcher) Trace(x, y float64, angle int) (Hit, error) {
	step := mr.steps[angle]
	for i := 0; i < mr.limit; i++ {
		x += step[0]
		y += step[1]
		tile, ok := mr.m.TileAt(int(math.Floor(x)), int(math.Floor(y)))
		if !ok || tile != 0 {
			return Hit{X: x, Y: y, Orientation: Horizontal}, nil
		}
	}
	return Hit{}, fmt.Errorf("%w: march at %d° ended at (%.2f,%.2f)", core.ErrRayEscaped, angle, x, y)
}
