package raycast

import (
	"fmt"
	"math"

	"gridcast/pkg/core"
	"gridcast/pkg/trig"
)

// GridDDA intersects rays with grid lines one cell at a time. It searches
// vertical and horizontal lines separately and keeps the nearer hit.
type GridDDA struct {
	m     *core.TileMap
	t     *trig.Tables
	limit int
}

// NewGridDDA returns an exact tracer over m.
func NewGridDDA(m *core.TileMap, t *trig.Tables) *GridDDA {
	return &GridDDA{m: m, t: t, limit: m.W + m.H + 2}
}

// Trace implements Tracer. Vertical wins ties.
func (g *GridDDA) Trace(x, y float64, angle int) (Hit, error) {
	v, vok, verr := g.vertical(x, y, angle)
	h, hok, herr := g.horizontal(x, y, angle)
	switch {
	case verr != nil && !hok:
		return Hit{}, verr
	case herr != nil && !vok:
		return Hit{}, herr
	case !hok:
		return v, nil
	case !vok:
		return h, nil
	}
	if h.DistanceSq(x, y) < v.DistanceSq(x, y) {
		return h, nil
	}
	return v, nil
}

// vertical walks the vertical grid lines ahead of the ray. There is nothing to
// find when the ray points straight up or down.
func (g *GridDDA) vertical(px, py float64, angle int) (Hit, bool, error) {
	if angle == 90 || angle == 270 {
		return Hit{}, false, nil
	}

	// Rightward rays start at the next line and look at the cell to the right
	// of it. Leftward rays start at the previous line and look left.
	rayX, step, offset, round := math.Ceil(px), 1.0, 0.0, math.Floor
	if angle > 90 && angle < 270 {
		rayX, step, offset, round = math.Floor(px), -1.0, -1.0, math.Ceil
	}

	tan := g.t.Tan(angle)
	for i := 0; i < g.limit; i++ {
		rayY := py + tan*(rayX-px)
		tile, ok := g.m.TileAt(int(round(rayX)+offset), int(round(rayY)+offset))
		if !ok || tile != 0 {
			return Hit{X: rayX, Y: rayY, Orientation: Vertical}, true, nil
		}
		rayX += step
	}
	return Hit{}, false, fmt.Errorf("%w: vertical search at %d° from (%.2f,%.2f)", core.ErrRayEscaped, angle, px, py)
}

// horizontal mirrors vertical along y. Rays along the x axis never cross a
// horizontal line.
func (g *GridDDA) horizontal(px, py float64, angle int) (Hit, bool, error) {
	if angle == 0 || angle == 180 {
		return Hit{}, false, nil
	}

	rayY, step, offset, round := math.Ceil(py), 1.0, 0.0, math.Floor
	if angle > 180 {
		rayY, step, offset, round = math.Floor(py), -1.0, -1.0, math.Ceil
	}

	tan := g.t.Tan(angle)
	for i := 0; i < g.limit; i++ {
		rayX := px + (rayY-py)/tan
		tile, ok := g.m.TileAt(int(round(rayX)+offset), int(round(rayY)+offset))
		if !ok || tile != 0 {
			return Hit{X: rayX, Y: rayY, Orientation: Horizontal}, true, nil
		}
		rayY += step
	}
	return Hit{}, false, fmt.Errorf("%w: horizontal search at %d° from (%.2f,%.2f)", core.ErrRayEscaped, angle, px, py)
}
