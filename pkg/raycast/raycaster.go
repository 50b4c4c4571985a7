// Package raycast turns a player pose on a tile map into screen columns.
//
// Each frame the Raycaster sweeps a fixed number of rays across the player's
// field of view, asks a Tracer for the nearest wall along each ray, corrects
// the distance for fisheye and emits ceiling, wall and floor bands to a Sink.
// Nothing is kept between frames.
package raycast

import (
	"errors"
	"fmt"
	"image/color"

	"gridcast/pkg/core"
	"gridcast/pkg/trig"
)

// BandKind identifies one of the three stacked regions of a column.
type BandKind uint8

const (
	BandCeiling BandKind = iota
	BandWall
	BandFloor
)

func (k BandKind) String() string {
	switch k {
	case BandCeiling:
		return "ceiling"
	case BandWall:
		return "wall"
	case BandFloor:
		return "floor"
	}
	return fmt.Sprintf("band(%d)", uint8(k))
}

// Band is one draw call: the half-open rectangle [X0, X1) x [Y0, Y1).
type Band struct {
	X0, Y0, X1, Y1 int
	Thickness      int
	Kind           BandKind
	Color          color.RGBA
	// Distance is the fisheye-corrected distance of the column's wall.
	Distance float64
}

// Sink receives bands. It decides whether to draw immediately or buffer.
type Sink interface {
	DrawBand(Band)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Band)

// DrawBand calls f(b).
func (f SinkFunc) DrawBand(b Band) { f(b) }

// Palette holds the band colors.
type Palette struct {
	Ceiling        color.RGBA
	Floor          color.RGBA
	WallHorizontal color.RGBA
	WallVertical   color.RGBA
}

// DefaultPalette matches the RGB565 colors of the handheld build: gray sky,
// dark gray floor and two blues for the wall faces.
func DefaultPalette() Palette {
	return Palette{
		Ceiling:        color.RGBA{R: 198, G: 199, B: 198, A: 255},
		Floor:          color.RGBA{R: 90, G: 89, B: 90, A: 255},
		WallHorizontal: color.RGBA{R: 0, G: 0, B: 255, A: 255},
		WallVertical:   color.RGBA{R: 57, G: 56, B: 255, A: 255},
	}
}

// Wall returns the wall shade for o.
func (p Palette) Wall(o Orientation) color.RGBA {
	if o == Vertical {
		return p.WallVertical
	}
	return p.WallHorizontal
}

// Ray is the traced result for one column.
type Ray struct {
	Index int
	Angle int
	Hit   Hit
	// Distance is the raw Euclidean distance to the hit, Corrected the
	// fisheye-corrected one.
	Distance  float64
	Corrected float64
}

// FrameStats summarizes a sweep.
type FrameStats struct {
	Rays    int
	Escaped int
}

// Raycaster renders frames for one map. It holds no per-frame state and can be
// reused for every frame.
type Raycaster struct {
	m      *core.TileMap
	t      *trig.Tables
	cfg    Config
	tracer Tracer
}

// New validates cfg and builds the configured tracer.
func New(m *core.TileMap, t *trig.Tables, cfg Config) (*Raycaster, error) {
	if m == nil || t == nil {
		return nil, errors.New("raycaster needs a map and trig tables")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tracer, err := NewTracer(cfg.Strategy, m, t, cfg.MarchDivisor)
	if err != nil {
		return nil, err
	}
	return &Raycaster{m: m, t: t, cfg: cfg, tracer: tracer}, nil
}

// WithStrategy returns a Raycaster sharing the map and tables but tracing with s.
func (r *Raycaster) WithStrategy(s Strategy) (*Raycaster, error) {
	cfg := r.cfg
	cfg.Strategy = s
	return New(r.m, r.t, cfg)
}

// Config returns the active configuration.
func (r *Raycaster) Config() Config { return r.cfg }

// Strategy returns the active tracing strategy.
func (r *Raycaster) Strategy() Strategy { return r.cfg.Strategy }

// Map returns the map being rendered.
func (r *Raycaster) Map() *core.TileMap { return r.m }

// Tables returns the shared trig tables.
func (r *Raycaster) Tables() *trig.Tables { return r.t }

// RayAngles returns the normalized angle of every ray for p, left to right.
func (r *Raycaster) RayAngles(p Player) []int {
	out := make([]int, r.cfg.Rays)
	for i := range out {
		out[i] = r.rayAngle(p, i)
	}
	return out
}

// rayAngle splits the field of view evenly, starting at the left edge.
func (r *Raycaster) rayAngle(p Player, i int) int {
	return trig.Normalize(p.Angle - p.FOV/2 + i*p.FOV/r.cfg.Rays)
}

// Trace casts every ray for p and hands each result to visit in screen order.
// Escaped rays are replaced by a hit at MaxDistance and counted in the stats.
func (r *Raycaster) Trace(p Player, visit func(Ray)) FrameStats {
	stats := FrameStats{Rays: r.cfg.Rays}
	heading := p.Heading()
	for i := 0; i < r.cfg.Rays; i++ {
		angle := r.rayAngle(p, i)
		hit, err := r.tracer.Trace(p.X, p.Y, angle)
		if err != nil {
			hit = r.escapedHit(p, angle)
			stats.Escaped++
		}
		dist := hit.Distance(p.X, p.Y)
		corrected := dist * r.t.Cos(trig.Normalize(angle-heading))
		if corrected <= 0 {
			corrected = 1
		}
		visit(Ray{Index: i, Angle: angle, Hit: hit, Distance: dist, Corrected: corrected})
	}
	return stats
}

// Sweep renders one frame for p into sink, three bands per column from top to
// bottom.
func (r *Raycaster) Sweep(p Player, sink Sink) FrameStats {
	w, h, n := r.cfg.ScreenWidth, r.cfg.ScreenHeight, r.cfg.Rays
	half := float64(h) / 2
	pal := r.cfg.Palette
	return r.Trace(p, func(ray Ray) {
		x0 := ray.Index * w / n
		x1 := (ray.Index + 1) * w / n
		wallHeight := float64(h) / ray.Corrected
		top := clampRow(half-wallHeight, h)
		bottom := clampRow(half+wallHeight, h)

		band := Band{X0: x0, X1: x1, Thickness: x1 - x0, Distance: ray.Corrected}

		band.Y0, band.Y1, band.Kind, band.Color = 0, top, BandCeiling, pal.Ceiling
		sink.DrawBand(band)
		band.Y0, band.Y1, band.Kind, band.Color = top, bottom, BandWall, pal.Wall(ray.Hit.Orientation)
		sink.DrawBand(band)
		band.Y0, band.Y1, band.Kind, band.Color = bottom, h, BandFloor, pal.Floor
		sink.DrawBand(band)
	})
}

func (r *Raycaster) escapedHit(p Player, angle int) Hit {
	d := r.cfg.MaxDistance
	return Hit{
		X:           p.X + d*r.t.Cos(angle),
		Y:           p.Y + d*r.t.Sin(angle),
		Orientation: Horizontal,
		Escaped:     true,
	}
}

// clampRow truncates v into a pixel row in [0, h].
func clampRow(v float64, h int) int {
	if v <= 0 {
		return 0
	}
	if v >= float64(h) {
		return h
	}
	return int(v)
}
