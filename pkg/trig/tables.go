// Package trig holds whole-degree trigonometry tables for the raycaster.
//
// Tables are built once and never written again, so a single *Tables can be
// shared by every component that needs it.
package trig

import (
	"errors"
	"math"
)

// Degrees is the number of entries in each table.
const Degrees = 360

// ErrInvalidAngle reports a table index outside [0, 359].
var ErrInvalidAngle = errors.New("angle index out of range")

// Tables holds sine, cosine and tangent for every whole degree.
type Tables struct {
	sin [Degrees]float64
	cos [Degrees]float64
	tan [Degrees]float64
}

// New computes all three tables.
func New() *Tables {
	t := &Tables{}
	for d := 0; d < Degrees; d++ {
		r := Radians(d)
		t.sin[d] = math.Sin(r)
		t.cos[d] = math.Cos(r)
		t.tan[d] = math.Tan(r)
	}
	return t
}

// Sin returns sin(deg) for deg in [0, 359].
func (t *Tables) Sin(deg int) float64 {
	checkIndex(deg)
	return t.sin[deg]
}

// Cos returns cos(deg) for deg in [0, 359].
func (t *Tables) Cos(deg int) float64 {
	checkIndex(deg)
	return t.cos[deg]
}

// Tan returns tan(deg) for deg in [0, 359]. At 90 and 270 the value is huge but
// finite.
func (t *Tables) Tan(deg int) float64 {
	checkIndex(deg)
	return t.tan[deg]
}

// Normalize wraps any signed degree value into [0, 360).
func Normalize(deg int) int {
	deg %= Degrees
	if deg < 0 {
		deg += Degrees
	}
	return deg
}

// Radians converts whole degrees to radians.
func Radians(deg int) float64 {
	return float64(deg) * math.Pi / 180
}
