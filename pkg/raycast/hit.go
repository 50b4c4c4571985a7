package raycast

import "math"

// Orientation tells which kind of grid line a ray crossed when it hit a wall.
// It only selects between two wall shades.
type Orientation uint8

const (
	// Vertical hits cross a vertical grid line (constant x).
	Vertical Orientation = iota
	// Horizontal hits cross a horizontal grid line (constant y).
	Horizontal
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Hit is the point where a ray met a wall.
type Hit struct {
	X, Y        float64
	Orientation Orientation
	// Escaped marks a stand-in hit placed at the maximum distance after the
	// ray ran out of steps.
	Escaped bool
}

// DistanceSq returns the squared distance from (x, y) to the hit.
func (h Hit) DistanceSq(x, y float64) float64 {
	dx, dy := h.X-x, h.Y-y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance from (x, y) to the hit.
func (h Hit) Distance(x, y float64) float64 {
	return math.Sqrt(h.DistanceSq(x, y))
}
