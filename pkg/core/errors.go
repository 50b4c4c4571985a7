package core

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds reports a tile query outside the grid.
	ErrOutOfBounds = errors.New("tile out of bounds")
	// ErrRayEscaped reports a ray that ran past its step bound without
	// meeting a wall. It always points at a map with an open border.
	ErrRayEscaped = errors.New("ray escaped map")
	// ErrBadDimensions reports a grid whose size and cell count disagree.
	ErrBadDimensions = errors.New("bad map dimensions")
)

// BorderError identifies the first open tile found on a map's outer ring.
type BorderError struct {
	X, Y int
}

func (e *BorderError) Error() string {
	return fmt.Sprintf("open border tile at (%d,%d)", e.X, e.Y)
}

// Is lets callers match an open border as the cause of escaped rays.
func (e *BorderError) Is(target error) bool { return target == ErrRayEscaped }
