package core

import "fmt"

// TileMap stores a read-only 2D grid of tile codes in row-major order. Code 0
// is open floor; any other value is a wall material.
type TileMap struct {
	W, H int
	data []uint8
}

// NewTileMap builds a map from row-major cells. The slice is copied so later
// writes by the caller cannot reach the map.
func NewTileMap(w, h int, cells []uint8) (*TileMap, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, w, h)
	}
	if len(cells) != w*h {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrBadDimensions, len(cells), w, h)
	}
	data := make([]uint8, len(cells))
	copy(data, cells)
	return &TileMap{W: w, H: h, data: data}, nil
}

// ParseLayout builds a map from equal-length rows of decimal digits, one digit
// per tile.
func ParseLayout(rows []string) (*TileMap, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrBadDimensions)
	}
	w := len(rows[0])
	cells := make([]uint8, 0, w*len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrBadDimensions, y, len(row), w)
		}
		for x := 0; x < len(row); x++ {
			c := row[x]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("invalid tile %q at (%d,%d)", c, x, y)
			}
			cells = append(cells, c-'0')
		}
	}
	return NewTileMap(w, len(rows), cells)
}

// Size returns the map dimensions.
func (m *TileMap) Size() Size { return Size{W: m.W, H: m.H} }

// Index returns the linear slice index for coordinates (x, y).
func (m *TileMap) Index(x, y int) int { return y*m.W + x }

// TileAt returns the tile code at (x, y). The second result is false when the
// coordinates fall outside the grid; such lookups count as walls.
func (m *TileMap) TileAt(x, y int) (uint8, bool) {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return 0, false
	}
	return m.data[m.Index(x, y)], true
}

// Tile is TileAt with the miss reported as ErrOutOfBounds.
func (m *TileMap) Tile(x, y int) (uint8, error) {
	tile, ok := m.TileAt(x, y)
	if !ok {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, m.W, m.H)
	}
	return tile, nil
}

// Open reports whether (x, y) is an in-bounds walkable tile.
func (m *TileMap) Open(x, y int) bool {
	tile, ok := m.TileAt(x, y)
	return ok && tile == 0
}

// Cells returns a copy of the row-major tile codes.
func (m *TileMap) Cells() []uint8 {
	out := make([]uint8, len(m.data))
	copy(out, m.data)
	return out
}

// ValidateBorder checks that the outer ring of the grid is solid. Rays can only
// be bounded by the map when this holds.
func (m *TileMap) ValidateBorder() error {
	for x := 0; x < m.W; x++ {
		if m.data[m.Index(x, 0)] == 0 {
			return &BorderError{X: x, Y: 0}
		}
		if m.data[m.Index(x, m.H-1)] == 0 {
			return &BorderError{X: x, Y: m.H - 1}
		}
	}
	for y := 0; y < m.H; y++ {
		if m.data[m.Index(0, y)] == 0 {
			return &BorderError{X: 0, Y: y}
		}
		if m.data[m.Index(m.W-1, y)] == 0 {
			return &BorderError{X: m.W - 1, Y: y}
		}
	}
	return nil
}
