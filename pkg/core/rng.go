package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Uint8n returns a random uint8 in [0, n).
func (r *RNG) Uint8n(n uint8) uint8 {
	if n == 0 {
		return 0
	}
	return uint8(r.r.IntN(int(n)))
}

// BorderedArena carves a w*h map with a solid ring of material 1 and interior
// walls scattered with the given density. Interior walls use materials
// 1..materials. The cell at (keepX, keepY) is always left open so a player can
// spawn there.
func BorderedArena(r *RNG, w, h int, density float64, materials uint8, keepX, keepY int) (*TileMap, error) {
	if w < 3 || h < 3 {
		return nil, ErrBadDimensions
	}
	if materials == 0 {
		materials = 1
	}
	cells := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				cells[idx] = 1
				continue
			}
			if x == keepX && y == keepY {
				continue
			}
			if r.Chance(density) {
				cells[idx] = 1 + r.Uint8n(materials)
			}
		}
	}
	return NewTileMap(w, h, cells)
}
