//go:build ebiten

package ui

import (
	"image/color"

	"gridcast/pkg/raycast"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws a top-down minimap with the current rays over the view.
type Overlay struct {
	cell     float32
	showMap  bool
	showRays bool
	hits     []raycast.Hit
}

// NewOverlay constructs an overlay drawing cell pixels per map tile.
func NewOverlay(cell int) *Overlay {
	if cell <= 0 {
		cell = 6
	}
	return &Overlay{cell: float32(cell), showRays: true}
}

// Update toggles the minimap (M) and its rays (R).
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.showMap = !o.showMap
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		o.showRays = !o.showRays
	}
}

// Draw renders the minimap for p. Rays are only traced while it is visible.
func (o *Overlay) Draw(screen *ebiten.Image, rc *raycast.Raycaster, p raycast.Player) {
	if !o.showMap {
		return
	}
	m := rc.Map()
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			tile, _ := m.TileAt(x, y)
			vector.DrawFilledRect(screen, float32(x)*o.cell, float32(y)*o.cell, o.cell, o.cell, tileColor(tile), false)
		}
	}

	px, py := float32(p.X)*o.cell, float32(p.Y)*o.cell
	if o.showRays {
		o.hits = o.hits[:0]
		rc.Trace(p, func(r raycast.Ray) { o.hits = append(o.hits, r.Hit) })
		for _, h := range o.hits {
			clr := color.RGBA{R: 255, G: 255, B: 255, A: 40}
			if h.Escaped {
				clr = color.RGBA{R: 255, G: 40, B: 40, A: 160}
			}
			vector.StrokeLine(screen, px, py, float32(h.X)*o.cell, float32(h.Y)*o.cell, 1, clr, false)
		}
	}
	vector.DrawFilledCircle(screen, px, py, o.cell/3, color.RGBA{R: 255, G: 220, B: 0, A: 255}, true)
}

func tileColor(tile uint8) color.Color {
	switch tile {
	case 0:
		return color.RGBA{R: 24, G: 24, B: 28, A: 200}
	case 1:
		return color.RGBA{R: 140, G: 140, B: 150, A: 220}
	case 2:
		return color.RGBA{R: 170, G: 80, B: 60, A: 220}
	case 3:
		return color.RGBA{R: 70, G: 150, B: 80, A: 220}
	case 4:
		return color.RGBA{R: 70, G: 100, B: 180, A: 220}
	}
	return color.RGBA{R: 180, G: 160, B: 60, A: 220}
}
