//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Painter uploads a Framebuffer into an ebiten image.
type Painter struct {
	w, h int
	img  *ebiten.Image
}

// NewPainter allocates a painter for a w*h framebuffer.
func NewPainter(w, h int) *Painter {
	return &Painter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads fb and draws it scaled onto dst.
func (p *Painter) Blit(dst *ebiten.Image, fb *Framebuffer, scale int) {
	if w, h := fb.Size(); w != p.w || h != p.h {
		return
	}
	p.img.WritePixels(fb.RGBA())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
