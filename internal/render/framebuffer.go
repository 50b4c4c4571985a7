package render

import (
	"image"
	"image/color"

	"gridcast/pkg/raycast"
)

// Framebuffer is an RGB565 pixel buffer that accepts raycaster bands.
type Framebuffer struct {
	w, h int
	pix  []uint16
	rgba []byte
}

// NewFramebuffer allocates a w*h buffer cleared to black.
func NewFramebuffer(w, h int) *Framebuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Framebuffer{w: w, h: h, pix: make([]uint16, w*h), rgba: make([]byte, 4*w*h)}
}

// Size returns the buffer dimensions.
func (fb *Framebuffer) Size() (int, int) { return fb.w, fb.h }

// Pixels exposes the RGB565 backing slice in row-major order.
func (fb *Framebuffer) Pixels() []uint16 { return fb.pix }

// At returns the RGB565 value at (x, y), or 0 outside the buffer.
func (fb *Framebuffer) At(x, y int) uint16 {
	if x < 0 || y < 0 || x >= fb.w || y >= fb.h {
		return 0
	}
	return fb.pix[y*fb.w+x]
}

// Clear fills the buffer with c.
func (fb *Framebuffer) Clear(c color.RGBA) {
	v := Encode565(c)
	for i := range fb.pix {
		fb.pix[i] = v
	}
}

// DrawBand fills the band rectangle, clipped to the buffer.
func (fb *Framebuffer) DrawBand(b raycast.Band) {
	r := image.Rect(b.X0, b.Y0, b.X1, b.Y1).Intersect(image.Rect(0, 0, fb.w, fb.h))
	if r.Empty() {
		return
	}
	v := Encode565(b.Color)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := fb.pix[y*fb.w : (y+1)*fb.w]
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x] = v
		}
	}
}

// RGBA converts the buffer to RGBA bytes. The returned slice is reused by the
// next call.
func (fb *Framebuffer) RGBA() []byte {
	fill565RGBA(fb.rgba, fb.pix)
	return fb.rgba
}

var _ raycast.Sink = (*Framebuffer)(nil)
