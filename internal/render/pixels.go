package render

import "image/color"

// Encode565 packs c into a 16-bit RGB565 value.
func Encode565(c color.RGBA) uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

// Decode565 expands an RGB565 value to opaque RGBA, replicating the high bits
// into the low ones so full intensity maps to 255.
func Decode565(v uint16) color.RGBA {
	r := uint8(v>>11) & 0x1f
	g := uint8(v>>5) & 0x3f
	b := uint8(v) & 0x1f
	return color.RGBA{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
		A: 255,
	}
}

// fill565RGBA converts RGB565 pixels into RGBA bytes in buf.
func fill565RGBA(buf []byte, pix []uint16) {
	for i, v := range pix {
		c := Decode565(v)
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}
