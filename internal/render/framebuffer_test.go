package render

import (
	"image/color"
	"testing"

	"gridcast/pkg/core"
	"gridcast/pkg/raycast"
	"gridcast/pkg/trig"
)

func TestRGB565RoundTrip(t *testing.T) {
	// Device colors of the handheld build.
	pal := raycast.DefaultPalette()
	cases := map[uint16]color.RGBA{
		0xc638: pal.Ceiling,
		0x5acb: pal.Floor,
		0x001f: pal.WallHorizontal,
		0x39df: pal.WallVertical,
		0xffff: {R: 255, G: 255, B: 255, A: 255},
		0x0000: {A: 255},
	}
	for v, c := range cases {
		if got := Decode565(v); got != c {
			t.Fatalf("Decode565(%#04x) = %v, want %v", v, got, c)
		}
		if got := Encode565(c); got != v {
			t.Fatalf("Encode565(%v) = %#04x, want %#04x", c, got, v)
		}
	}
}

func TestDrawBandClips(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	red := color.RGBA{R: 255, A: 255}
	fb.DrawBand(raycast.Band{X0: 2, Y0: -3, X1: 9, Y1: 2, Color: red})

	want := Encode565(red)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			inside := x >= 2 && y < 2
			if got := fb.At(x, y); (got == want) != inside {
				t.Fatalf("pixel (%d,%d) = %#04x, inside=%v", x, y, got, inside)
			}
		}
	}
	fb.DrawBand(raycast.Band{X0: 5, Y0: 5, X1: 8, Y1: 8, Color: red})
	if fb.At(9, 9) != 0 {
		t.Fatal("out of range At should be zero")
	}
}

func TestSweepFillsEveryPixel(t *testing.T) {
	m, err := core.ParseLayout([]string{
		"1111111111",
		"1000000001",
		"1000000001",
		"1001001001",
		"1001001001",
		"1001001001",
		"1001001001",
		"1000000001",
		"1000000001",
		"1111111111",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg := raycast.DefaultConfig()
	rc, err := raycast.New(m, trig.New(), cfg)
	if err != nil {
		t.Fatalf("raycaster: %v", err)
	}

	fb := NewFramebuffer(cfg.ScreenWidth, cfg.ScreenHeight)
	magenta := color.RGBA{R: 255, B: 255, A: 255}
	fb.Clear(magenta)
	rc.Sweep(raycast.DefaultPlayer(), fb)

	hole := Encode565(magenta)
	for i, v := range fb.Pixels() {
		if v == hole {
			t.Fatalf("pixel %d left unpainted", i)
		}
	}
	// The center column faces the far wall 7.5 cells away: rows 88..151.
	if got := fb.At(121, 0); got != Encode565(cfg.Palette.Ceiling) {
		t.Fatalf("center top = %#04x, want ceiling", got)
	}
	if got := fb.At(121, 120); got != Encode565(cfg.Palette.WallVertical) {
		t.Fatalf("center = %#04x, want vertical wall", got)
	}
	if got := fb.At(121, 239); got != Encode565(cfg.Palette.Floor) {
		t.Fatalf("center bottom = %#04x, want floor", got)
	}
	// The leftmost ray meets the top wall under a cell away and fills its column.
	for _, y := range []int{0, 120, 239} {
		if got := fb.At(0, y); got != Encode565(cfg.Palette.WallHorizontal) {
			t.Fatalf("left column y=%d = %#04x, want horizontal wall", y, got)
		}
	}

	rgba := fb.RGBA()
	if len(rgba) != 4*240*240 || rgba[3] != 255 {
		t.Fatal("RGBA conversion should produce opaque pixels")
	}
}
