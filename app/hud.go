package app

import (
	"fmt"
	"image/color"

	"brot/fractal"
	"brot/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	hudFG     = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	hudShadow = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

// hud draws a small status overlay directly into the framebuffer after the
// render pass.
type hud struct {
	d    *fbDisplay
	font tinyfont.Fonter
}

func newHUD(fb hal.Framebuffer) *hud {
	return &hud{d: &fbDisplay{fb: fb}, font: &proggy.TinySZ8pt7b}
}

func (h *hud) draw(fps float32, v fractal.View) {
	lines := []string{
		fmt.Sprintf("FPS: %.2f", fps),
		fmt.Sprintf("iter %d", v.MaxIter),
		fmt.Sprintf("zoom %.3e", v.Zoom),
	}
	y := int16(12)
	for _, s := range lines {
		// One-pixel shadow keeps the text readable on bright regions.
		tinyfont.WriteLine(h.d, h.font, 9, y+1, s, hudShadow)
		tinyfont.WriteLine(h.d, h.font, 8, y, s, hudFG)
		y += 12
	}
}

// fbDisplay adapts the HAL framebuffer to drivers.Displayer so tinyfont can
// draw on it.
type fbDisplay struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplay)(nil)

func (d *fbDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb.Format() != hal.PixelFormatRGBA8888 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix*4
	if off < 0 || off+3 >= len(buf) {
		return
	}
	buf[off] = c.R
	buf[off+1] = c.G
	buf[off+2] = c.B
	buf[off+3] = 0xFF
}

func (d *fbDisplay) Display() error { return d.fb.Present() }
