package fractal

import "image/color"

// RGBATarget writes pixels into a packed RGBA8888 buffer.
//
// Callers provide the backing buffer and layout (stride). Out-of-bounds
// coordinates are clipped.
type RGBATarget struct {
	Pix    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGBATarget) Size() (w, h int) { return t.W, t.H }

func (t *RGBATarget) SetPixel(x, y int, c color.RGBA) {
	if t == nil || t.Pix == nil || t.Stride <= 0 {
		return
	}
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*4
	if off < 0 || off+3 >= len(t.Pix) {
		return
	}
	t.Pix[off] = c.R
	t.Pix[off+1] = c.G
	t.Pix[off+2] = c.B
	t.Pix[off+3] = c.A
}
