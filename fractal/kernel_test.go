package fractal

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func testPalette(t *testing.T, n int) *Palette {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	for i := 0; i < n; i++ {
		img.SetRGBA(i, i, color.RGBA{R: uint8(i * 7), G: uint8(i * 3), B: uint8(255 - i), A: 0xFF})
	}
	p, err := NewPalette(img)
	if err != nil {
		t.Fatalf("NewPalette: %v", err)
	}
	return p
}

func TestIterateImmediateEscape(t *testing.T) {
	// z starts at the origin, so after one step z == c; |c| > 2 must escape
	// before the count increments.
	if n := iterate(3, 0, 30); n != 0 {
		t.Fatalf("c=(3,0): got %d iterations, want 0", n)
	}
}

func TestIterateNeverEscapes(t *testing.T) {
	for _, max := range []int{2, 30, 500} {
		if n := iterate(0, 0, max); n != max {
			t.Fatalf("c=(0,0) maxIter=%d: got %d, want %d", max, n, max)
		}
	}
}

func TestIterateBounds(t *testing.T) {
	const max = 40
	points := []struct{ re, im float32 }{
		{-2, 0}, {-0.75, 0.1}, {0.3, 0.5}, {2.5, 2.5}, {-1.4, 0.001}, {0.25, 0},
	}
	for _, c := range points {
		n := iterate(c.re, c.im, max)
		if n < 0 || n > max {
			t.Fatalf("c=(%v,%v): count %d outside [0,%d]", c.re, c.im, n, max)
		}
	}
}

func renderOnce(t *testing.T, workers int) []byte {
	t.Helper()
	cfg := Config{Width: 64, Height: 48}

	ctrl, err := NewController(cfg)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	r, err := NewRenderer(cfg, testPalette(t, 16))
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	r.SetWorkers(workers)

	tgt := &RGBATarget{Pix: make([]byte, 64*48*4), Stride: 64 * 4, W: 64, H: 48}
	r.Render(tgt, ctrl.View())
	return tgt.Pix
}

func TestRenderDeterministic(t *testing.T) {
	a := renderOnce(t, 4)
	b := renderOnce(t, 4)
	if !bytes.Equal(a, b) {
		t.Fatalf("two renders of the same view differ")
	}
}

func TestRenderWorkerCountIndependent(t *testing.T) {
	ref := renderOnce(t, 1)
	for _, w := range []int{2, 3, 8, 48} {
		if got := renderOnce(t, w); !bytes.Equal(got, ref) {
			t.Fatalf("render with %d workers differs from single-worker render", w)
		}
	}
}

func TestRenderCoversEveryPixel(t *testing.T) {
	pix := renderOnce(t, 3)
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0xFF {
			t.Fatalf("pixel %d not written (alpha %d)", i/4, pix[i])
		}
	}
}

func TestNewRendererValidation(t *testing.T) {
	if _, err := NewRenderer(Config{Width: -1, Height: 10}, testPalette(t, 8)); err == nil {
		t.Fatalf("negative width accepted")
	}
	if _, err := NewRenderer(Config{}, nil); err == nil {
		t.Fatalf("nil palette accepted")
	}
}
