package fractal

import (
	"fmt"
	"image/color"
	"math"
	"runtime"
	"sync"
)

// Target is a minimal pixel sink for a render pass.
//
// Implementations must tolerate concurrent SetPixel calls for distinct
// pixels and should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c color.RGBA)
}

// Renderer computes one full frame from a View.
//
// Create it once and reuse it; a render pass allocates nothing beyond the
// worker goroutines.
type Renderer struct {
	width  int
	height int

	// Screen-space center. The 1.3 factor biases the default view left of
	// center, toward the larger half of the set.
	cx float32
	cy float32

	pal     *Palette
	workers int
}

// NewRenderer builds a renderer for the configured resolution and palette.
func NewRenderer(cfg Config, pal *Palette) (*Renderer, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if pal == nil {
		return nil, fmt.Errorf("renderer needs a palette")
	}
	return &Renderer{
		width:   cfg.Width,
		height:  cfg.Height,
		cx:      float32(math.Floor(1.3 * float64(cfg.Width) / 2)),
		cy:      float32(cfg.Height / 2),
		pal:     pal,
		workers: runtime.NumCPU(),
	}, nil
}

// SetWorkers overrides the render parallelism (minimum 1).
func (r *Renderer) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	r.workers = n
}

// Render overwrites every pixel of t from the view parameters.
//
// Rows are split into contiguous bands, one goroutine per band. Pixels are
// mutually independent, so the result does not depend on the band count.
func (r *Renderer) Render(t Target, v View) {
	w, h := t.Size()
	if w > r.width {
		w = r.width
	}
	if h > r.height {
		h = r.height
	}
	if w <= 0 || h <= 0 {
		return
	}

	band := (h + r.workers - 1) / r.workers
	var wg sync.WaitGroup
	for y0 := 0; y0 < h; y0 += band {
		y1 := y0 + band
		if y1 > h {
			y1 = h
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			r.renderRows(t, v, w, y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}

func (r *Renderer) renderRows(t Target, v View, w, y0, y1 int) {
	for y := y0; y < y1; y++ {
		cim := (float32(y)-r.cy)*v.Zoom - v.Dy
		for x := 0; x < w; x++ {
			cre := (float32(x)-r.cx)*v.Zoom - v.Dx
			n := iterate(cre, cim, v.MaxIter)
			t.SetPixel(x, y, r.pal.At(n, v.MaxIter))
		}
	}
}

// iterate runs the quadratic escape-time recurrence z ← z² + c from z = 0.
//
// The count increments only after a passed escape check, so a point that
// escapes on the first step reports 0. The return value is in [0, maxIter].
func iterate(cre, cim float32, maxIter int) int {
	var zre, zim float32
	n := 0
	for i := 0; i < maxIter; i++ {
		zre, zim = zre*zre-zim*zim+cre, 2*zre*zim+cim
		if zre*zre+zim*zim > 4 {
			break
		}
		n++
	}
	return n
}
