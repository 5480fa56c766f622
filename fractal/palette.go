package fractal

import (
	"fmt"
	"image"
	"image/color"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Palette is the color source for the renderer: the diagonal of a reference
// image, indexed by scaled iteration count.
type Palette struct {
	colors []color.RGBA
}

// LoadPalette decodes the image at path and builds a palette from it.
func LoadPalette(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open palette image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode palette image %s: %w", path, err)
	}
	return NewPalette(img)
}

// NewPalette samples the diagonal of img. The smaller image dimension must
// be at least 2.
func NewPalette(img image.Image) (*Palette, error) {
	b := img.Bounds()
	n := b.Dx()
	if b.Dy() < n {
		n = b.Dy()
	}
	if n < 2 {
		return nil, fmt.Errorf("palette image %dx%d too small", b.Dx(), b.Dy())
	}

	colors := make([]color.RGBA, n)
	for i := range colors {
		r, g, bl, _ := img.At(b.Min.X+i, b.Min.Y+i).RGBA()
		colors[i] = color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8), A: 0xFF}
	}
	return &Palette{colors: colors}, nil
}

// Size returns the maximum color index (entry count minus one).
func (p *Palette) Size() int { return len(p.colors) - 1 }

// At maps an iteration count to a palette entry via floor division, so
// n == maxIter lands exactly on the last entry.
//
// A point that escapes just below the cap and one that never escapes land on
// the same or neighboring entries near Size; the coloring heuristic inherits
// this conflation.
func (p *Palette) At(n, maxIter int) color.RGBA {
	return p.colors[p.Size()*n/maxIter]
}
