package fractal

import (
	"image"
	"image/color"
	"testing"
)

func TestPaletteSize(t *testing.T) {
	p := testPalette(t, 16)
	if p.Size() != 15 {
		t.Fatalf("size: got %d, want 15", p.Size())
	}
}

func TestPaletteIndexBounds(t *testing.T) {
	p := testPalette(t, 16)
	const max = 30
	for n := 0; n <= max; n++ {
		col := p.Size() * n / max
		if col < 0 || col > p.Size() {
			t.Fatalf("n=%d: index %d outside [0,%d]", n, col, p.Size())
		}
	}
}

func TestPaletteFullCountHitsLastEntry(t *testing.T) {
	p := testPalette(t, 16)
	const max = 30
	if got, want := p.At(max, max), p.colors[p.Size()]; got != want {
		t.Fatalf("n==maxIter: got %v, want last entry %v", got, want)
	}
	if got, want := p.At(0, max), p.colors[0]; got != want {
		t.Fatalf("n==0: got %v, want first entry %v", got, want)
	}
}

func TestPaletteUsesDiagonal(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 0xFF})
		}
	}
	p, err := NewPalette(img)
	if err != nil {
		t.Fatalf("NewPalette: %v", err)
	}
	for i := 0; i <= p.Size(); i++ {
		got := p.At(i, p.Size())
		if got.R != uint8(i) || got.G != uint8(i) {
			t.Fatalf("entry %d is %v, not the diagonal sample", i, got)
		}
	}
}

func TestPaletteRectangularUsesMinDimension(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 3))
	p, err := NewPalette(img)
	if err != nil {
		t.Fatalf("NewPalette: %v", err)
	}
	if p.Size() != 2 {
		t.Fatalf("size: got %d, want 2", p.Size())
	}
}

func TestPaletteTooSmall(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 5))
	if _, err := NewPalette(img); err == nil {
		t.Fatalf("degenerate palette image accepted")
	}
}

func TestLoadPaletteMissingFile(t *testing.T) {
	if _, err := LoadPalette("testdata/does-not-exist.png"); err == nil {
		t.Fatalf("missing file accepted")
	}
}
