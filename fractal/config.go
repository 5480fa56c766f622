package fractal

import "fmt"

// Defaults for an 800x450 view.
const (
	DefaultWidth  = 800
	DefaultHeight = 450

	DefaultZoomScale = 0.993
	DefaultVelocity  = 0.01
	DefaultMaxIter   = 30
	DefaultIterLimit = 5500

	// DefaultTimeScale converts millisecond frame deltas into control units.
	DefaultTimeScale = 1.0 / 4000

	minIter = 2
)

// Config holds the fixed per-run parameters of the visualizer.
type Config struct {
	Width  int
	Height int

	// ZoomScale is the per-tick shrink factor for zooming in. Zooming out
	// multiplies by 2-ZoomScale, which is not a true inverse.
	ZoomScale float32

	// Velocity is the initial pan speed in world units per control unit.
	// It is rescaled together with the zoom to keep perceived pan speed
	// steady at any depth.
	Velocity float32

	// MaxIter is the initial iteration cap; IterLimit bounds it from above.
	MaxIter   int
	IterLimit int

	// TimeScale converts millisecond deltas into control units.
	TimeScale float32
}

// WithDefaults returns a copy with zero fields filled in.
func (c Config) WithDefaults() Config {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.ZoomScale == 0 {
		c.ZoomScale = DefaultZoomScale
	}
	if c.Velocity == 0 {
		c.Velocity = DefaultVelocity
	}
	if c.MaxIter == 0 {
		c.MaxIter = DefaultMaxIter
	}
	if c.IterLimit == 0 {
		c.IterLimit = DefaultIterLimit
	}
	if c.TimeScale == 0 {
		c.TimeScale = DefaultTimeScale
	}
	return c
}

// Validate reports the first malformed field.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid resolution %dx%d", c.Width, c.Height)
	}
	if c.ZoomScale <= 0 || c.ZoomScale >= 2 {
		return fmt.Errorf("zoom scale %v outside (0, 2)", c.ZoomScale)
	}
	if c.Velocity <= 0 {
		return fmt.Errorf("non-positive velocity %v", c.Velocity)
	}
	if c.MaxIter < minIter {
		return fmt.Errorf("iteration cap %d below minimum %d", c.MaxIter, minIter)
	}
	if c.IterLimit < c.MaxIter {
		return fmt.Errorf("iteration limit %d below initial cap %d", c.IterLimit, c.MaxIter)
	}
	if c.TimeScale <= 0 {
		return fmt.Errorf("non-positive time scale %v", c.TimeScale)
	}
	return nil
}

// InitialZoom returns the startup world-units-per-pixel scale.
func (c Config) InitialZoom() float32 {
	return 2.2 / float32(c.Height)
}
