package fractal

// Inputs is the per-frame boolean control state sampled by the caller.
type Inputs struct {
	PanLeft, PanRight bool
	PanUp, PanDown    bool
	ZoomIn, ZoomOut   bool
	IterDown, IterUp  bool
}

// View is the render-facing parameter snapshot for one frame.
type View struct {
	Dx, Dy  float32
	Zoom    float32
	Vel     float32
	MaxIter int
}

// Controller owns the view state and mutates it from input signals.
//
// Step is the only mutator. A render pass reads the View snapshot between
// steps; the two must not overlap.
type Controller struct {
	scale float32
	limit int
	view  View
}

// NewController validates cfg and positions the view at the startup zoom.
func NewController(cfg Config) (*Controller, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		scale: cfg.ZoomScale,
		limit: cfg.IterLimit,
		view: View{
			Zoom:    cfg.InitialZoom(),
			Vel:     cfg.Velocity,
			MaxIter: cfg.MaxIter,
		},
	}, nil
}

// View returns the current parameter snapshot.
func (c *Controller) View() View { return c.view }

// Step applies one frame of control input scaled by dt (control units).
//
// Left/up grow the pan offset and right/down shrink it; the kernel subtracts
// the offset when mapping pixels, so the view moves in the pressed direction.
// Zooming rescales the pan velocity by the same factor. The iteration cap
// moves by one per tick regardless of dt and is clamped to [2, limit].
func (c *Controller) Step(in Inputs, dt float32) {
	v := &c.view

	if in.PanLeft {
		v.Dx += v.Vel * dt
	}
	if in.PanRight {
		v.Dx -= v.Vel * dt
	}
	if in.PanUp {
		v.Dy += v.Vel * dt
	}
	if in.PanDown {
		v.Dy -= v.Vel * dt
	}

	if in.ZoomIn {
		v.Zoom *= c.scale
		v.Vel *= c.scale
	}
	if in.ZoomOut {
		inv := 2 - c.scale
		v.Zoom *= inv
		v.Vel *= inv
	}

	if in.IterDown {
		v.MaxIter--
	}
	if in.IterUp {
		v.MaxIter++
	}
	if v.MaxIter < minIter {
		v.MaxIter = minIter
	}
	if v.MaxIter > c.limit {
		v.MaxIter = c.limit
	}
}
