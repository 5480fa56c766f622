package app

import (
	"fmt"

	"brot/fractal"
	"brot/hal"
)

// Config selects what the app renders and how it reports.
type Config struct {
	Fractal fractal.Config
	Palette *fractal.Palette
	HUD     bool
}

// App drives one controller/renderer pair against a HAL.
type App struct {
	h    hal.HAL
	cfg  Config
	ctrl *fractal.Controller
	rend *fractal.Renderer

	fb     hal.Framebuffer
	target *fractal.RGBATarget
	hud    *hud
	hudOn  bool

	lastMillis int64
	haveLast   bool

	fpsFrames int
	fpsSince  int64
	fps       float32
}

// New wires the fractal core to the HAL and returns the per-frame step
// function consumed by hal.RunWindow and hal.RunHeadless. Construction
// failures surface from the first step.
func New(h hal.HAL, cfg Config) func() error {
	a, err := newApp(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return a.step
}

func newApp(h hal.HAL, cfg Config) (*App, error) {
	cfg.Fractal = cfg.Fractal.WithDefaults()

	ctrl, err := fractal.NewController(cfg.Fractal)
	if err != nil {
		return nil, err
	}
	rend, err := fractal.NewRenderer(cfg.Fractal, cfg.Palette)
	if err != nil {
		return nil, err
	}

	fb := h.Display().Framebuffer()
	if fb == nil {
		return nil, fmt.Errorf("display has no framebuffer")
	}
	if fb.Format() != hal.PixelFormatRGBA8888 {
		return nil, fmt.Errorf("unsupported framebuffer format %d", fb.Format())
	}
	fb.ClearRGB(0, 0, 0)

	a := &App{
		h:    h,
		cfg:  cfg,
		ctrl: ctrl,
		rend: rend,
		fb:   fb,
		target: &fractal.RGBATarget{
			Pix:    fb.Buffer(),
			Stride: fb.StrideBytes(),
			W:      fb.Width(),
			H:      fb.Height(),
		},
		hud:   newHUD(fb),
		hudOn: cfg.HUD,
	}

	h.Logger().WriteLineString(fmt.Sprintf(
		"brot: %dx%d, palette %d entries, iter %d (limit %d)",
		cfg.Fractal.Width, cfg.Fractal.Height, cfg.Palette.Size()+1,
		cfg.Fractal.MaxIter, cfg.Fractal.IterLimit))

	return a, nil
}

// step runs one frame: sample input, advance the view, render, present.
func (a *App) step() error {
	kbd := a.h.Input().Keyboard()
	if kbd.Pressed(hal.KeyEscape) {
		return hal.ErrShutdown
	}
	if kbd.JustPressed(hal.KeyF1) {
		a.hudOn = !a.hudOn
	}

	now := a.h.Clock().NowMillis()
	var dt float32
	if a.haveLast {
		dt = float32(now-a.lastMillis) * a.cfg.Fractal.TimeScale
	}
	a.lastMillis = now
	a.haveLast = true

	a.ctrl.Step(readInputs(kbd), dt)
	view := a.ctrl.View()
	a.rend.Render(a.target, view)

	a.tickFPS(now)
	if a.hudOn {
		a.hud.draw(a.fps, view)
	}
	return a.fb.Present()
}

// readInputs derives the logical control state from raw key state.
func readInputs(kbd hal.Keyboard) fractal.Inputs {
	return fractal.Inputs{
		PanLeft:  kbd.Pressed(hal.KeyA),
		PanRight: kbd.Pressed(hal.KeyD),
		PanUp:    kbd.Pressed(hal.KeyW),
		PanDown:  kbd.Pressed(hal.KeyS),
		ZoomIn:   kbd.Pressed(hal.KeyUp),
		ZoomOut:  kbd.Pressed(hal.KeyDown),
		IterDown: kbd.Pressed(hal.KeyLeft),
		IterUp:   kbd.Pressed(hal.KeyRight),
	}
}

func (a *App) tickFPS(now int64) {
	a.fpsFrames++
	if a.fpsSince == 0 {
		a.fpsSince = now
		return
	}
	if elapsed := now - a.fpsSince; elapsed >= 500 {
		a.fps = float32(a.fpsFrames) * 1000 / float32(elapsed)
		a.fpsFrames = 0
		a.fpsSince = now
	}
}
