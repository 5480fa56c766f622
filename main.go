package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"brot/app"
	"brot/fractal"
	"brot/hal"
	"brot/internal/buildinfo"
)

func main() {
	var hcfg hal.HeadlessConfig
	var fcfg fractal.Config
	var texture string
	var hud bool

	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&texture, "texture", "img/texture.jpg", "Reference image whose diagonal becomes the palette.")
	flag.IntVar(&fcfg.Width, "width", fractal.DefaultWidth, "Framebuffer width in pixels.")
	flag.IntVar(&fcfg.Height, "height", fractal.DefaultHeight, "Framebuffer height in pixels.")
	flag.IntVar(&fcfg.MaxIter, "iter", fractal.DefaultMaxIter, "Initial iteration cap.")
	flag.BoolVar(&hud, "hud", true, "Show the status overlay (toggle with F1).")
	flag.Parse()

	fcfg = fcfg.WithDefaults()
	if err := fcfg.Validate(); err != nil {
		fatal(err)
	}

	pal, err := fractal.LoadPalette(texture)
	if err != nil {
		fatal(err)
	}

	acfg := app.Config{Fractal: fcfg, Palette: pal, HUD: hud}
	newApp := func(h hal.HAL) func() error { return app.New(h, acfg) }

	if hcfg.Enabled {
		hcfg.Width = fcfg.Width
		hcfg.Height = fcfg.Height
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hcfg); err != nil {
			if err == context.Canceled {
				return
			}
			fatal(err)
		}
		return
	}

	title := "Brot (" + buildinfo.Short() + ")"
	if err := hal.RunWindow(title, fcfg.Width, fcfg.Height, newApp); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
