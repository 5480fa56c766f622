//go:build cgo

package hal

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that displays the framebuffer and forwards
// keyboard input. It blocks until the window closes or the app step returns
// ErrShutdown.
func RunWindow(title string, width, height int, newApp func(HAL) func() error) error {
	h, err := newHost(width, height)
	if err != nil {
		return err
	}
	step := newApp(h)

	g := &hostGame{h: h, step: step, title: title}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	step    func() error
	title   string
	scratch []byte
	frames  int
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrShutdown) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.scratch == nil {
		g.scratch = make([]byte, len(fb.buf))
	}
	fb.snapshot(g.scratch)
	screen.WritePixels(g.scratch)

	g.frames++
	if g.frames%30 == 0 {
		ebiten.SetWindowTitle(fmt.Sprintf("%s  FPS: %.2f", g.title, ebiten.ActualFPS()))
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
