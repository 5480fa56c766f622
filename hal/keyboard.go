//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeys = [keyCodeCount]ebiten.Key{
	KeyUp:     ebiten.KeyArrowUp,
	KeyDown:   ebiten.KeyArrowDown,
	KeyLeft:   ebiten.KeyArrowLeft,
	KeyRight:  ebiten.KeyArrowRight,
	KeyW:      ebiten.KeyW,
	KeyA:      ebiten.KeyA,
	KeyS:      ebiten.KeyS,
	KeyD:      ebiten.KeyD,
	KeyEscape: ebiten.KeyEscape,
	KeyF1:     ebiten.KeyF1,
}

type hostKeyboard struct {
	down [keyCodeCount]bool
	hit  [keyCodeCount]bool
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{}
}

// poll samples the key state once per frame from the window loop.
func (k *hostKeyboard) poll() {
	for code := KeyUnknown + 1; code < keyCodeCount; code++ {
		ek := ebitenKeys[code]
		k.down[code] = ebiten.IsKeyPressed(ek)
		k.hit[code] = inpututil.IsKeyJustPressed(ek)
	}
}

func (k *hostKeyboard) Pressed(code KeyCode) bool {
	if code >= keyCodeCount {
		return false
	}
	return k.down[code]
}

func (k *hostKeyboard) JustPressed(code KeyCode) bool {
	if code >= keyCodeCount {
		return false
	}
	return k.hit[code]
}
