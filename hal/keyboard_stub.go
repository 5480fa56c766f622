//go:build !cgo

package hal

type hostKeyboard struct{}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{}
}

// No keyboard support without the window backend.
func (k *hostKeyboard) poll() {}

func (k *hostKeyboard) Pressed(KeyCode) bool     { return false }
func (k *hostKeyboard) JustPressed(KeyCode) bool { return false }
