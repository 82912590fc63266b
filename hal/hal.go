package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrQuit is returned by a step function to stop the host loop cleanly.
var ErrQuit = errors.New("quit requested")

// StepFunc advances the application by dt seconds. The host calls it once per
// tick from a single goroutine.
type StepFunc func(dt float64) error

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyPageUp
	KeyPageDown
	KeyA
	KeyD
	KeyE
	KeyF
	KeyQ
	KeyR
	KeyS
	KeyW
	KeyX
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard provides key events (best-effort on each platform).
//
// Every press is followed by a release for the same code once the key goes up.
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer and the window caption.
type Display interface {
	Framebuffer() Framebuffer
	SetTitle(s string)
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL provides the only contact point between the simulator and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}
