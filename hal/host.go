package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	hostWidth  = 400
	hostHeight = 300
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	title  *hostTitle
}

// New returns a host HAL implementation that logs to stdout.
func New() HAL {
	return newHost(os.Stdout)
}

func newHost(w io.Writer) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{w: w},
		fb:     newHostFramebuffer(hostWidth, hostHeight),
		kbd:    newHostKeyboard(),
		title:  &hostTitle{},
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb, title: h.title} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }

type hostDisplay struct {
	fb    *hostFramebuffer
	title *hostTitle
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }
func (d hostDisplay) SetTitle(s string)        { d.title.set(s) }

// hostTitle holds the latest caption until the window loop picks it up.
type hostTitle struct {
	mu    sync.Mutex
	s     string
	dirty bool
}

func (t *hostTitle) set(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s == t.s {
		return
	}
	t.s = s
	t.dirty = true
}

// take returns the caption if it changed since the last call.
func (t *hostTitle) take() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.dirty {
		return "", false
	}
	t.dirty = false
	return t.s, true
}

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
