//go:build cgo

package hal

import (
	"context"
	"errors"
	"os"

	"armsim/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// TPS is the fixed update rate of the window loop.
const TPS = 60

// RunWindow starts a desktop window that displays the framebuffer and forwards keyboard input.
// It blocks until the window closes, the step function returns ErrQuit or ctx
// is cancelled; in the last case it returns ctx.Err().
func RunWindow(ctx context.Context, newApp func(HAL) StepFunc) error {
	h := newHost(os.Stdout)
	step := newApp(h)

	g := &hostGame{ctx: ctx, h: h, step: step}
	ebiten.SetWindowTitle(windowTitle(""))
	ebiten.SetWindowSize(h.fb.width*2, h.fb.height*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(TPS)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return ctx.Err()
	}
	return err
}

func windowTitle(status string) string {
	base := "armsim (" + buildinfo.Short() + ")"
	if status == "" {
		return base
	}
	return status
}

type hostGame struct {
	ctx     context.Context
	h       *hostHAL
	fbImg   *ebiten.Image
	pix     []byte
	scratch []byte
	step    StepFunc
}

func (g *hostGame) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	g.h.kbd.poll()
	if g.step != nil {
		if err := g.step(1.0 / float64(ebiten.TPS())); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	if s, ok := g.h.title.take(); ok {
		ebiten.SetWindowTitle(windowTitle(s))
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		g.scratch = make([]byte, len(fb.buf))
		g.pix = make([]byte, fb.width*fb.height*4)
	}

	fb.snapshotRGB565(g.scratch)
	expandRGB565(g.pix, g.scratch)

	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
