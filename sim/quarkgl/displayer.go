package quarkgl

import (
	"image/color"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = FontTarget{}

// FontTarget lets tinyfont draw into an RGB565Target.
type FontTarget struct {
	T *RGB565Target
}

func (d FontTarget) Size() (x, y int16) {
	if !d.T.ok() {
		return 0, 0
	}
	return int16(d.T.W), int16(d.T.H)
}

func (d FontTarget) SetPixel(x, y int16, c color.RGBA) {
	d.T.SetPixel(int(x), int(y), RGB(c.R, c.G, c.B))
}

func (d FontTarget) Display() error { return nil }
