package mesh

import "armsim/sim/quarkgl"

// Grid returns ground lines on the XZ plane from -half to +half, one unit apart.
func Grid(half int, c quarkgl.Color) []quarkgl.Line {
	if half < 0 {
		half = 0
	}
	e := float32(half)
	lines := make([]quarkgl.Line, 0, 2*(2*half+1))
	for i := -half; i <= half; i++ {
		f := float32(i)
		lines = append(lines,
			quarkgl.Line{A: quarkgl.V3(f, 0, -e), B: quarkgl.V3(f, 0, e), Color: c},
			quarkgl.Line{A: quarkgl.V3(-e, 0, f), B: quarkgl.V3(e, 0, f), Color: c},
		)
	}
	return lines
}

// Axes returns the world X (red), Y (green) and Z (blue) axes.
func Axes(length float32) []quarkgl.Line {
	o := quarkgl.V3(0, 0, 0)
	return []quarkgl.Line{
		{A: o, B: quarkgl.V3(length, 0, 0), Color: quarkgl.RGB(0xFF, 0, 0)},
		{A: o, B: quarkgl.V3(0, length, 0), Color: quarkgl.RGB(0, 0xFF, 0)},
		{A: o, B: quarkgl.V3(0, 0, length), Color: quarkgl.RGB(0, 0, 0xFF)},
	}
}
