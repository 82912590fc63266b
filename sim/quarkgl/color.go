package quarkgl

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xFF} }

// RGBf builds a color from 0..1 channels.
func RGBf(r, g, b float32) Color {
	ch := func(v float32) uint8 { return uint8(Clamp01(v)*255 + 0.5) }
	return RGB(ch(r), ch(g), ch(b))
}

// MulScalar scales the color channels by s, clamped to 0..1. Alpha is kept.
func (c Color) MulScalar(s Scalar) Color {
	t := uint32(Clamp01(s) * 255)
	mul := func(ch uint8) uint8 {
		return uint8((uint32(ch) * t) / 255)
	}
	return Color{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}
