package render

import "image/color"

// Color is a non-premultiplied RGBA colour with float channels in [0, 1].
// Particles fade by lowering A directly.
type Color struct {
	R, G, B, A float64
}

// Common colours
var (
	Red   = Color{R: 0.9, G: 0.16, B: 0.22, A: 1}
	Green = Color{R: 0, G: 0.89, B: 0.19, A: 1}
	Black = Color{A: 1}
	White = Color{R: 1, G: 1, B: 1, A: 1}
)

// Clamped returns the colour with every channel limited to [0, 1].
func (c Color) Clamped() Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

// WithAlpha returns a copy with the alpha channel replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// NRGBA converts to an 8-bit non-premultiplied colour.
func (c Color) NRGBA() color.NRGBA {
	c = c.Clamped()
	return color.NRGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
