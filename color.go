package uiquad

import "image/color"

// RGBA is a 4-component float color as it travels through the shading
// stage: unpremultiplied, each channel conventionally in [0, 1].
// Components are float32 to match the GPU vertex layout.
type RGBA struct {
	R, G, B, A float32
}

// Common tints.
var (
	White       = RGBA{1, 1, 1, 1}
	Black       = RGBA{0, 0, 0, 1}
	Transparent = RGBA{0, 0, 0, 0}
)

// Mul returns the component-wise product of c and o.
// This is the tint multiply of the fragment stage.
func (c RGBA) Mul(o RGBA) RGBA {
	return RGBA{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

// Color converts c to the standard color.Color interface.
// Channels are clamped to [0, 1] on conversion.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// FromColor converts a standard color.Color to an unpremultiplied RGBA.
func FromColor(c color.Color) RGBA {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float32(nrgba.R) / 255,
		G: float32(nrgba.G) / 255,
		B: float32(nrgba.B) / 255,
		A: float32(nrgba.A) / 255,
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
