package soft

import (
	"errors"
	"image"

	"github.com/gogpu/uiquad"
)

// ErrInvalidFramebufferSize is returned for non-positive dimensions.
var ErrInvalidFramebufferSize = errors.New("soft: framebuffer dimensions must be positive")

// Framebuffer is the render target of the CPU path: one float RGBA per
// pixel, row-major. Keeping float channels avoids quantizing the stage
// output before the caller decides how to consume it.
type Framebuffer struct {
	width  int
	height int
	pix    []uiquad.RGBA
}

// NewFramebuffer creates a framebuffer cleared to transparent black.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidFramebufferSize
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]uiquad.RGBA, width*height),
	}, nil
}

// Width returns the framebuffer width in pixels.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the framebuffer height in pixels.
func (f *Framebuffer) Height() int { return f.height }

// Clear fills every pixel with c.
func (f *Framebuffer) Clear(c uiquad.RGBA) {
	for i := range f.pix {
		f.pix[i] = c
	}
}

// At returns the pixel at (x, y). Out-of-bounds reads return transparent
// black.
func (f *Framebuffer) At(x, y int) uiquad.RGBA {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return uiquad.Transparent
	}
	return f.pix[y*f.width+x]
}

// set writes the pixel at (x, y), which must be in bounds.
func (f *Framebuffer) set(x, y int, c uiquad.RGBA) {
	f.pix[y*f.width+x] = c
}

// Image converts the framebuffer to an 8-bit NRGBA image for encoding or
// upload. Channels are clamped to [0, 1] on conversion.
func (f *Framebuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.pix[y*f.width+x]
			i := img.PixOffset(x, y)
			img.Pix[i+0] = floatToByte(c.R)
			img.Pix[i+1] = floatToByte(c.G)
			img.Pix[i+2] = floatToByte(c.B)
			img.Pix[i+3] = floatToByte(c.A)
		}
	}
	return img
}

// RGBA converts the framebuffer to a premultiplied image.RGBA, the layout
// most texture upload paths expect.
func (f *Framebuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.pix[y*f.width+x]
			i := img.PixOffset(x, y)
			img.Pix[i+0] = floatToByte(c.R * c.A)
			img.Pix[i+1] = floatToByte(c.G * c.A)
			img.Pix[i+2] = floatToByte(c.B * c.A)
			img.Pix[i+3] = floatToByte(c.A)
		}
	}
	return img
}
