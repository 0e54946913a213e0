package soft

import (
	"errors"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/uiquad"
)

// Texture errors.
var (
	// ErrInvalidTextureSize is returned for non-positive dimensions.
	ErrInvalidTextureSize = errors.New("soft: texture dimensions must be positive")
)

// Texture is an 8-bit RGBA image bound read-only for the duration of a
// draw. Pixels are stored row-major, unpremultiplied, 4 bytes per pixel.
type Texture struct {
	width  int
	height int
	pix    []uint8
}

// NewTexture creates a zeroed (transparent black) texture.
func NewTexture(width, height int) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidTextureSize
	}
	return &Texture{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}, nil
}

// NewTextureFromImage converts any image.Image into a texture, going
// through NRGBA so the stored channels stay unpremultiplied.
func NewTextureFromImage(img image.Image) (*Texture, error) {
	bounds := img.Bounds()
	t, err := NewTexture(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	dst := &image.NRGBA{
		Pix:    t.pix,
		Stride: t.width * 4,
		Rect:   image.Rect(0, 0, t.width, t.height),
	}
	xdraw.Draw(dst, dst.Rect, img, bounds.Min, xdraw.Src)
	return t, nil
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.height }

// SetRGBA writes one pixel. Intended for test fixtures and procedural
// fills; out-of-bounds coordinates are ignored.
func (t *Texture) SetRGBA(x, y int, c uiquad.RGBA) {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return
	}
	i := (y*t.width + x) * 4
	t.pix[i+0] = floatToByte(c.R)
	t.pix[i+1] = floatToByte(c.G)
	t.pix[i+2] = floatToByte(c.B)
	t.pix[i+3] = floatToByte(c.A)
}

// Fill sets every pixel to c.
func (t *Texture) Fill(c uiquad.RGBA) {
	r, g, b, a := floatToByte(c.R), floatToByte(c.G), floatToByte(c.B), floatToByte(c.A)
	for i := 0; i < len(t.pix); i += 4 {
		t.pix[i+0] = r
		t.pix[i+1] = g
		t.pix[i+2] = b
		t.pix[i+3] = a
	}
}

// fetch reads the texel at (x, y), which must be in bounds.
func (t *Texture) fetch(x, y int) uiquad.RGBA {
	i := (y*t.width + x) * 4
	return uiquad.RGBA{
		R: float32(t.pix[i+0]) / 255,
		G: float32(t.pix[i+1]) / 255,
		B: float32(t.pix[i+2]) / 255,
		A: float32(t.pix[i+3]) / 255,
	}
}

func floatToByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
