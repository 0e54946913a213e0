package soft

import (
	"math"

	"github.com/gogpu/uiquad"
)

// Filter selects how texels are combined when a sample point falls
// between pixel centers.
type Filter uint8

const (
	// FilterNearest selects the closest texel (no interpolation).
	FilterNearest Filter = iota

	// FilterLinear interpolates between the 4 neighboring texels.
	FilterLinear
)

// String returns a string representation of the filter.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "Nearest"
	case FilterLinear:
		return "Linear"
	default:
		return "Unknown"
	}
}

// AddressMode resolves texture coordinates outside [0, 1]. The shading
// stage never validates UV; whatever the rasterizer interpolates is
// resolved here, mirroring a GPU sampler's addressing.
type AddressMode uint8

const (
	// AddressClampToEdge clamps coordinates to the edge texel.
	AddressClampToEdge AddressMode = iota

	// AddressRepeat tiles the texture.
	AddressRepeat

	// AddressMirrorRepeat tiles the texture, mirroring every other tile.
	AddressMirrorRepeat
)

// String returns a string representation of the address mode.
func (m AddressMode) String() string {
	switch m {
	case AddressClampToEdge:
		return "ClampToEdge"
	case AddressRepeat:
		return "Repeat"
	case AddressMirrorRepeat:
		return "MirrorRepeat"
	default:
		return "Unknown"
	}
}

// Sampler holds the filtering and addressing configuration applied when
// the fragment stage samples the bound texture. The zero value is a
// nearest/clamp sampler.
type Sampler struct {
	Filter   Filter
	AddressU AddressMode
	AddressV AddressMode
}

// LinearClamp is the default UI sampler: bilinear filtering, clamped
// addressing. Matches the GPU pipeline's default sampler.
func LinearClamp() Sampler {
	return Sampler{Filter: FilterLinear}
}

// Sample reads the texture at normalized coordinates (u, v) where (0,0)
// is the top-left and (1,1) the bottom-right corner. Out-of-range
// coordinates are resolved by the sampler's address modes.
func (s Sampler) Sample(t *Texture, u, v float32) uiquad.RGBA {
	switch s.Filter {
	case FilterLinear:
		return s.sampleLinear(t, u, v)
	default:
		return s.sampleNearest(t, u, v)
	}
}

func (s Sampler) sampleNearest(t *Texture, u, v float32) uiquad.RGBA {
	x := int(math.Floor(float64(u) * float64(t.width)))
	y := int(math.Floor(float64(v) * float64(t.height)))
	x = wrap(x, t.width, s.AddressU)
	y = wrap(y, t.height, s.AddressV)
	return t.fetch(x, y)
}

func (s Sampler) sampleLinear(t *Texture, u, v float32) uiquad.RGBA {
	// Continuous pixel coordinates with texel centers at +0.5.
	fx := float64(u)*float64(t.width) - 0.5
	fy := float64(v)*float64(t.height) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := float32(fx - float64(x0))
	ty := float32(fy - float64(y0))

	x0w := wrap(x0, t.width, s.AddressU)
	x1w := wrap(x0+1, t.width, s.AddressU)
	y0w := wrap(y0, t.height, s.AddressV)
	y1w := wrap(y0+1, t.height, s.AddressV)

	c00 := t.fetch(x0w, y0w)
	c10 := t.fetch(x1w, y0w)
	c01 := t.fetch(x0w, y1w)
	c11 := t.fetch(x1w, y1w)

	top := lerpRGBA(c00, c10, tx)
	bottom := lerpRGBA(c01, c11, tx)
	return lerpRGBA(top, bottom, ty)
}

// wrap resolves a texel index against the texture extent.
func wrap(i, n int, mode AddressMode) int {
	switch mode {
	case AddressRepeat:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	case AddressMirrorRepeat:
		period := 2 * n
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - 1 - i
		}
		return i
	default: // AddressClampToEdge
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
}

func lerpRGBA(a, b uiquad.RGBA, t float32) uiquad.RGBA {
	return uiquad.RGBA{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}
