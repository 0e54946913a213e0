package soft

import (
	"errors"
	"math"

	"github.com/gogpu/uiquad"
)

// Rasterizer errors.
var (
	// ErrNilFramebuffer is returned when the rasterizer has no target.
	ErrNilFramebuffer = errors.New("soft: framebuffer is nil")

	// ErrNoTexture is returned when drawing without a bound texture.
	ErrNoTexture = errors.New("soft: no texture bound")

	// ErrVertexCount is returned when the vertex count is not a multiple
	// of three.
	ErrVertexCount = errors.New("soft: vertex count must be a multiple of 3")
)

// Rasterizer stands in for the external execution substrate on the CPU:
// it rasterizes triangle-list geometry, interpolates the vertex-stage
// outputs (UV and color linearly, mode flat from the provoking vertex),
// samples the bound texture, and composites each covered pixel through
// the shared fragment-stage math.
//
// Pixels are shaded as a parallel map over the rows each triangle covers;
// triangles are consumed in submission order, so painter's ordering is
// preserved. The output merger applies the same convention as the GPU
// pipeline's blend state: straight-alpha source over for color, additive
// alpha.
type Rasterizer struct {
	fb      *Framebuffer
	pool    *Pool
	tex     *Texture
	sampler Sampler
}

// NewRasterizer creates a rasterizer targeting fb with GOMAXPROCS workers.
func NewRasterizer(fb *Framebuffer) (*Rasterizer, error) {
	return NewRasterizerWithPool(fb, NewPool(0))
}

// NewRasterizerWithPool creates a rasterizer with a caller-owned pool.
func NewRasterizerWithPool(fb *Framebuffer, pool *Pool) (*Rasterizer, error) {
	if fb == nil {
		return nil, ErrNilFramebuffer
	}
	if pool == nil {
		pool = NewPool(0)
	}
	return &Rasterizer{fb: fb, pool: pool}, nil
}

// BindTexture binds the texture and sampler for subsequent draws. The
// binding is read-only and must not be mutated until the draw returns.
func (r *Rasterizer) BindTexture(t *Texture, s Sampler) {
	r.tex = t
	r.sampler = s
}

// DrawTriangles shades a triangle list. Every group of three vertices is
// one primitive; the first vertex of each group is the provoking vertex
// whose mode applies to the whole primitive.
//
// Vertices whose modes disagree within one primitive are an upstream
// contract violation: output is still deterministic here (the provoking
// vertex wins, as with GPU flat interpolation) but a warning is logged.
func (r *Rasterizer) DrawTriangles(verts []uiquad.Vertex) error {
	if r.fb == nil {
		return ErrNilFramebuffer
	}
	if r.tex == nil {
		return ErrNoTexture
	}
	if len(verts)%3 != 0 {
		return ErrVertexCount
	}

	warned := false
	for i := 0; i+2 < len(verts); i += 3 {
		if !warned && (verts[i].Mode != verts[i+1].Mode || verts[i].Mode != verts[i+2].Mode) {
			uiquad.Logger().Warn("mixed modes within one primitive; provoking vertex wins",
				"provoking", verts[i].Mode)
			warned = true
		}
		r.shadeTriangle(
			uiquad.TransformVertex(verts[i]),
			uiquad.TransformVertex(verts[i+1]),
			uiquad.TransformVertex(verts[i+2]),
		)
	}
	return nil
}

// DrawQuad shades a quad given its corners in order (top-left, top-right,
// bottom-right, bottom-left), split into two triangles sharing the
// provoking corner so both halves carry the same flat mode.
func (r *Rasterizer) DrawQuad(tl, tr, br, bl uiquad.Vertex) error {
	return r.DrawTriangles([]uiquad.Vertex{tl, tr, br, tl, br, bl})
}

// shadeTriangle rasterizes one primitive from its vertex-stage outputs.
// a is the provoking vertex.
func (r *Rasterizer) shadeTriangle(a, b, c uiquad.Varyings) {
	// Clip space to framebuffer coordinates. Clip y grows up, rows grow
	// down, so y flips back here; together with the vertex stage's
	// negation, input y-down geometry lands in its natural orientation.
	w, h := float64(r.fb.width), float64(r.fb.height)
	ax := (float64(a.Position[0]) + 1) / 2 * w
	ay := (1 - float64(a.Position[1])) / 2 * h
	bx := (float64(b.Position[0]) + 1) / 2 * w
	by := (1 - float64(b.Position[1])) / 2 * h
	cx := (float64(c.Position[0]) + 1) / 2 * w
	cy := (1 - float64(c.Position[1])) / 2 * h

	area := edge(ax, ay, bx, by, cx, cy)
	if area == 0 {
		return
	}
	// Normalize to counter-clockwise so the inside test is sign-free.
	// UI quads are drawn without culling, so both windings arrive.
	if area < 0 {
		bx, cx = cx, bx
		by, cy = cy, by
		b, c = c, b
		area = -area
	}

	minX := int(math.Floor(min3(ax, bx, cx)))
	maxX := int(math.Ceil(max3(ax, bx, cx)))
	minY := int(math.Floor(min3(ay, by, cy)))
	maxY := int(math.Ceil(max3(ay, by, cy)))
	minX = maxInt(minX, 0)
	minY = maxInt(minY, 0)
	maxX = minInt(maxX, r.fb.width)
	maxY = minInt(maxY, r.fb.height)
	if minX >= maxX || minY >= maxY {
		return
	}

	// Top-left fill rule keeps the shared diagonal of a quad from being
	// shaded twice.
	tl0 := isTopLeft(bx, by, cx, cy)
	tl1 := isTopLeft(cx, cy, ax, ay)
	tl2 := isTopLeft(ax, ay, bx, by)

	mode := float32(a.Mode)
	rows := maxY - minY
	r.pool.For(rows, func(row int) {
		y := minY + row
		py := float64(y) + 0.5
		for x := minX; x < maxX; x++ {
			px := float64(x) + 0.5

			w0 := edge(bx, by, cx, cy, px, py)
			w1 := edge(cx, cy, ax, ay, px, py)
			w2 := edge(ax, ay, bx, by, px, py)
			if !covered(w0, tl0) || !covered(w1, tl1) || !covered(w2, tl2) {
				continue
			}

			l0 := float32(w0 / area)
			l1 := float32(w1 / area)
			l2 := float32(w2 / area)

			u := l0*a.UV[0] + l1*b.UV[0] + l2*c.UV[0]
			v := l0*a.UV[1] + l1*b.UV[1] + l2*c.UV[1]
			tint := uiquad.RGBA{
				R: l0*a.Color.R + l1*b.Color.R + l2*c.Color.R,
				G: l0*a.Color.G + l1*b.Color.G + l2*c.Color.G,
				B: l0*a.Color.B + l1*b.Color.B + l2*c.Color.B,
				A: l0*a.Color.A + l1*b.Color.A + l2*c.Color.A,
			}

			sampled := r.sampler.Sample(r.tex, u, v)
			out := uiquad.Composite(sampled, tint, mode)
			r.fb.set(x, y, blendOver(out, r.fb.At(x, y)))
		}
	})
}

// blendOver applies the output-merger convention of the UI pipeline:
// straight-alpha source over for color, additive alpha clamped to 1.
func blendOver(src, dst uiquad.RGBA) uiquad.RGBA {
	inv := 1 - src.A
	a := src.A + dst.A
	if a > 1 {
		a = 1
	}
	return uiquad.RGBA{
		R: src.R*src.A + dst.R*inv,
		G: src.G*src.A + dst.G*inv,
		B: src.B*src.A + dst.B*inv,
		A: a,
	}
}

// edge is the signed parallelogram area of (a, b, p); positive when p is
// to the left of a→b.
func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// covered reports whether an edge weight admits the pixel under the
// top-left fill rule.
func covered(w float64, topLeft bool) bool {
	if w > 0 {
		return true
	}
	return w == 0 && topLeft
}

// isTopLeft reports whether the directed edge a→b is a top or left edge
// of an area-normalized triangle in y-down screen space. With this edge
// function, interior weights are positive when a top edge points right
// and a left edge points up.
func isTopLeft(ax, ay, bx, by float64) bool {
	if ay == by {
		return bx > ax // top edge
	}
	return by < ay // left edge
}

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
