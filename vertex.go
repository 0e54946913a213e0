package uiquad

// Mode selects how the fragment stage combines the sampled texture with
// the per-vertex tint. It is carried as an integer vertex attribute and
// must be identical for all vertices of one primitive: the rasterizer
// propagates it flat (no interpolation), so mixing modes within a
// primitive leaves the fragment output undefined.
type Mode = uint32

const (
	// ModeTexture uses the sampled texture as-is; the texture carries the
	// visible RGBA and the tint modulates it.
	ModeTexture Mode = 0

	// ModeMask overrides every sampled channel (alpha included) with 1.0
	// before the tint multiply, so the tint alone determines the output.
	// Used for single-channel coverage/glyph masks.
	ModeMask Mode = 1
)

// Vertex is one element of the UI vertex stream. Position is in a
// normalized device coordinate range with the UI convention of y growing
// downward; UV addresses the bound texture in [0,1]×[0,1] (out-of-range
// values are resolved by the sampler's address mode, not here).
//
// The vertex stream is immutable for the lifetime of a draw.
type Vertex struct {
	Position [2]float32
	UV       [2]float32
	Color    RGBA
	Mode     Mode
}

// Varyings is the vertex stage output: the clip-space position handed to
// the rasterizer plus the interpolants carried to the fragment stage.
// UV and Color are linearly interpolated across the primitive; Mode is
// flat — every fragment observes the provoking vertex's exact value.
type Varyings struct {
	Position [4]float32
	UV       [2]float32
	Color    RGBA
	Mode     Mode
}

// TransformVertex runs the vertex stage for a single vertex.
//
// The only arithmetic is the y negation: UI layout has a top-left origin
// with y growing down, clip space grows up. X is unchanged, Z is fixed at
// 0 (UI draws at a single depth plane) and W at 1 (no perspective).
// Every input produces a defined output; there are no failure modes.
func TransformVertex(v Vertex) Varyings {
	return Varyings{
		Position: [4]float32{v.Position[0], -v.Position[1], 0, 1},
		UV:       v.UV,
		Color:    v.Color,
		Mode:     v.Mode,
	}
}
