package uiquad

// Composite runs the fragment stage math for one covered pixel: blend the
// sampled texture color toward white by the mode factor, then multiply by
// the interpolated tint.
//
// The mode blend is a continuous per-channel mix, alpha included:
//
//	channel = sampled*(1-mode) + 1*mode
//
// Mode 0 yields the sampled color unchanged, mode 1 yields (1,1,1,1) so
// the tint fully determines the output. Fractional modes are accepted and
// produce a proportional blend; this mirrors the GPU shader, which uses a
// mix instead of a branch to keep parallel invocations convergent.
//
// The tint multiply makes Color simultaneously a recolor and, through its
// alpha, a per-primitive opacity modifier. Composite is pure: no state, no
// validation, no error paths.
func Composite(sampled, tint RGBA, mode float32) RGBA {
	blended := RGBA{
		R: mix(sampled.R, 1, mode),
		G: mix(sampled.G, 1, mode),
		B: mix(sampled.B, 1, mode),
		A: mix(sampled.A, 1, mode),
	}
	return tint.Mul(blended)
}

// ShadeFragment composites using the varyings produced by the rasterizer.
// The sampled value must come from the externally bound texture+sampler at
// the interpolated UV.
func ShadeFragment(sampled RGBA, vy Varyings) RGBA {
	return Composite(sampled, vy.Color, float32(vy.Mode))
}

// mix linearly interpolates from a to b by t, matching WGSL mix().
func mix(a, b, t float32) float32 {
	return a*(1-t) + b*t
}
