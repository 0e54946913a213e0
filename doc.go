// Package uiquad implements the shading stage for 2D UI quad rendering:
// the per-vertex transform that brings UI geometry into clip space, and the
// per-pixel compositor that combines a sampled texture with a per-vertex
// tint color under a per-primitive rendering mode.
//
// # Overview
//
// UI toolkits emit batches of textured quads: images, solid panels, and
// glyph-mask quads. All of them flow through the same two-stage shader:
//
//   - Vertex stage: position (x, y) in NDC range with y growing downward is
//     mapped to clip space (x, -y, 0, 1). UV, tint color, and the rendering
//     mode are passed through; mode is never interpolated.
//   - Fragment stage: the bound texture is sampled at the interpolated UV,
//     each channel is blended toward 1.0 by the mode factor, and the result
//     is multiplied by the interpolated tint color.
//
// Mode 0 ("texture") leaves the sampled color untouched, so the texture
// carries the visible RGBA. Mode 1 ("mask") forces every channel to 1.0
// before the tint multiply, so the tint alone determines the output. The
// blend is a continuous mix rather than a branch; fractional modes produce
// a proportional blend.
//
// # Packages
//
//   - uiquad (this package): vertex/fragment stage math, vertex records and
//     their GPU buffer encoding, shared by both execution paths.
//   - gpu: the WGSL shader and the wgpu/hal render pipeline that runs the
//     stage on a GPU.
//   - soft: a CPU fallback substrate — texture sampling, attribute
//     interpolation with flat mode, and a parallel per-pixel map.
//   - integration/uipresent: presents a CPU-shaded framebuffer through a
//     gpucontext texture drawer.
//
// Everything surrounding the stage — geometry generation, atlas management,
// draw batching, window/surface handling — is the caller's responsibility.
package uiquad
