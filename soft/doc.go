// Package soft executes the UI quad shading stage on the CPU.
//
// It provides the minimal substrate the stage needs outside a GPU: an RGBA8
// texture with nearest/bilinear sampling and configurable addressing, a
// float framebuffer, and a rasterizer that interpolates the vertex-stage
// outputs across triangles — UV and color linearly, mode flat from the
// provoking vertex — and shades covered pixels in parallel.
//
// The per-pixel math is shared with the GPU path via the root uiquad
// package; soft adds no semantics of its own. It serves as the testing
// ground for the stage and as a fallback when no GPU is available.
package soft
