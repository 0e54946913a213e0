// Package gpu runs the UI quad shading stage on a GPU via wgpu/hal.
//
// The package owns the embedded WGSL shader and the render pipeline that
// executes it: vertex buffer layout, texture+sampler bind group, alpha
// blending, and an optional depth variant for passes that carry a depth
// attachment. Buffer upload, texture atlas management, and draw batching
// remain the caller's responsibility; the pipeline only records draws over
// vertex ranges the caller supplies.
package gpu
