package uiquad

import (
	"encoding/binary"
	"math"
)

// GPU vertex buffer layout. Must match VertexInput in gpu/shaders/ui.wgsl
// and the attribute descriptors in gpu.VertexLayout:
//
//	position (vec2<f32>) offset  0  (location 0)
//	uv       (vec2<f32>) offset  8  (location 1)
//	color    (vec4<f32>) offset 16  (location 2)
//	mode     (u32)       offset 32  (location 3)
const (
	// VertexStride is the byte stride per vertex.
	VertexStride = 36

	// Attribute byte offsets within one vertex.
	OffsetPosition = 0
	OffsetUV       = 8
	OffsetColor    = 16
	OffsetMode     = 32
)

// EncodeVertices packs a vertex stream into the little-endian byte layout
// expected by the GPU vertex buffer. The result is len(verts)*VertexStride
// bytes, ready for buffer upload.
func EncodeVertices(verts []Vertex) []byte {
	buf := make([]byte, 0, len(verts)*VertexStride)
	for _, v := range verts {
		buf = AppendVertex(buf, v)
	}
	return buf
}

// AppendVertex appends one encoded vertex to dst and returns the extended
// slice. Used by callers that stream vertices into a reused buffer.
func AppendVertex(dst []byte, v Vertex) []byte {
	var tmp [VertexStride]byte
	putF32(tmp[OffsetPosition:], v.Position[0])
	putF32(tmp[OffsetPosition+4:], v.Position[1])
	putF32(tmp[OffsetUV:], v.UV[0])
	putF32(tmp[OffsetUV+4:], v.UV[1])
	putF32(tmp[OffsetColor:], v.Color.R)
	putF32(tmp[OffsetColor+4:], v.Color.G)
	putF32(tmp[OffsetColor+8:], v.Color.B)
	putF32(tmp[OffsetColor+12:], v.Color.A)
	binary.LittleEndian.PutUint32(tmp[OffsetMode:], v.Mode)
	return append(dst, tmp[:]...)
}

func putF32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}
