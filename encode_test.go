package uiquad

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestEncodeVertices_Layout(t *testing.T) {
	v := Vertex{
		Position: [2]float32{0.25, -0.5},
		UV:       [2]float32{0.125, 1},
		Color:    RGBA{1, 0.5, 0.25, 0.75},
		Mode:     ModeMask,
	}

	buf := EncodeVertices([]Vertex{v})
	if len(buf) != VertexStride {
		t.Fatalf("encoded length = %d, want %d", len(buf), VertexStride)
	}

	f32 := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}

	checks := []struct {
		name string
		off  int
		want float32
	}{
		{"position.x", OffsetPosition, 0.25},
		{"position.y", OffsetPosition + 4, -0.5},
		{"uv.x", OffsetUV, 0.125},
		{"uv.y", OffsetUV + 4, 1},
		{"color.r", OffsetColor, 1},
		{"color.g", OffsetColor + 4, 0.5},
		{"color.b", OffsetColor + 8, 0.25},
		{"color.a", OffsetColor + 12, 0.75},
	}
	for _, c := range checks {
		if got := f32(c.off); got != c.want {
			t.Errorf("%s at offset %d = %v, want %v", c.name, c.off, got, c.want)
		}
	}

	if mode := binary.LittleEndian.Uint32(buf[OffsetMode:]); mode != ModeMask {
		t.Errorf("mode at offset %d = %d, want %d", OffsetMode, mode, ModeMask)
	}
}

func TestEncodeVertices_Stride(t *testing.T) {
	verts := make([]Vertex, 6) // one quad as two triangles
	for i := range verts {
		verts[i].Mode = uint32(i)
	}

	buf := EncodeVertices(verts)
	if len(buf) != 6*VertexStride {
		t.Fatalf("encoded length = %d, want %d", len(buf), 6*VertexStride)
	}
	for i := range verts {
		mode := binary.LittleEndian.Uint32(buf[i*VertexStride+OffsetMode:])
		if mode != uint32(i) {
			t.Errorf("vertex %d mode = %d, want %d", i, mode, i)
		}
	}
}

func TestEncodeVertices_Empty(t *testing.T) {
	if buf := EncodeVertices(nil); len(buf) != 0 {
		t.Errorf("encoding nil slice produced %d bytes", len(buf))
	}
}
