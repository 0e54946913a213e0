package gpu

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/uiquad"
)

func TestVertexLayout(t *testing.T) {
	layouts := VertexLayout()
	if len(layouts) != 1 {
		t.Fatalf("expected 1 vertex buffer layout, got %d", len(layouts))
	}

	l := layouts[0]
	if l.ArrayStride != uiquad.VertexStride {
		t.Errorf("stride = %d, want %d", l.ArrayStride, uiquad.VertexStride)
	}
	if len(l.Attributes) != 4 {
		t.Fatalf("expected 4 attributes, got %d", len(l.Attributes))
	}

	want := []struct {
		format   gputypes.VertexFormat
		offset   uint64
		location uint32
	}{
		{gputypes.VertexFormatFloat32x2, uiquad.OffsetPosition, 0},
		{gputypes.VertexFormatFloat32x2, uiquad.OffsetUV, 1},
		{gputypes.VertexFormatFloat32x4, uiquad.OffsetColor, 2},
		{gputypes.VertexFormatUint32, uiquad.OffsetMode, 3},
	}
	for i, w := range want {
		a := l.Attributes[i]
		if a.Format != w.format || uint64(a.Offset) != w.offset || uint32(a.ShaderLocation) != w.location {
			t.Errorf("attribute %d = {%v %d %d}, want {%v %d %d}",
				i, a.Format, a.Offset, a.ShaderLocation, w.format, w.offset, w.location)
		}
	}

	// Mode must be the last attribute and the stride must close over it:
	// a u32 right after the color vec4.
	if last := l.Attributes[3]; uint64(last.Offset)+4 != uint64(l.ArrayStride) {
		t.Errorf("mode attribute at %d leaves gap before stride %d", last.Offset, l.ArrayStride)
	}
}

func TestUIBlendState(t *testing.T) {
	b := UIBlendState()
	if b.Color.SrcFactor != gputypes.BlendFactorSrcAlpha ||
		b.Color.DstFactor != gputypes.BlendFactorOneMinusSrcAlpha {
		t.Errorf("color blend = %+v, want src-alpha over", b.Color)
	}
	if b.Alpha.SrcFactor != gputypes.BlendFactorOne ||
		b.Alpha.DstFactor != gputypes.BlendFactorOne {
		t.Errorf("alpha blend = %+v, want additive", b.Alpha)
	}
}

func TestNewQuadPipeline_NilDevice(t *testing.T) {
	if _, err := NewQuadPipeline(nil, nil); err == nil {
		t.Error("expected error for nil device")
	}
}

func TestQuadPipeline_NilReceiver(t *testing.T) {
	var p *QuadPipeline
	if err := p.Ensure(); err == nil {
		t.Error("Ensure on nil pipeline should fail")
	}
	if err := p.RecordDraws(nil, nil, nil, []DrawRange{{0, 6}}, false); err == nil {
		t.Error("RecordDraws on nil pipeline should fail")
	}
	p.Destroy() // must not panic
}

func TestPipelineFromProvider_Invalid(t *testing.T) {
	if _, err := PipelineFromProvider(nil); err == nil {
		t.Error("expected error for nil provider")
	}
	if _, err := PipelineFromProvider(struct{}{}); err == nil {
		t.Error("expected error for provider without HAL access")
	}
}
