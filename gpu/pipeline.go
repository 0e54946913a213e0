package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/uiquad"
)

// Pipeline errors.
var (
	// ErrNilPipeline is returned when operating on a nil pipeline.
	ErrNilPipeline = errors.New("uiquad: pipeline is nil")

	// ErrNilDevice is returned when a pipeline is created without a device.
	ErrNilDevice = errors.New("uiquad: device and queue are required")

	// ErrNoVertices is returned when RecordDraws is called with no ranges.
	ErrNoVertices = errors.New("uiquad: no vertex ranges to draw")
)

// DrawRange is one contiguous run of vertices sharing a texture binding.
// The external batcher splits the vertex stream wherever the bound texture
// changes; mode changes do not require a split.
type DrawRange struct {
	First uint32
	Count uint32
}

// QuadPipeline owns the GPU objects for the UI quad shading stage: the
// compiled ui.wgsl module, the texture+sampler bind group layout, a default
// linear/clamp sampler, and the render pipeline. Vertex and index buffers
// belong to the caller; the pipeline only records draws over them.
//
// Two pipeline variants are kept: the base variant for passes with a color
// attachment only, and a depth variant (single UI depth plane, LessEqual)
// for passes that carry a depth attachment.
type QuadPipeline struct {
	device hal.Device
	queue  hal.Queue

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline

	pipelineWithDepth hal.RenderPipeline

	// Default sampler for UI textures (linear filtering, clamp to edge).
	sampler hal.Sampler
}

// NewQuadPipeline creates a pipeline bound to the given device and queue.
// GPU objects are created lazily on the first Ensure call.
func NewQuadPipeline(device hal.Device, queue hal.Queue) (*QuadPipeline, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	return &QuadPipeline{device: device, queue: queue}, nil
}

// Ensure creates the base render pipeline and its supporting objects if
// they do not exist yet. Safe to call repeatedly.
func (p *QuadPipeline) Ensure() error {
	if p == nil {
		return ErrNilPipeline
	}
	if p.pipeline != nil {
		return nil
	}
	if err := p.createShared(); err != nil {
		return err
	}

	pipeline, err := p.device.CreateRenderPipeline(p.descriptor("ui_quad_pipeline", nil))
	if err != nil {
		return fmt.Errorf("create ui_quad pipeline: %w", err)
	}
	p.pipeline = pipeline

	uiquad.Logger().Debug("ui_quad pipeline created")
	return nil
}

// EnsureWithDepth creates the depth-attachment pipeline variant. UI draws
// at a single depth plane, so the depth test is LessEqual with writes
// enabled, matching the surrounding pass convention.
func (p *QuadPipeline) EnsureWithDepth() error {
	if p == nil {
		return ErrNilPipeline
	}
	if p.pipelineWithDepth != nil {
		return nil
	}
	if err := p.createShared(); err != nil {
		return err
	}

	depth := &hal.DepthStencilState{
		Format:            gputypes.TextureFormatDepth32Float,
		DepthWriteEnabled: true,
		DepthCompare:      gputypes.CompareFunctionLessEqual,
		StencilFront: hal.StencilFaceState{
			Compare:     gputypes.CompareFunctionAlways,
			FailOp:      hal.StencilOperationKeep,
			DepthFailOp: hal.StencilOperationKeep,
			PassOp:      hal.StencilOperationKeep,
		},
		StencilBack: hal.StencilFaceState{
			Compare:     gputypes.CompareFunctionAlways,
			FailOp:      hal.StencilOperationKeep,
			DepthFailOp: hal.StencilOperationKeep,
			PassOp:      hal.StencilOperationKeep,
		},
		StencilReadMask:  0x00,
		StencilWriteMask: 0x00,
	}

	pipeline, err := p.device.CreateRenderPipeline(p.descriptor("ui_quad_pipeline_depth", depth))
	if err != nil {
		return fmt.Errorf("create ui_quad depth pipeline: %w", err)
	}
	p.pipelineWithDepth = pipeline

	uiquad.Logger().Debug("ui_quad depth pipeline created")
	return nil
}

// createShared creates the shader module, bind group layout, pipeline
// layout, and default sampler shared by both pipeline variants.
func (p *QuadPipeline) createShared() error {
	if p.shader != nil {
		return nil
	}
	if uiShaderSource == "" {
		return ErrEmptyShaderSource
	}

	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "ui_quad_shader",
		Source: hal.ShaderSource{WGSL: uiShaderSource},
	})
	if err != nil {
		return fmt.Errorf("compile ui_quad shader: %w", err)
	}
	p.shader = shader

	// Bind group layout:
	//   Binding 0: UI texture (texture_2d, fragment)
	//   Binding 1: Sampler (fragment)
	bindLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "ui_quad_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create ui_quad bind layout: %w", err)
	}
	p.bindLayout = bindLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "ui_quad_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("create ui_quad pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	sampler, err := p.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "ui_quad_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		return fmt.Errorf("create ui_quad sampler: %w", err)
	}
	p.sampler = sampler

	return nil
}

// descriptor assembles the render pipeline descriptor for a variant.
func (p *QuadPipeline) descriptor(label string, depth *hal.DepthStencilState) *hal.RenderPipelineDescriptor {
	blend := UIBlendState()
	return &hal.RenderPipelineDescriptor{
		Label:  label,
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: VertexEntryPoint,
			Buffers:    VertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: FragmentEntryPoint,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    gputypes.TextureFormatBGRA8UnormSrgb,
					Blend:     &blend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		DepthStencil: depth,
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	}
}

// CreateBindGroup builds a bind group pairing a texture view with a
// sampler under the pipeline's layout. Pass SamplerHandle zero-value data
// via DefaultSampler when the caller has no custom sampler.
func (p *QuadPipeline) CreateBindGroup(view uintptr, sampler uintptr) (hal.BindGroup, error) {
	if p == nil || p.bindLayout == nil {
		return nil, ErrNilPipeline
	}
	return p.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "ui_quad_bind",
		Layout: p.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.TextureViewBinding{TextureView: view}},
			{Binding: 1, Resource: gputypes.SamplerBinding{Sampler: sampler}},
		},
	})
}

// BindGroupLayout exposes the texture+sampler layout so external resource
// managers can build bind groups themselves.
func (p *QuadPipeline) BindGroupLayout() hal.BindGroupLayout {
	if p == nil {
		return nil
	}
	return p.bindLayout
}

// DefaultSampler returns the pipeline's linear/clamp sampler.
func (p *QuadPipeline) DefaultSampler() hal.Sampler {
	if p == nil {
		return nil
	}
	return p.sampler
}

// RecordDraws records non-indexed draws over the given vertex ranges into
// an existing render pass. The vertex buffer must hold uiquad.EncodeVertices
// output; the bind group pairs the texture covering these ranges with its
// sampler. withDepth selects the depth pipeline variant and requires a
// prior EnsureWithDepth.
func (p *QuadPipeline) RecordDraws(rp hal.RenderPassEncoder, bindGroup hal.BindGroup, vertexBuf hal.Buffer, ranges []DrawRange, withDepth bool) error {
	if p == nil {
		return ErrNilPipeline
	}
	if len(ranges) == 0 {
		return ErrNoVertices
	}

	pipeline := p.pipeline
	if withDepth {
		pipeline = p.pipelineWithDepth
	}
	if pipeline == nil {
		return ErrNilPipeline
	}

	rp.SetPipeline(pipeline)
	rp.SetBindGroup(0, bindGroup, nil)
	rp.SetVertexBuffer(0, vertexBuf, 0)
	for _, r := range ranges {
		if r.Count == 0 {
			continue
		}
		rp.Draw(r.Count, 1, r.First, 0)
	}
	return nil
}

// Destroy releases all GPU objects in reverse creation order. Safe to call
// multiple times or on a pipeline with no allocated resources.
func (p *QuadPipeline) Destroy() {
	if p == nil || p.device == nil {
		return
	}
	if p.pipelineWithDepth != nil {
		p.device.DestroyRenderPipeline(p.pipelineWithDepth)
		p.pipelineWithDepth = nil
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.sampler != nil {
		p.device.DestroySampler(p.sampler)
		p.sampler = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.bindLayout != nil {
		p.device.DestroyBindGroupLayout(p.bindLayout)
		p.bindLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

// UIBlendState is the output-merger convention for UI quads: straight
// alpha for color (src-alpha / one-minus-src-alpha) and additive alpha so
// overlapping translucent quads accumulate coverage.
func UIBlendState() gputypes.BlendState {
	return gputypes.BlendState{
		Color: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorSrcAlpha,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
		Alpha: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOne,
			Operation: gputypes.BlendOperationAdd,
		},
	}
}

// VertexLayout returns the vertex buffer layout for the UI quad pipeline.
// Matches VertexInput in ui.wgsl and the byte layout produced by
// uiquad.EncodeVertices:
//
//	location 0: position (vec2<f32>)  offset  0
//	location 1: uv       (vec2<f32>)  offset  8
//	location 2: color    (vec4<f32>)  offset 16
//	location 3: mode     (u32)        offset 32
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: uiquad.VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: uiquad.OffsetPosition, ShaderLocation: 0},
				{Format: gputypes.VertexFormatFloat32x2, Offset: uiquad.OffsetUV, ShaderLocation: 1},
				{Format: gputypes.VertexFormatFloat32x4, Offset: uiquad.OffsetColor, ShaderLocation: 2},
				{Format: gputypes.VertexFormatUint32, Offset: uiquad.OffsetMode, ShaderLocation: 3},
			},
		},
	}
}
