package gpu

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gogpu/naga"
)

// Embedded WGSL shader source, compiled at build time via go:embed.
//
//go:embed shaders/ui.wgsl
var uiShaderSource string

// Shader entry point names in ui.wgsl.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// ErrEmptyShaderSource is returned when the embedded shader is missing.
var ErrEmptyShaderSource = errors.New("uiquad: ui shader source is empty")

// UIShaderSource returns the WGSL source for the UI quad shading stage.
func UIShaderSource() string {
	return uiShaderSource
}

// CompileToSPIRV compiles the WGSL source to a SPIR-V uint32 word slice,
// for backends that consume SPIR-V instead of WGSL directly.
func CompileToSPIRV(wgslSource string) ([]uint32, error) {
	if wgslSource == "" {
		return nil, ErrEmptyShaderSource
	}

	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("uiquad: compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}
