package gpu

import (
	"errors"

	"github.com/gogpu/wgpu/hal"
)

// Provider errors.
var (
	// ErrNilProvider is returned when PipelineFromProvider gets nil.
	ErrNilProvider = errors.New("uiquad: device provider is nil")

	// ErrNoHALAccess is returned when the provider does not expose HAL
	// device and queue handles.
	ErrNoHALAccess = errors.New("uiquad: provider does not expose HAL device/queue")
)

// PipelineFromProvider creates a QuadPipeline from a shared device
// provider, avoiding a second GPU instance when the application already
// owns one (e.g. a gogpu context). The provider must implement
// HalDevice() any and HalQueue() any returning hal.Device and hal.Queue.
func PipelineFromProvider(provider any) (*QuadPipeline, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}

	hp, ok := provider.(interface {
		HalDevice() any
		HalQueue() any
	})
	if !ok {
		return nil, ErrNoHALAccess
	}

	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, ErrNoHALAccess
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, ErrNoHALAccess
	}

	return NewQuadPipeline(device, queue)
}
