// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package uipresent

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/uiquad/soft"
)

// Presenter errors.
var (
	// ErrPresenterClosed is returned when operations are attempted on a
	// closed presenter.
	ErrPresenterClosed = errors.New("uipresent: presenter is closed")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("uipresent: nil DeviceProvider")

	// ErrNilFramebuffer is returned when presenting a nil framebuffer.
	ErrNilFramebuffer = errors.New("uipresent: framebuffer is nil")

	// ErrInvalidDrawContext is returned when the draw context cannot
	// draw textures.
	ErrInvalidDrawContext = errors.New("uipresent: dc cannot draw textures")

	// ErrInvalidCreator is returned when the draw context cannot create
	// textures.
	ErrInvalidCreator = errors.New("uipresent: dc cannot create textures")
)

// textureDrawer is the subset of a window draw context this package
// needs. Matches gogpu.Context.AsTextureDrawer.
type textureDrawer interface {
	DrawTexture(tex any, x, y float32) error
	TextureCreator() any
}

// textureCreator matches gpucontext.TextureCreator.
type textureCreator interface {
	NewTextureFromRGBA(width, height int, data []byte) (any, error)
}

// textureUpdater matches gpucontext.TextureUpdater.
type textureUpdater interface {
	UpdateData(data []byte) error
}

// textureDestroyer matches gogpu.Texture.Destroy.
type textureDestroyer interface {
	Destroy()
}

// Presenter uploads a soft framebuffer to a GPU texture and draws it.
// The texture is created lazily on first Present and reused across
// frames; it is recreated only when the framebuffer size changes.
//
// Presenter is NOT safe for concurrent use.
type Presenter struct {
	provider gpucontext.DeviceProvider
	texture  any
	width    int
	height   int
	closed   bool
}

// New creates a Presenter. The provider should come from
// gogpu.App.GPUContextProvider().
func New(provider gpucontext.DeviceProvider) (*Presenter, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	return &Presenter{provider: provider}, nil
}

// Present uploads fb and draws it at the window origin.
func (p *Presenter) Present(dc any, fb *soft.Framebuffer) error {
	return p.PresentAt(dc, fb, 0, 0)
}

// PresentAt uploads fb and draws it at (x, y) in window coordinates.
//
// The framebuffer is converted to premultiplied RGBA for upload, so the
// window composites it with the BlendFactorOne pipeline.
func (p *Presenter) PresentAt(dc any, fb *soft.Framebuffer, x, y float32) error {
	if p.closed {
		return ErrPresenterClosed
	}
	if fb == nil {
		return ErrNilFramebuffer
	}
	drawer, ok := dc.(textureDrawer)
	if !ok {
		return ErrInvalidDrawContext
	}

	img := fb.RGBA()
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	if p.texture == nil || w != p.width || h != p.height {
		if err := p.createTexture(drawer, w, h, img.Pix); err != nil {
			return err
		}
	} else if updater, ok := p.texture.(textureUpdater); ok {
		if err := updater.UpdateData(img.Pix); err != nil {
			return fmt.Errorf("uipresent: texture update failed: %w", err)
		}
	}

	return drawer.DrawTexture(p.texture, x, y)
}

// createTexture replaces the cached texture with one of the given size.
//
// NewTextureFromRGBA waits for the GPU internally, so by the time it
// returns the old texture is no longer referenced by in-flight command
// buffers and can be destroyed.
func (p *Presenter) createTexture(drawer textureDrawer, w, h int, data []byte) error {
	creator, ok := drawer.TextureCreator().(textureCreator)
	if !ok {
		return ErrInvalidCreator
	}

	tex, err := creator.NewTextureFromRGBA(w, h, data)
	if err != nil {
		return fmt.Errorf("uipresent: NewTextureFromRGBA failed: %w", err)
	}
	if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(true)
	}

	if p.texture != nil {
		if destroyer, ok := p.texture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
	}
	p.texture = tex
	p.width = w
	p.height = h
	return nil
}

// Texture returns the cached GPU texture, or nil before the first
// Present.
func (p *Presenter) Texture() any {
	return p.texture
}

// Provider returns the DeviceProvider, or nil if the presenter is
// closed.
func (p *Presenter) Provider() gpucontext.DeviceProvider {
	if p.closed {
		return nil
	}
	return p.provider
}

// Close releases the cached texture. Close is idempotent.
func (p *Presenter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	if p.texture != nil {
		if destroyer, ok := p.texture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		p.texture = nil
	}
	p.provider = nil
	return nil
}
