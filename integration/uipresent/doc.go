// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package uipresent bridges the CPU reference rasterizer and
// GPU-accelerated windows.
//
// The soft package shades UI quads into an in-memory framebuffer; this
// package uploads that framebuffer as a GPU texture and draws it into a
// window each frame. The data flow is:
//
//	soft.Framebuffer (CPU) -> GPU texture -> window
//
// # Usage
//
//	p, err := uipresent.New(app.GPUContextProvider())
//	...
//	app.OnDraw(func(dc *gogpu.Context) {
//	    p.Present(dc.AsTextureDrawer(), fb)
//	})
//
// # Integration Without Circular Imports
//
// The draw context is accepted as an untyped value and narrowed through
// small local interfaces, so this package depends only on gpucontext
// and never on a concrete window implementation.
//
// Presenter is NOT safe for concurrent use.
package uipresent
