// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"github.com/gogpu/dial"
	"github.com/gogpu/dial/clock"
	"github.com/gogpu/dial/render"
)

// SoftwareBackend is the CPU-based rendering backend. It wraps
// render.SoftwareRenderer, reusing one renderer per target size.
type SoftwareBackend struct {
	initialized bool
	renderer    *render.SoftwareRenderer
	width       int
	height      int
}

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() RenderBackend {
		return &SoftwareBackend{}
	})
}

// NewSoftwareBackend creates a new software rendering backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return BackendSoftware
}

// Init initializes the backend.
func (b *SoftwareBackend) Init() error {
	b.initialized = true
	return nil
}

// Close releases all backend resources.
func (b *SoftwareBackend) Close() {
	b.renderer = nil
	b.initialized = false
}

// NewRenderer creates a frame renderer for the given dimensions.
func (b *SoftwareBackend) NewRenderer(width, height int) render.Renderer {
	r, err := render.NewSoftwareRenderer(width, height)
	if err != nil {
		dial.Logger().Warn("software: invalid renderer dimensions",
			"width", width, "height", height)
		return nil
	}
	return r
}

// RenderFrame renders one frame of the scene to the target pixmap.
func (b *SoftwareBackend) RenderFrame(target *dial.Pixmap, s *clock.Scene) error {
	if !b.initialized {
		return ErrNotInitialized
	}
	if target == nil {
		return ErrNilTarget
	}
	if s == nil {
		return ErrNilScene
	}

	width := target.Width()
	height := target.Height()

	// Create or resize the renderer as needed.
	if b.renderer == nil || b.width != width || b.height != height {
		r, err := render.NewSoftwareRenderer(width, height)
		if err != nil {
			return err
		}
		b.renderer = r
		b.width = width
		b.height = height
	}

	return b.renderer.RenderFrame(render.NewPixmapTarget(target), s)
}
