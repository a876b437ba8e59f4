// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/dial"
	"github.com/gogpu/dial/backend"
	"github.com/gogpu/dial/clock"
	"github.com/gogpu/dial/render"
)

// Backend is the GPU rendering backend. It owns the HAL device, the
// shader pipeline set, and one frame renderer per target size.
type Backend struct {
	mu          sync.Mutex
	dev         *gpuDevice
	pipelines   *pipelineSet
	renderer    *Renderer
	width       int
	height      int
	initialized bool
}

// init registers the GPU backend on package import. It takes priority
// over the software backend in default selection.
func init() {
	backend.Register(backend.BackendWGPU, func() backend.RenderBackend {
		return New()
	})
}

// New creates a new GPU rendering backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backend.BackendWGPU
}

// Init opens a standalone HAL device and compiles the clock shaders.
// Returns an error when no usable GPU is available; the caller can
// fall back to the software backend.
func (b *Backend) Init() error {
	dev, err := openDevice()
	if err != nil {
		return fmt.Errorf("%w: %v", backend.ErrBackendNotAvailable, err)
	}
	return b.attach(dev)
}

// InitWithProvider initializes the backend on a shared device from an
// external GPU context (e.g., a gogpu window). The provider must expose
// HAL device and queue handles.
func (b *Backend) InitWithProvider(provider gpucontext.DeviceProvider) error {
	dev, err := deviceFromProvider(provider)
	if err != nil {
		return fmt.Errorf("%w: %v", backend.ErrBackendNotAvailable, err)
	}
	return b.attach(dev)
}

// attach adopts the device and builds the pipeline set. A pipeline
// failure is not fatal: uploads still run and frames still render.
func (b *Backend) attach(dev *gpuDevice) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closeLocked()
	b.dev = dev

	pipelines, err := newPipelineSet(dev.device)
	if err != nil {
		dial.Logger().Warn("wgpu: pipeline init failed, shaders unavailable", "error", err)
	} else {
		b.pipelines = pipelines
	}

	b.initialized = true
	dial.Logger().Info("wgpu: backend initialized", "adapter", dev.adapter)
	return nil
}

// Close releases all backend resources.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closeLocked()
}

func (b *Backend) closeLocked() {
	if b.renderer != nil {
		b.renderer.Close()
		b.renderer = nil
	}
	if b.pipelines != nil {
		b.pipelines.Close()
		b.pipelines = nil
	}
	if b.dev != nil {
		b.dev.Close()
		b.dev = nil
	}
	b.initialized = false
}

// NewRenderer creates a frame renderer for the given dimensions.
// Returns nil if the backend is not initialized or the dimensions are
// invalid.
func (b *Backend) NewRenderer(width, height int) render.Renderer {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		dial.Logger().Warn("wgpu: NewRenderer called before Init")
		return nil
	}
	r, err := NewRenderer(b.dev.device, b.dev.queue, width, height)
	if err != nil {
		dial.Logger().Warn("wgpu: renderer creation failed",
			"width", width, "height", height, "error", err)
		return nil
	}
	return r
}

// RenderFrame renders one frame of the scene to the target pixmap.
func (b *Backend) RenderFrame(target *dial.Pixmap, s *clock.Scene) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return backend.ErrNotInitialized
	}
	if target == nil {
		return backend.ErrNilTarget
	}
	if s == nil {
		return backend.ErrNilScene
	}

	width := target.Width()
	height := target.Height()

	// Create or resize the renderer as needed.
	if b.renderer == nil || b.width != width || b.height != height {
		if b.renderer != nil {
			b.renderer.Close()
			b.renderer = nil
		}
		r, err := NewRenderer(b.dev.device, b.dev.queue, width, height)
		if err != nil {
			return err
		}
		b.renderer = r
		b.width = width
		b.height = height
	}

	return b.renderer.RenderFrame(render.NewPixmapTarget(target), s)
}
