// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package backend selects and manages frame rendering backends.
package backend

import (
	"errors"

	"github.com/gogpu/dial"
	"github.com/gogpu/dial/clock"
	"github.com/gogpu/dial/render"
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU reference backend.
	BackendSoftware = "software"
	// BackendWGPU is the name of the Pure Go GPU backend (gogpu/wgpu).
	BackendWGPU = "wgpu"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")

	// ErrNilTarget is returned when the render target is nil.
	ErrNilTarget = errors.New("backend: nil target")

	// ErrNilScene is returned when the scene is nil.
	ErrNilScene = errors.New("backend: nil scene")
)

// RenderBackend is the interface for clock frame rendering backends.
// It abstracts the rendering implementation, allowing the library to
// support multiple backends (software, GPU via wgpu).
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type RenderBackend interface {
	// Name returns the backend identifier (e.g., "software", "wgpu").
	Name() string

	// Init initializes the backend.
	// This should be called before any rendering operations.
	Init() error

	// Close releases all backend resources.
	// The backend should not be used after Close is called.
	Close()

	// NewRenderer creates a frame renderer sized for the given
	// dimensions. Returns nil if the backend is not initialized or
	// the dimensions are invalid.
	NewRenderer(width, height int) render.Renderer

	// RenderFrame renders one frame of the scene to the target pixmap.
	RenderFrame(target *dial.Pixmap, s *clock.Scene) error
}
