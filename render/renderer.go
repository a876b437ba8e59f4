// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "github.com/gogpu/dial/clock"

// Renderer renders complete clock frames to a target.
type Renderer interface {
	// RenderFrame draws one frame of the scene to the target. The
	// scene must satisfy the frame contract (see BuildProgram); a
	// scene that does not is rejected without partial output.
	RenderFrame(target RenderTarget, scene *clock.Scene) error

	// Close releases renderer resources. The renderer must not be
	// used after Close.
	Close()
}

// Capabilities describes what a renderer implementation can do.
type Capabilities struct {
	// Name identifies the implementation ("software", "wgpu").
	Name string

	// Accelerated is true when frames are rasterized on a GPU.
	Accelerated bool
}
