// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clock

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/dial"
)

const (
	// CameraBindingSlot is the bind group slot the camera block occupies
	// in every pipeline. All shaders declare the camera at group 0,
	// binding 0; keeping the slot in one constant keeps host-side bind
	// group construction and the WGSL sources in agreement.
	CameraBindingSlot = 0

	// CameraBlockSize is the packed size of the camera uniform:
	// two column-major mat4x4<f32>.
	CameraBlockSize = 128
)

// CameraBlock is the camera uniform shared by every pass of a frame:
// a projection matrix followed by a view matrix. The host updates it
// once per frame before any pass runs; every pass then observes the
// same values. There is no per-pass camera state.
//
// CameraBlock does not validate the matrices beyond finiteness checks
// performed by the frame preflight. A singular view matrix is the
// caller's responsibility.
type CameraBlock struct {
	projection mgl32.Mat4
	view       mgl32.Mat4
	populated  bool
}

// Update replaces both matrices. From the perspective of the passes
// the replacement is atomic: Update runs in the host phase of the
// frame, before any pass reads the block.
func (c *CameraBlock) Update(projection, view mgl32.Mat4) {
	c.projection = projection
	c.view = view
	c.populated = true
}

// Projection returns the current projection matrix.
func (c *CameraBlock) Projection() mgl32.Mat4 { return c.projection }

// View returns the current view matrix.
func (c *CameraBlock) View() mgl32.Mat4 { return c.view }

// Populated reports whether Update has run since construction or the
// last Reset. Drawing with an unpopulated camera is an ordering
// violation rejected by the frame preflight.
func (c *CameraBlock) Populated() bool { return c.populated }

// Reset clears the populated flag. The matrices keep their values;
// only the frame contract state is reset.
func (c *CameraBlock) Reset() { c.populated = false }

// Finite reports whether both matrices contain only finite values.
func (c *CameraBlock) Finite() bool {
	return dial.Mat4Finite(c.projection) && dial.Mat4Finite(c.view)
}

// Bytes packs the block for upload to the camera uniform buffer:
// projection then view, each as 16 column-major little-endian float32
// values, CameraBlockSize bytes total.
func (c *CameraBlock) Bytes() []byte {
	buf := make([]byte, CameraBlockSize)
	dial.Mat4Bytes(buf[0:64], c.projection)
	dial.Mat4Bytes(buf[64:128], c.view)
	return buf
}
