// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clock

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/dial"
	"github.com/gogpu/dial/texture"
)

// MaskMode selects the fragment path of the face pass.
type MaskMode uint8

const (
	// MaskNone samples the face texture over the whole quad.
	// This is the default.
	MaskNone MaskMode = iota

	// MaskCircle additionally clips the quad to the inscribed circle,
	// making fragments outside MaskRadius fully transparent. Off by
	// default; enable it for square face textures without baked-in
	// transparent corners.
	MaskCircle
)

// String returns a human-readable name for the mask mode.
func (m MaskMode) String() string {
	switch m {
	case MaskNone:
		return "none"
	case MaskCircle:
		return "circle"
	default:
		return fmt.Sprintf("MaskMode(%d)", uint8(m))
	}
}

// Circular mask parameters in UV space. The mask is the circle
// inscribed in the unit texture square.
const (
	MaskCenterU = 0.5
	MaskCenterV = 0.5
	MaskRadius  = 0.5
)

// Face is the textured clock-face quad, drawn first each frame so
// everything else layers on top of it. The texture is borrowed from
// the host: the face never frees it, and the face pass fails with a
// resource error if it is absent.
type Face struct {
	Texture *texture.Texture
	Mask    MaskMode
}

// FaceMesh returns the face quad spanning [-1, 1] on x and y at z=0,
// with texture coordinates mapping the full image onto it.
func FaceMesh() *dial.Mesh {
	return &dial.Mesh{
		Vertices: []dial.Vertex{
			{Position: mgl32.Vec3{1, 1, 0}, TexCoord: mgl32.Vec2{1, 0}},   // top-right
			{Position: mgl32.Vec3{1, -1, 0}, TexCoord: mgl32.Vec2{1, 1}},  // bottom-right
			{Position: mgl32.Vec3{-1, -1, 0}, TexCoord: mgl32.Vec2{0, 1}}, // bottom-left
			{Position: mgl32.Vec3{-1, 1, 0}, TexCoord: mgl32.Vec2{0, 0}},  // top-left
		},
		Indices: []uint32{
			0, 1, 3, // first triangle
			1, 2, 3, // second triangle
		},
	}
}
