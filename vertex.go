// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dial

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the interleaved vertex layout shared by every mesh in the
// clock scene: position, texture coordinate, normal. The normal slot is
// carried for all meshes even though only lit materials would read it,
// so a single vertex buffer layout serves every pipeline.
type Vertex struct {
	Position mgl32.Vec3
	TexCoord mgl32.Vec2
	Normal   mgl32.Vec3
}

// VertexStride is the size of one packed Vertex in bytes
// (8 float32 components).
const VertexStride = 32

// Mesh is indexed triangle geometry. Indices are triples; each triple
// is one triangle referencing Vertices.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// VertexBytes packs the vertex slice into the interleaved little-endian
// float32 layout expected by the GPU vertex buffer.
func (m *Mesh) VertexBytes() []byte {
	buf := make([]byte, len(m.Vertices)*VertexStride)
	off := 0
	put := func(f float32) {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(f))
		off += 4
	}
	for _, v := range m.Vertices {
		put(v.Position[0])
		put(v.Position[1])
		put(v.Position[2])
		put(v.TexCoord[0])
		put(v.TexCoord[1])
		put(v.Normal[0])
		put(v.Normal[1])
		put(v.Normal[2])
	}
	return buf
}

// IndexBytes packs the index slice as little-endian uint32.
func (m *Mesh) IndexBytes() []byte {
	buf := make([]byte, len(m.Indices)*4)
	for i, idx := range m.Indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}

// Mat4Bytes packs a matrix as 16 little-endian float32 values in
// column-major order, the layout of a WGSL mat4x4<f32>. mgl32 stores
// matrices column-major, so this is a straight element walk.
func Mat4Bytes(dst []byte, m mgl32.Mat4) {
	for i := range 16 {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(m[i]))
	}
}

// Mat4Finite reports whether every element of m is a finite number.
// NaN or Inf elements silently corrupt every draw that consumes the
// matrix, so hosts are expected to reject them up front.
func Mat4Finite(m mgl32.Mat4) bool {
	for i := range 16 {
		f := float64(m[i])
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
