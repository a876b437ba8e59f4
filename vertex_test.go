// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dial

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestVertexBytesLayout(t *testing.T) {
	m := &Mesh{
		Vertices: []Vertex{
			{
				Position: mgl32.Vec3{1, 2, 3},
				TexCoord: mgl32.Vec2{4, 5},
				Normal:   mgl32.Vec3{6, 7, 8},
			},
		},
	}

	buf := m.VertexBytes()
	if len(buf) != VertexStride {
		t.Fatalf("VertexBytes length = %d, want %d", len(buf), VertexStride)
	}

	want := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != w {
			t.Errorf("component %d = %v, want %v", i, got, w)
		}
	}
}

func TestIndexBytes(t *testing.T) {
	m := &Mesh{Indices: []uint32{0, 1, 3, 1, 2, 3}}
	buf := m.IndexBytes()
	if len(buf) != 24 {
		t.Fatalf("IndexBytes length = %d, want 24", len(buf))
	}
	if got := binary.LittleEndian.Uint32(buf[8:]); got != 3 {
		t.Errorf("index 2 = %d, want 3", got)
	}
	if m.TriangleCount() != 2 {
		t.Errorf("TriangleCount() = %d, want 2", m.TriangleCount())
	}
}

func TestMat4BytesColumnMajor(t *testing.T) {
	// Translate3D puts the translation vector in the fourth column.
	// Column-major packing therefore places tx at element offset 12.
	m := mgl32.Translate3D(7, 8, 9)
	buf := make([]byte, 64)
	Mat4Bytes(buf, m)

	tx := math.Float32frombits(binary.LittleEndian.Uint32(buf[12*4:]))
	ty := math.Float32frombits(binary.LittleEndian.Uint32(buf[13*4:]))
	tz := math.Float32frombits(binary.LittleEndian.Uint32(buf[14*4:]))
	if tx != 7 || ty != 8 || tz != 9 {
		t.Errorf("translation column = (%v, %v, %v), want (7, 8, 9)", tx, ty, tz)
	}
}

func TestMat4Finite(t *testing.T) {
	if !Mat4Finite(mgl32.Ident4()) {
		t.Error("Mat4Finite(identity) = false, want true")
	}

	bad := mgl32.Ident4()
	bad[5] = float32(math.NaN())
	if Mat4Finite(bad) {
		t.Error("Mat4Finite(NaN matrix) = true, want false")
	}

	inf := mgl32.Ident4()
	inf[0] = float32(math.Inf(1))
	if Mat4Finite(inf) {
		t.Error("Mat4Finite(Inf matrix) = true, want false")
	}
}
