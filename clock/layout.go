// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clock

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/dial"
)

// Tick ring geometry. Ticks are thin quads placed around the ring just
// inside the face edge, slightly in front of the face plane. Five-
// minute and quarter ticks are drawn longer than minute ticks; the
// difference lives entirely in the per-instance transform, so one mesh
// serves all sixty instances.
const (
	TickRingRadius = 0.85
	TickDepth      = -0.05
	TickWidth      = 0.01

	tickLengthDefault = 0.03
	tickLengthMinor   = 0.05
	tickLengthMajor   = 0.06
)

// tickLength returns the half-length of a tick quad by class.
func tickLength(class Class) float32 {
	switch class {
	case ClassZero, ClassMajor:
		return tickLengthMajor
	case ClassMinor:
		return tickLengthMinor
	default:
		return tickLengthDefault
	}
}

// TickTransform builds the model matrix for one tick ordinal: the unit
// quad scaled to a thin mark, pushed out to the ring radius, then
// rotated clockwise to its minute position. Ordinal 0 is twelve
// o'clock.
func TickTransform(ordinal int) mgl32.Mat4 {
	rot := mgl32.HomogRotate3DZ(-mgl32.DegToRad(float32(ordinal) * TickStepDegrees))
	trans := mgl32.Translate3D(0, TickRingRadius, TickDepth)
	scale := mgl32.Scale3D(TickWidth, tickLength(Classify(ordinal)), 1)
	return rot.Mul4(trans).Mul4(scale)
}

// PopulateTicks fills every slot of the table with the standard ring
// layout. Hosts that want a custom layout call TickTable.Set directly
// instead.
func PopulateTicks(t *TickTable) error {
	for i := range TickCount {
		if err := t.Set(i, TickTransform(i)); err != nil {
			return err
		}
	}
	return nil
}

// TickMesh returns the unit quad shared by all tick instances.
func TickMesh() *dial.Mesh {
	return &dial.Mesh{
		Vertices: []dial.Vertex{
			{Position: mgl32.Vec3{1, 1, 0}, TexCoord: mgl32.Vec2{1, 0}},
			{Position: mgl32.Vec3{1, -1, 0}, TexCoord: mgl32.Vec2{1, 1}},
			{Position: mgl32.Vec3{-1, -1, 0}, TexCoord: mgl32.Vec2{0, 1}},
			{Position: mgl32.Vec3{-1, 1, 0}, TexCoord: mgl32.Vec2{0, 0}},
		},
		Indices: []uint32{0, 1, 3, 1, 2, 3},
	}
}
