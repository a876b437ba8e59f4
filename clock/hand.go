// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clock

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/dial"
)

// HandKind identifies one of the three clock hands. The value doubles
// as the draw index: hands render in hour, minute, second order so the
// second hand lands on top.
type HandKind int

const (
	HandHour HandKind = iota
	HandMinute
	HandSecond

	// HandCount is the number of hands in a scene.
	HandCount = 3
)

// String returns a human-readable name for the hand kind.
func (k HandKind) String() string {
	switch k {
	case HandHour:
		return "hour"
	case HandMinute:
		return "minute"
	case HandSecond:
		return "second"
	default:
		return fmt.Sprintf("HandKind(%d)", int(k))
	}
}

// Hand geometry. Each hand is the shared unit triangle scaled to a
// thin wedge: width on x, length on y. Depth staggers the hands on z
// so the second hand sits nearest the viewer.
const (
	HandWidth = 0.03

	HourHandLength   = 0.30
	MinuteHandLength = 0.41
	SecondHandLength = 0.48

	HourHandDepth   = -0.3
	MinuteHandDepth = -0.2
	SecondHandDepth = -0.1
)

// Hand colors.
var (
	HourHandColor   = dial.RGB(0, 0, 1) // blue
	MinuteHandColor = dial.RGB(0, 1, 0) // green
	SecondHandColor = dial.RGB(1, 0, 0) // red
)

// Hand is one clock hand: a kind, a model transform, and a solid
// material color uploaded as a per-draw uniform.
type Hand struct {
	Kind      HandKind
	Transform mgl32.Mat4
	Color     dial.RGBA

	length float32
	depth  float32
}

// NewHand creates a hand of the given kind at rotation zero (pointing
// at twelve o'clock), with its canonical length, depth and color.
func NewHand(kind HandKind) Hand {
	h := Hand{Kind: kind}
	switch kind {
	case HandMinute:
		h.length, h.depth, h.Color = MinuteHandLength, MinuteHandDepth, MinuteHandColor
	case HandSecond:
		h.length, h.depth, h.Color = SecondHandLength, SecondHandDepth, SecondHandColor
	default:
		h.length, h.depth, h.Color = HourHandLength, HourHandDepth, HourHandColor
	}
	h.SetRotation(0)
	return h
}

// SetRotation points the hand at the given clockwise angle in degrees,
// where 0 is twelve o'clock. The model transform is rebuilt from the
// hand's length and depth.
func (h *Hand) SetRotation(degrees float32) {
	h.Transform = HandTransform(degrees, h.length, h.depth)
}

// Length returns the hand's length scale.
func (h *Hand) Length() float32 { return h.length }

// Depth returns the hand's z offset.
func (h *Hand) Depth() float32 { return h.depth }

// HandTransform builds a hand model matrix: the unit triangle is
// scaled to (HandWidth, length, 1), lifted so its base sits at the
// center, pushed to the hand's depth plane, then rotated clockwise by
// the given angle in degrees. Clockwise on screen is a negative
// rotation about z.
func HandTransform(degrees, length, depth float32) mgl32.Mat4 {
	rot := mgl32.HomogRotate3DZ(-mgl32.DegToRad(degrees))
	trans := mgl32.Translate3D(0, length, depth)
	scale := mgl32.Scale3D(HandWidth, length, 1)
	return rot.Mul4(trans).Mul4(scale)
}

// HandMesh returns the triangle shared by all hands: apex at the top,
// base corners at the bottom, in the unit square around the origin.
func HandMesh() *dial.Mesh {
	return &dial.Mesh{
		Vertices: []dial.Vertex{
			{Position: mgl32.Vec3{0, 1, 0}, TexCoord: mgl32.Vec2{0.5, 0}},
			{Position: mgl32.Vec3{1, -1, 0}, TexCoord: mgl32.Vec2{1, 1}},
			{Position: mgl32.Vec3{-1, -1, 0}, TexCoord: mgl32.Vec2{0, 1}},
		},
		Indices: []uint32{0, 1, 2},
	}
}
