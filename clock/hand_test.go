// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clock

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewHandDefaults(t *testing.T) {
	tests := []struct {
		kind   HandKind
		length float32
		depth  float32
	}{
		{HandHour, HourHandLength, HourHandDepth},
		{HandMinute, MinuteHandLength, MinuteHandDepth},
		{HandSecond, SecondHandLength, SecondHandDepth},
	}

	for _, tt := range tests {
		h := NewHand(tt.kind)
		if h.Length() != tt.length {
			t.Errorf("%v length = %v, want %v", tt.kind, h.Length(), tt.length)
		}
		if h.Depth() != tt.depth {
			t.Errorf("%v depth = %v, want %v", tt.kind, h.Depth(), tt.depth)
		}
	}
}

func TestHandColors(t *testing.T) {
	if c := NewHand(HandSecond).Color; c != SecondHandColor {
		t.Errorf("second hand color = %+v, want red", c)
	}
	if c := NewHand(HandMinute).Color; c != MinuteHandColor {
		t.Errorf("minute hand color = %+v, want green", c)
	}
	if c := NewHand(HandHour).Color; c != HourHandColor {
		t.Errorf("hour hand color = %+v, want blue", c)
	}
}

// tip returns the transformed position of the hand mesh apex (0, 1, 0).
func tip(m mgl32.Mat4) mgl32.Vec4 {
	return m.Mul4x1(mgl32.Vec4{0, 1, 0, 1})
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestHandTransformTwelveOClock(t *testing.T) {
	// At rotation 0 the apex points straight up: the unit apex scales
	// to y=length, then translates up by length again.
	m := HandTransform(0, SecondHandLength, SecondHandDepth)
	p := tip(m)

	if !approx(p.X(), 0) {
		t.Errorf("tip x = %v, want 0", p.X())
	}
	if !approx(p.Y(), 2*SecondHandLength) {
		t.Errorf("tip y = %v, want %v", p.Y(), 2*SecondHandLength)
	}
	if !approx(p.Z(), SecondHandDepth) {
		t.Errorf("tip z = %v, want %v", p.Z(), SecondHandDepth)
	}
}

func TestHandTransformThreeOClock(t *testing.T) {
	// 90 degrees clockwise points the apex at +x.
	m := HandTransform(90, MinuteHandLength, MinuteHandDepth)
	p := tip(m)

	if !approx(p.X(), 2*MinuteHandLength) {
		t.Errorf("tip x = %v, want %v", p.X(), 2*MinuteHandLength)
	}
	if !approx(p.Y(), 0) {
		t.Errorf("tip y = %v, want 0", p.Y())
	}
}

func TestSetRotation(t *testing.T) {
	h := NewHand(HandSecond)
	before := h.Transform
	h.SetRotation(180)
	if h.Transform == before {
		t.Error("SetRotation(180) left the transform unchanged")
	}

	p := tip(h.Transform)
	if !approx(p.Y(), -2*SecondHandLength) {
		t.Errorf("tip y at 6 o'clock = %v, want %v", p.Y(), -2*SecondHandLength)
	}
}

func TestHandMesh(t *testing.T) {
	m := HandMesh()
	if len(m.Vertices) != 3 || len(m.Indices) != 3 {
		t.Fatalf("hand mesh has %d vertices, %d indices", len(m.Vertices), len(m.Indices))
	}
	if m.TriangleCount() != 1 {
		t.Errorf("TriangleCount() = %d, want 1", m.TriangleCount())
	}
}

func TestHandKindString(t *testing.T) {
	if HandHour.String() != "hour" || HandSecond.String() != "second" {
		t.Error("HandKind.String() mismatch")
	}
}
