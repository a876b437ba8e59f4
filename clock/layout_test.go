// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clock

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// center returns the transformed position of the quad origin.
func center(m mgl32.Mat4) mgl32.Vec4 {
	return m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
}

func TestTickTransformTwelveOClock(t *testing.T) {
	p := center(TickTransform(0))
	if !approx(p.X(), 0) || !approx(p.Y(), TickRingRadius) {
		t.Errorf("tick 0 center = (%v, %v), want (0, %v)", p.X(), p.Y(), TickRingRadius)
	}
	if !approx(p.Z(), TickDepth) {
		t.Errorf("tick 0 z = %v, want %v", p.Z(), TickDepth)
	}
}

func TestTickTransformQuarters(t *testing.T) {
	// Ordinal 15 is three o'clock: ring radius along +x.
	p := center(TickTransform(15))
	if !approx(p.X(), TickRingRadius) || !approx(p.Y(), 0) {
		t.Errorf("tick 15 center = (%v, %v), want (%v, 0)", p.X(), p.Y(), TickRingRadius)
	}

	// Ordinal 30 is six o'clock: ring radius along -y.
	p = center(TickTransform(30))
	if !approx(p.X(), 0) || !approx(p.Y(), -TickRingRadius) {
		t.Errorf("tick 30 center = (%v, %v), want (0, -%v)", p.X(), p.Y(), TickRingRadius)
	}
}

func TestTickTransformDistinctPositions(t *testing.T) {
	seen := make(map[[2]int32]bool, TickCount)
	for i := range TickCount {
		p := center(TickTransform(i))
		// Quantize to avoid float noise collapsing distinct angles.
		key := [2]int32{int32(p.X() * 10000), int32(p.Y() * 10000)}
		if seen[key] {
			t.Fatalf("tick %d overlaps an earlier tick at (%v, %v)", i, p.X(), p.Y())
		}
		seen[key] = true
	}
}

func TestTickLengthByClass(t *testing.T) {
	if tickLength(ClassMajor) <= tickLength(ClassMinor) {
		t.Error("major ticks should be longer than minor ticks")
	}
	if tickLength(ClassMinor) <= tickLength(ClassDefault) {
		t.Error("minor ticks should be longer than default ticks")
	}
	if tickLength(ClassZero) != tickLength(ClassMajor) {
		t.Error("the zero tick should match major tick length")
	}
}

func TestPopulateTicks(t *testing.T) {
	var table TickTable
	if err := PopulateTicks(&table); err != nil {
		t.Fatalf("PopulateTicks: %v", err)
	}
	if !table.Populated() {
		t.Error("table not fully populated")
	}
	if got := table.Transform(0); got != TickTransform(0) {
		t.Error("slot 0 does not hold the twelve o'clock transform")
	}
}

func TestTickMesh(t *testing.T) {
	m := TickMesh()
	if len(m.Vertices) != 4 || m.TriangleCount() != 2 {
		t.Fatalf("tick mesh has %d vertices, %d triangles", len(m.Vertices), m.TriangleCount())
	}
}
