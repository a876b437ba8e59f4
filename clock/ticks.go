// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clock

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/dial"
)

const (
	// TickCount is the number of tick instances on the ring. The tick
	// pass always draws exactly this many instances, and the WGSL tick
	// shader declares its transform array with the same bound.
	TickCount = 60

	// TickStepDegrees is the angular spacing between adjacent ticks.
	TickStepDegrees = 360.0 / TickCount

	// TickTableSize is the packed size of the full transform table:
	// TickCount column-major mat4x4<f32>.
	TickTableSize = TickCount * 64
)

// TickTable holds one model transform per tick instance, indexed by
// ordinal. Slot 0 is the canonical twelve o'clock position; ordinals
// increase clockwise around the ring.
//
// The table has a population contract: every slot must be set before
// the tick pass may consume it. There is no identity fallback for
// unset slots — drawing a partially populated table is rejected as an
// ordering violation, because an identity transform would silently
// draw a tick at the origin instead of surfacing the host bug.
type TickTable struct {
	entries [TickCount]mgl32.Mat4
	set     [TickCount]bool
	count   int
}

// Set stores the model transform for the given ordinal. Ordinals
// outside [0, TickCount) and non-finite matrices are configuration
// errors; the table is left unchanged.
func (t *TickTable) Set(ordinal int, m mgl32.Mat4) error {
	if ordinal < 0 || ordinal >= TickCount {
		return fmt.Errorf("%w: tick ordinal %d out of range [0, %d)",
			dial.ErrConfiguration, ordinal, TickCount)
	}
	if !dial.Mat4Finite(m) {
		return fmt.Errorf("%w: tick %d transform is not finite",
			dial.ErrConfiguration, ordinal)
	}
	if !t.set[ordinal] {
		t.set[ordinal] = true
		t.count++
	}
	t.entries[ordinal] = m
	return nil
}

// Transform returns the stored transform for the given ordinal.
// The ordinal must be in [0, TickCount); out-of-range access panics
// like any slice access. Unset slots read as the zero matrix.
func (t *TickTable) Transform(ordinal int) mgl32.Mat4 {
	return t.entries[ordinal]
}

// Transforms returns a copy of all entries in ordinal order.
func (t *TickTable) Transforms() [TickCount]mgl32.Mat4 {
	return t.entries
}

// Populated reports whether every slot has been set since the last
// Reset.
func (t *TickTable) Populated() bool {
	return t.count == TickCount
}

// PopulatedCount returns the number of slots set so far.
func (t *TickTable) PopulatedCount() int {
	return t.count
}

// Reset clears the population state. Entry values are kept; only the
// frame contract state is reset.
func (t *TickTable) Reset() {
	t.set = [TickCount]bool{}
	t.count = 0
}

// Bytes packs the table for upload to the tick uniform buffer: all
// TickCount transforms in ordinal order, each as 16 column-major
// little-endian float32 values, TickTableSize bytes total. The layout
// matches the WGSL declaration array<mat4x4<f32>, 60>.
func (t *TickTable) Bytes() []byte {
	buf := make([]byte, TickTableSize)
	for i := range t.entries {
		dial.Mat4Bytes(buf[i*64:], t.entries[i])
	}
	return buf
}
