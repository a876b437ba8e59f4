// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clock

import (
	"fmt"

	"github.com/gogpu/dial"
)

// Class is the visual category of a tick instance, derived purely from
// its ordinal position on the ring.
type Class uint8

const (
	// ClassZero is the twelve o'clock tick (ordinal 0).
	ClassZero Class = iota

	// ClassMajor marks the quarter positions: ordinals divisible by 15.
	ClassMajor

	// ClassMinor marks the five-minute positions: ordinals divisible
	// by 5 that are not quarters.
	ClassMinor

	// ClassDefault is every remaining minute tick.
	ClassDefault
)

// Classify maps a tick ordinal to its class. The rules apply in
// priority order: 0 is ClassZero, multiples of 15 are ClassMajor,
// multiples of 5 are ClassMinor, everything else is ClassDefault.
// The 15-rule is checked before the 5-rule, so ordinals 15, 30 and 45
// are ClassMajor even though they also divide by 5.
//
// The ordinal domain is [0, TickCount). Classify is total over int for
// convenience, but values outside the domain have no meaning in the
// scene; the GPU path only ever evaluates instance indices below
// TickCount.
func Classify(ordinal int) Class {
	switch {
	case ordinal == 0:
		return ClassZero
	case ordinal%15 == 0:
		return ClassMajor
	case ordinal%5 == 0:
		return ClassMinor
	default:
		return ClassDefault
	}
}

// Class colors. The vertex stage of the tick pipeline implements the
// same mapping; changing one side requires changing the other.
var (
	colorZero    = dial.RGB(1, 1, 0) // yellow
	colorMajor   = dial.RGB(0, 1, 0) // green
	colorMinor   = dial.RGB(1, 0, 0) // red
	colorDefault = dial.RGB(0, 0, 1) // blue
)

// Color returns the fixed material color of the class.
func (c Class) Color() dial.RGBA {
	switch c {
	case ClassZero:
		return colorZero
	case ClassMajor:
		return colorMajor
	case ClassMinor:
		return colorMinor
	default:
		return colorDefault
	}
}

// String returns a human-readable name for the class.
func (c Class) String() string {
	switch c {
	case ClassZero:
		return "zero"
	case ClassMajor:
		return "major"
	case ClassMinor:
		return "minor"
	case ClassDefault:
		return "default"
	default:
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
}
