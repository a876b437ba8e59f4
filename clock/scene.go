// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clock

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/dial"
)

// Overlay is an optional final pass drawn after the hands: arbitrary
// solid-color geometry in the same camera, e.g. a center cap or debug
// markers. A nil overlay skips the pass.
type Overlay struct {
	Mesh      *dial.Mesh
	Transform mgl32.Mat4
	Color     dial.RGBA
}

// Scene is the full host-visible state of one clock. A renderer
// consumes it in the fixed pass order face, ticks, hands (hour,
// minute, second), then the optional overlay.
//
// Scene follows the frame contract: the host update phase writes
// (camera update, tick population, hand rotations), then the render
// phase reads. Nothing in Scene is synchronized; interleaving writes
// with a running frame is a host bug.
type Scene struct {
	Camera CameraBlock
	Ticks  TickTable
	Hands  [HandCount]Hand
	Face   Face

	Overlay *Overlay
}

// NewScene creates a scene with the three hands at twelve o'clock and
// the standard tick ring layout. The camera starts unpopulated and the
// face has no texture: the host must supply both before the first
// frame.
func NewScene() (*Scene, error) {
	s := &Scene{
		Hands: [HandCount]Hand{
			NewHand(HandHour),
			NewHand(HandMinute),
			NewHand(HandSecond),
		},
	}
	if err := PopulateTicks(&s.Ticks); err != nil {
		return nil, err
	}
	return s, nil
}

// Hand returns a pointer to the hand of the given kind.
func (s *Scene) Hand(kind HandKind) *Hand {
	return &s.Hands[kind]
}
