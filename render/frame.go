// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/dial"
	"github.com/gogpu/dial/clock"
)

// PassKind identifies one slot of the fixed frame sequence.
type PassKind uint8

const (
	// PassFace draws the textured face quad.
	PassFace PassKind = iota

	// PassTicks draws all tick marks in one instanced draw.
	PassTicks

	// PassHand draws one hand. Three hand passes run per frame, in
	// hour, minute, second order.
	PassHand

	// PassOverlay draws the optional host-supplied overlay geometry.
	PassOverlay
)

// String returns a human-readable name for the pass kind.
func (k PassKind) String() string {
	switch k {
	case PassFace:
		return "face"
	case PassTicks:
		return "ticks"
	case PassHand:
		return "hand"
	case PassOverlay:
		return "overlay"
	default:
		return fmt.Sprintf("PassKind(%d)", uint8(k))
	}
}

// Pass is one draw of a frame program: a pipeline binding followed by
// exactly one draw call. Passes never mutate scene state; the host
// update phase is the only writer.
type Pass struct {
	Kind PassKind

	// Instances is the instance count of the draw: clock.TickCount
	// for the tick pass, 1 for everything else.
	Instances uint32

	// Hand is the hand drawn by a PassHand pass.
	Hand clock.HandKind
}

// Program is the validated pass sequence for one frame, together with
// a snapshot of the camera matrices. Snapshotting at build time
// guarantees every pass of the frame observes identical camera values
// even if the host misbehaves and writes mid-frame.
type Program struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Passes     []Pass
}

// BuildProgram preflights the scene and builds the frame program.
// The checks fail fast — the first violation rejects the whole frame:
//
//   - nil scene: ErrConfiguration
//   - camera never updated: ErrOrdering
//   - non-finite camera or hand matrices: ErrConfiguration
//   - tick table not fully populated: ErrOrdering
//   - face pass with no texture: ErrResource
//   - overlay present but without geometry: ErrConfiguration
//
// There is no partial fallback: a frame either renders all its passes
// or none.
func BuildProgram(s *clock.Scene) (*Program, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil scene", dial.ErrConfiguration)
	}
	if !s.Camera.Populated() {
		return nil, fmt.Errorf("%w: camera block not updated before frame",
			dial.ErrOrdering)
	}
	if !s.Camera.Finite() {
		return nil, fmt.Errorf("%w: camera matrices are not finite",
			dial.ErrConfiguration)
	}
	if s.Face.Texture == nil {
		return nil, fmt.Errorf("%w: face pass has no texture", dial.ErrResource)
	}
	if !s.Ticks.Populated() {
		return nil, fmt.Errorf("%w: tick table populated %d of %d slots",
			dial.ErrOrdering, s.Ticks.PopulatedCount(), clock.TickCount)
	}
	for i := range s.Hands {
		if !dial.Mat4Finite(s.Hands[i].Transform) {
			return nil, fmt.Errorf("%w: %s hand transform is not finite",
				dial.ErrConfiguration, s.Hands[i].Kind)
		}
	}
	if s.Overlay != nil {
		if s.Overlay.Mesh == nil || len(s.Overlay.Mesh.Indices) == 0 {
			return nil, fmt.Errorf("%w: overlay without geometry",
				dial.ErrConfiguration)
		}
		if !dial.Mat4Finite(s.Overlay.Transform) {
			return nil, fmt.Errorf("%w: overlay transform is not finite",
				dial.ErrConfiguration)
		}
	}

	passes := make([]Pass, 0, 6)
	passes = append(passes,
		Pass{Kind: PassFace, Instances: 1},
		Pass{Kind: PassTicks, Instances: clock.TickCount},
		Pass{Kind: PassHand, Instances: 1, Hand: clock.HandHour},
		Pass{Kind: PassHand, Instances: 1, Hand: clock.HandMinute},
		Pass{Kind: PassHand, Instances: 1, Hand: clock.HandSecond},
	)
	if s.Overlay != nil {
		passes = append(passes, Pass{Kind: PassOverlay, Instances: 1})
	}

	dial.Logger().Debug("frame program built", "passes", len(passes))

	return &Program{
		Projection: s.Camera.Projection(),
		View:       s.Camera.View(),
		Passes:     passes,
	}, nil
}

// Sequencer walks a program's passes in order. Backends use it while
// encoding so an out-of-order Begin surfaces as an ordering error
// instead of a wrongly layered frame.
type Sequencer struct {
	passes []Pass
	pos    int
}

// Sequence returns a fresh sequencer over the program's passes.
func (p *Program) Sequence() *Sequencer {
	return &Sequencer{passes: p.Passes}
}

// Begin consumes the next pass, which must be of the given kind.
func (s *Sequencer) Begin(kind PassKind) (Pass, error) {
	if s.pos >= len(s.passes) {
		return Pass{}, fmt.Errorf("%w: pass %s after end of frame",
			dial.ErrOrdering, kind)
	}
	next := s.passes[s.pos]
	if next.Kind != kind {
		return Pass{}, fmt.Errorf("%w: pass %s out of order, expected %s",
			dial.ErrOrdering, kind, next.Kind)
	}
	s.pos++
	return next, nil
}

// Next returns the next pass in sequence, or false when the frame is
// complete.
func (s *Sequencer) Next() (Pass, bool) {
	if s.pos >= len(s.passes) {
		return Pass{}, false
	}
	p := s.passes[s.pos]
	s.pos++
	return p, true
}

// Done reports whether every pass has been consumed.
func (s *Sequencer) Done() bool {
	return s.pos >= len(s.passes)
}
