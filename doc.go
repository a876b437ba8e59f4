// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package dial is the rendering core for an analog clock scene.
//
// dial draws a clock as a short, fixed sequence of GPU-style passes:
// a textured face quad, sixty instanced tick marks positioned by
// per-instance transforms, and the three hands as solid-color
// triangles. All passes read one shared camera uniform block; the
// host writes scene state once per frame and every pass observes the
// same values.
//
// The package split mirrors that structure:
//
//   - dial (this package): shared primitives — colors, vertices,
//     meshes, pixel buffers, the error taxonomy, and logging.
//   - dial/clock: scene state — camera block, tick transform table,
//     tick classifier, hands, face.
//   - dial/texture: face texture sources (image decode or generated).
//   - dial/render: the frame dispatcher and the CPU reference
//     renderer.
//   - dial/backend: backend registry (software, wgpu).
//
// dial does not read the wall clock and does not animate: the host
// computes hand rotations and submits them. It also does not create
// windows or surfaces; output goes to a caller-provided target.
package dial
