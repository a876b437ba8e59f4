// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package clock holds the host-visible state of the analog clock
// scene: the shared camera block, the 60-entry tick transform table,
// the tick classifier, the three hands, and the textured face.
//
// The package is deliberately free of rendering: it describes what to
// draw, in a layout that maps one-to-one onto the GPU uniform blocks
// consumed by dial/render and dial/backend/wgpu. State follows a
// single-writer model — the host mutates a Scene between frames, then
// the renderer reads it without further synchronization.
package clock
