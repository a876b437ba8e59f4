// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render turns a clock scene into pixels.
//
// The package has two halves. The frame program (BuildProgram) is the
// shared dispatcher: it preflights the scene against the frame
// contract — camera updated, tick table fully populated, face texture
// present, matrices finite — and emits the fixed pass sequence
// face → ticks → hands (hour, minute, second) → optional overlay.
// A frame that fails preflight is rejected whole; no pass of it runs.
//
// SoftwareRenderer is the CPU reference implementation of that
// program. It mirrors the GPU shader math — the same projection,
// the same classifier, the same sampling — so backends can be
// validated pixel-for-pixel without a device.
package render
