// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package wgpu provides the GPU rendering backend built on gogpu/wgpu.
//
// The backend opens a HAL device (standalone via the Vulkan backend, or
// shared through a gpucontext.DeviceProvider), compiles the clock shaders
// from WGSL to SPIR-V with naga, and uploads the camera block, the tick
// transform table, and the per-hand parameters to GPU uniform buffers
// each frame.
//
// HAL render pass encoding is not available yet, so the final rasterization
// of each frame is produced by the CPU reference path while the GPU resource
// lifecycle (device, shader modules, layouts, buffers, uploads) runs for
// real. Frame output is identical between the two backends.
package wgpu
