// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// Embedded WGSL shader sources, one file per pipeline.

//go:embed shaders/face.wgsl
var faceShaderWGSL string

//go:embed shaders/tick.wgsl
var tickShaderWGSL string

//go:embed shaders/hand.wgsl
var handShaderWGSL string

// compileShaderToSPIRV compiles WGSL source to SPIR-V words via naga.
// SPIR-V is little-endian 32-bit words.
func compileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("compile shader: SPIR-V length %d not word aligned", len(spirvBytes))
	}

	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}

// createShaderModule compiles WGSL and creates the HAL shader module.
func createShaderModule(device hal.Device, label, wgslSource string) (hal.ShaderModule, error) {
	spirvCode, err := compileShaderToSPIRV(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: spirvCode,
		},
	})
}
