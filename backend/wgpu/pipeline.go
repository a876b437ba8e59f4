// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/dial"
)

// passIndex identifies one of the fixed render pipelines.
type passIndex int

const (
	passFace passIndex = iota
	passTick
	passHand
	passCount
)

// String returns the pipeline name.
func (p passIndex) String() string {
	switch p {
	case passFace:
		return "face"
	case passTick:
		return "tick"
	case passHand:
		return "hand"
	default:
		return fmt.Sprintf("pass(%d)", int(p))
	}
}

// passPipeline holds the compiled shader module and layouts for one pass.
type passPipeline struct {
	module         hal.ShaderModule
	groupLayout    hal.BindGroupLayout
	pipelineLayout hal.PipelineLayout
}

// pipelineSet holds the shared camera layout plus one pipeline per pass.
// All passes bind the camera block at group 0 binding 0; group 1 holds
// the per-pass resources (face texture and sampler, tick transform
// table, hand parameters).
type pipelineSet struct {
	device       hal.Device
	cameraLayout hal.BindGroupLayout
	passes       [passCount]passPipeline
}

// shaderSources maps each pass to its embedded WGSL source.
var shaderSources = [passCount]string{
	passFace: faceShaderWGSL,
	passTick: tickShaderWGSL,
	passHand: handShaderWGSL,
}

// newPipelineSet compiles the three clock shaders and creates their
// bind group and pipeline layouts. Resources created before a failure
// are destroyed.
//
// TODO: create the render pipelines themselves once hal exposes
// CreateRenderPipeline; until then the layouts cover the full binding
// model and rasterization falls back to the CPU path.
func newPipelineSet(device hal.Device) (*pipelineSet, error) {
	cameraLayout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "dial_camera_bgl",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create camera bind group layout: %w", err)
	}

	s := &pipelineSet{device: device, cameraLayout: cameraLayout}

	for i := passIndex(0); i < passCount; i++ {
		name := "dial_" + i.String()

		module, err := createShaderModule(device, name, shaderSources[i])
		if err != nil {
			s.destroyPartial(i)
			return nil, fmt.Errorf("wgpu: create shader module for %s: %w", i, err)
		}
		s.passes[i].module = module

		groupLayout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
			Label:   name + "_bgl",
			Entries: passGroupLayoutEntries(i),
		})
		if err != nil {
			s.destroyPartial(i + 1)
			return nil, fmt.Errorf("wgpu: create bind group layout for %s: %w", i, err)
		}
		s.passes[i].groupLayout = groupLayout

		pipelineLayout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
			Label:            name + "_pl",
			BindGroupLayouts: []hal.BindGroupLayout{cameraLayout, groupLayout},
		})
		if err != nil {
			s.destroyPartial(i + 1)
			return nil, fmt.Errorf("wgpu: create pipeline layout for %s: %w", i, err)
		}
		s.passes[i].pipelineLayout = pipelineLayout

		dial.Logger().Debug("wgpu: pipeline layout created",
			"pass", i.String(),
			"shader_bytes", len(shaderSources[i]))
	}

	return s, nil
}

// passGroupLayoutEntries returns the group 1 layout entries for a pass.
func passGroupLayoutEntries(pass passIndex) []gputypes.BindGroupLayoutEntry {
	switch pass {
	case passFace:
		// Binding 0: face texture, binding 1: sampler.
		return []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		}
	case passTick:
		// Binding 0: tick transform table (uniform array of mat4x4).
		return []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		}
	default:
		// Binding 0: hand parameters (model matrix and color). The
		// color is read in the fragment stage.
		return []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		}
	}
}

// destroyPartial cleans up resources for passes [0, upTo) plus the
// shared camera layout during a failed newPipelineSet.
func (s *pipelineSet) destroyPartial(upTo passIndex) {
	for j := passIndex(0); j < upTo; j++ {
		if s.passes[j].pipelineLayout != nil {
			s.device.DestroyPipelineLayout(s.passes[j].pipelineLayout)
			s.passes[j].pipelineLayout = nil
		}
		if s.passes[j].groupLayout != nil {
			s.device.DestroyBindGroupLayout(s.passes[j].groupLayout)
			s.passes[j].groupLayout = nil
		}
		if s.passes[j].module != nil {
			s.device.DestroyShaderModule(s.passes[j].module)
			s.passes[j].module = nil
		}
	}
	if s.cameraLayout != nil {
		s.device.DestroyBindGroupLayout(s.cameraLayout)
		s.cameraLayout = nil
	}
}

// Close destroys all pipeline resources.
func (s *pipelineSet) Close() {
	s.destroyPartial(passCount)
	s.device = nil
}
