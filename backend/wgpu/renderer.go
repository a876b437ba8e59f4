// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/dial"
	"github.com/gogpu/dial/clock"
	"github.com/gogpu/dial/render"
)

// GPU buffer sizes. The hand parameter block is a model matrix followed
// by an RGBA color, matching HandParams in hand.wgsl.
const (
	cameraBufferSize = clock.CameraBlockSize
	tickBufferSize   = clock.TickTableSize
	handBufferSize   = 64 + 16
)

// Renderer is the GPU frame renderer. It owns the per-frame uniform
// buffers (camera block, tick transform table, hand parameters) and
// uploads them through the HAL queue on every frame.
//
// Render pass encoding is not available in HAL yet, so after the
// uploads the frame pixels are produced by the CPU reference
// rasterizer. The preflight, pass order, and output are identical.
type Renderer struct {
	device hal.Device
	queue  hal.Queue

	width  int
	height int

	cameraBuf  hal.Buffer
	tickBuf    hal.Buffer
	handBufs   [clock.HandCount]hal.Buffer
	overlayBuf hal.Buffer

	raster        *render.SoftwareRenderer
	encodePending sync.Once
}

// NewRenderer creates a GPU frame renderer for the given target size.
// The device and queue are borrowed from the backend and not destroyed
// on Close.
func NewRenderer(device hal.Device, queue hal.Queue, width, height int) (*Renderer, error) {
	raster, err := render.NewSoftwareRenderer(width, height)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		device: device,
		queue:  queue,
		width:  width,
		height: height,
		raster: raster,
	}

	specs := []struct {
		target *hal.Buffer
		label  string
		size   uint64
	}{
		{&r.cameraBuf, "dial_camera", cameraBufferSize},
		{&r.tickBuf, "dial_ticks", tickBufferSize},
		{&r.handBufs[clock.HandHour], "dial_hand_hour", handBufferSize},
		{&r.handBufs[clock.HandMinute], "dial_hand_minute", handBufferSize},
		{&r.handBufs[clock.HandSecond], "dial_hand_second", handBufferSize},
	}
	for _, s := range specs {
		buf, err := createUniformBuffer(device, s.label, s.size)
		if err != nil {
			r.destroyBuffers()
			return nil, fmt.Errorf("%w: create %s buffer: %v", dial.ErrResource, s.label, err)
		}
		*s.target = buf
	}

	return r, nil
}

// createUniformBuffer creates a CPU-writable uniform buffer.
func createUniformBuffer(device hal.Device, label string, size uint64) (hal.Buffer, error) {
	return device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
}

// Capabilities reports the renderer name and acceleration status.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{Name: "wgpu", Accelerated: true}
}

// RenderFrame renders one frame of the scene to the target.
//
// The frame is validated up front; nothing is uploaded or drawn when
// the scene is rejected. On success the camera block, the tick table,
// and the hand parameters are written to their GPU buffers, then the
// pixels are rasterized.
func (r *Renderer) RenderFrame(target render.RenderTarget, s *clock.Scene) error {
	if target == nil {
		return fmt.Errorf("%w: nil render target", dial.ErrConfiguration)
	}
	if target.Width() != r.width || target.Height() != r.height {
		return fmt.Errorf("%w: target %dx%d does not match renderer %dx%d",
			dial.ErrConfiguration, target.Width(), target.Height(), r.width, r.height)
	}

	prog, err := render.BuildProgram(s)
	if err != nil {
		return err
	}

	// Upload the frame uniforms. The camera comes from the program
	// snapshot taken at validation time.
	r.queue.WriteBuffer(r.cameraBuf, 0, cameraBytes(prog))
	r.queue.WriteBuffer(r.tickBuf, 0, s.Ticks.Bytes())
	for kind := clock.HandKind(0); kind < clock.HandCount; kind++ {
		h := s.Hand(kind)
		r.queue.WriteBuffer(r.handBufs[kind], 0, handParamsBytes(h.Transform, h.Color))
	}
	if s.Overlay != nil {
		if r.overlayBuf == nil {
			buf, err := createUniformBuffer(r.device, "dial_overlay", handBufferSize)
			if err != nil {
				return fmt.Errorf("%w: create overlay buffer: %v", dial.ErrResource, err)
			}
			r.overlayBuf = buf
		}
		r.queue.WriteBuffer(r.overlayBuf, 0, handParamsBytes(s.Overlay.Transform, s.Overlay.Color))
	}

	r.encodePending.Do(func() {
		dial.Logger().Debug("wgpu: render pass encoding pending, rasterizing on CPU",
			"width", r.width, "height", r.height)
	})
	return r.raster.RenderFrame(target, s)
}

// Close releases the renderer's GPU buffers. The shared device and
// queue are left untouched.
func (r *Renderer) Close() {
	r.destroyBuffers()
	if r.raster != nil {
		r.raster.Close()
		r.raster = nil
	}
}

func (r *Renderer) destroyBuffers() {
	bufs := []*hal.Buffer{&r.cameraBuf, &r.tickBuf, &r.overlayBuf}
	for kind := range r.handBufs {
		bufs = append(bufs, &r.handBufs[kind])
	}
	for _, b := range bufs {
		if *b != nil {
			r.device.DestroyBuffer(*b)
			*b = nil
		}
	}
}

// cameraBytes packs the program's camera snapshot into the layout of
// the camera uniform block: projection then view, column-major.
func cameraBytes(prog *render.Program) []byte {
	buf := make([]byte, cameraBufferSize)
	dial.Mat4Bytes(buf[:64], prog.Projection)
	dial.Mat4Bytes(buf[64:], prog.View)
	return buf
}

// handParamsBytes packs a hand parameter block: model matrix then color.
func handParamsBytes(model mgl32.Mat4, color dial.RGBA) []byte {
	buf := make([]byte, handBufferSize)
	dial.Mat4Bytes(buf[:64], model)
	for i, c := range color.Vec4() {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(c))
	}
	return buf
}
