// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/gogpu/dial"
)

// gpuDevice bundles a HAL device and queue with ownership information.
// A standalone device is created (and destroyed) by this package; a
// shared device is borrowed from an external provider and never
// destroyed here.
type gpuDevice struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	adapter  string
	external bool
}

// openDevice creates a standalone HAL device on the best available
// adapter, preferring discrete over integrated GPUs.
func openDevice() (*gpuDevice, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("wgpu: vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("wgpu: no GPU adapters found")
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("wgpu: open device: %w", err)
	}

	dial.Logger().Info("wgpu: device opened (standalone)", "adapter", selected.Info.Name)

	return &gpuDevice{
		instance: instance,
		device:   openDev.Device,
		queue:    openDev.Queue,
		adapter:  selected.Info.Name,
	}, nil
}

// deviceFromProvider borrows a shared HAL device and queue from an
// external provider. The provider must implement HalDevice() any and
// HalQueue() any returning hal.Device and hal.Queue.
func deviceFromProvider(provider any) (*gpuDevice, error) {
	if provider == nil {
		return nil, fmt.Errorf("wgpu: nil device provider")
	}
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("wgpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("wgpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("wgpu: provider HalQueue is not hal.Queue")
	}

	dial.Logger().Info("wgpu: device attached (shared)")

	return &gpuDevice{
		device:   device,
		queue:    queue,
		adapter:  "shared",
		external: true,
	}, nil
}

// Close releases the device and instance if this package owns them.
func (d *gpuDevice) Close() {
	if !d.external && d.device != nil {
		d.device.Destroy()
	}
	d.device = nil
	d.queue = nil
	if d.instance != nil {
		d.instance.Destroy()
		d.instance = nil
	}
}
