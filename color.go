// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dial

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Components are float32 so a
// color can be handed to the GPU as a vec4 without conversion.
type RGBA struct {
	R, G, B, A float32
}

// Common colors.
var (
	Transparent = RGBA{0, 0, 0, 0}
	Black       = RGBA{0, 0, 0, 1}
	White       = RGBA{1, 1, 1, 1}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(float64(c.R) * 255)),
		G: uint8(clamp255(float64(c.G) * 255)),
		B: uint8(clamp255(float64(c.B) * 255)),
		A: uint8(clamp255(float64(c.A) * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float32(r) / 65535,
		G: float32(g) / 65535,
		B: float32(b) / 65535,
		A: float32(a) / 65535,
	}
}

// Vec4 returns the color as a 4-element float32 array in RGBA order,
// matching the layout of a WGSL vec4<f32> uniform.
func (c RGBA) Vec4() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// clamp255 clamps v to the range [0, 255].
func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
