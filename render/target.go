// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/dial"
)

// RenderTarget is a destination surface for a rendered frame.
// Implementations expose their pixels as a tightly packed buffer in
// the declared format; all current targets use RGBA8.
type RenderTarget interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// Pixels returns the raw pixel buffer, 4 bytes per pixel, row-major.
	Pixels() []uint8
}

// PixmapTarget adapts a dial.Pixmap into a RenderTarget.
type PixmapTarget struct {
	pix *dial.Pixmap
}

// NewPixmapTarget wraps an existing pixmap.
func NewPixmapTarget(p *dial.Pixmap) *PixmapTarget {
	return &PixmapTarget{pix: p}
}

// Width returns the pixmap width.
func (t *PixmapTarget) Width() int { return t.pix.Width() }

// Height returns the pixmap height.
func (t *PixmapTarget) Height() int { return t.pix.Height() }

// Format returns the pixel format. Pixmaps are always RGBA8.
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels returns the pixmap's raw RGBA buffer.
func (t *PixmapTarget) Pixels() []uint8 { return t.pix.Data() }

// Pixmap returns the wrapped pixmap.
func (t *PixmapTarget) Pixmap() *dial.Pixmap { return t.pix }
