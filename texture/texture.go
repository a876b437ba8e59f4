// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texture

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"

	// Image formats accepted by Decode. The original face asset is a
	// webp; png and jpeg cover converted assets.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/gogpu/dial"
)

// Texture is an RGBA pixel buffer sampled by the face pass.
type Texture struct {
	width  int
	height int
	pix    []uint8 // RGBA, 4 bytes per pixel, row-major
}

// New creates an empty (transparent) texture of the given size.
func New(width, height int) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid texture size %dx%d",
			dial.ErrConfiguration, width, height)
	}
	return &Texture{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}, nil
}

// FromImage converts any image.Image into a texture.
func FromImage(img image.Image) *Texture {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return &Texture{
		width:  b.Dx(),
		height: b.Dy(),
		pix:    rgba.Pix,
	}
}

// Decode reads an encoded image (webp, png or jpeg) and converts it
// into a texture.
func Decode(r io.Reader) (*Texture, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: decode face image: %w", dial.ErrResource, err)
	}
	dial.Logger().Debug("texture decoded", "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return FromImage(img), nil
}

// Load reads and decodes an image file.
func Load(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open face image: %w", dial.ErrResource, err)
	}
	defer f.Close()
	return Decode(f)
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.height }

// Pixels returns the raw RGBA pixel data.
func (t *Texture) Pixels() []uint8 { return t.pix }

// SizeBytes returns the buffer size in bytes.
func (t *Texture) SizeBytes() int { return len(t.pix) }

// Sample returns the texel nearest to the UV coordinate (u, v), with
// (0, 0) the top-left corner and (1, 1) the bottom-right. Coordinates
// are clamped to the edge.
func (t *Texture) Sample(u, v float32) dial.RGBA {
	x := int(u * float32(t.width))
	y := int(v * float32(t.height))
	if x < 0 {
		x = 0
	}
	if x >= t.width {
		x = t.width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= t.height {
		y = t.height - 1
	}
	i := (y*t.width + x) * 4
	return dial.RGBA{
		R: float32(t.pix[i+0]) / 255,
		G: float32(t.pix[i+1]) / 255,
		B: float32(t.pix[i+2]) / 255,
		A: float32(t.pix[i+3]) / 255,
	}
}

// SetPixel writes a single texel. Out-of-range writes are dropped.
func (t *Texture) SetPixel(x, y int, c dial.RGBA) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return
	}
	i := (y*t.width + x) * 4
	t.pix[i+0] = clampByte(c.R)
	t.pix[i+1] = clampByte(c.G)
	t.pix[i+2] = clampByte(c.B)
	t.pix[i+3] = clampByte(c.A)
}

func clampByte(v float32) uint8 {
	f := v * 255
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f)
}
