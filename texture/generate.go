// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texture

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/dial"
)

// Generated draws a plain clock face of the given pixel size: a white
// disc with a dark rim, hour numerals 1 through 12, and a center dot,
// on a transparent background. It is the fallback face for hosts that
// ship no texture asset.
func Generated(size int) (*Texture, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: invalid face size %d", dial.ErrConfiguration, size)
	}

	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	cx := float64(size) / 2
	cy := float64(size) / 2
	radius := float64(size)/2 - 1
	rim := radius * 0.04
	if rim < 1 {
		rim = 1
	}

	face := color.NRGBA{R: 245, G: 245, B: 240, A: 255}
	edge := color.NRGBA{R: 30, G: 30, B: 35, A: 255}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			switch {
			case d > radius:
				// transparent corner
			case d > radius-rim:
				img.SetNRGBA(x, y, edge)
			default:
				img.SetNRGBA(x, y, face)
			}
		}
	}

	drawNumerals(img, cx, cy, radius)
	drawCenterDot(img, cx, cy, radius*0.03, edge)

	return FromImage(img), nil
}

// drawNumerals places the hour numerals on a ring inside the rim.
func drawNumerals(img *image.NRGBA, cx, cy, radius float64) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{R: 30, G: 30, B: 35, A: 255}),
		Face: basicfont.Face7x13,
	}

	ring := radius * 0.8
	for h := 1; h <= 12; h++ {
		label := fmt.Sprintf("%d", h)
		// Hour h sits at h*30 degrees clockwise from twelve o'clock.
		angle := float64(h) * 30 * math.Pi / 180
		x := cx + ring*math.Sin(angle)
		y := cy - ring*math.Cos(angle)

		adv := d.MeasureString(label)
		d.Dot = fixed.Point26_6{
			X: fixed.I(int(x)) - adv/2,
			Y: fixed.I(int(y) + basicfont.Face7x13.Ascent/2),
		}
		d.DrawString(label)
	}
}

// drawCenterDot fills a small disc at the face center.
func drawCenterDot(img *image.NRGBA, cx, cy, r float64, c color.NRGBA) {
	if r < 1 {
		r = 1
	}
	for y := int(cy - r); y <= int(cy+r); y++ {
		for x := int(cx - r); x <= int(cx+r); x++ {
			if math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) <= r {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}
