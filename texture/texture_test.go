// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/dial"
)

func TestNew(t *testing.T) {
	tex, err := New(8, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tex.Width() != 8 || tex.Height() != 4 {
		t.Errorf("size = %dx%d, want 8x4", tex.Width(), tex.Height())
	}
	if tex.SizeBytes() != 8*4*4 {
		t.Errorf("SizeBytes() = %d, want %d", tex.SizeBytes(), 8*4*4)
	}
}

func TestNewInvalidSize(t *testing.T) {
	if _, err := New(0, 4); !errors.Is(err, dial.ErrConfiguration) {
		t.Errorf("New(0, 4) error = %v, want ErrConfiguration", err)
	}
	if _, err := New(4, -1); !errors.Is(err, dial.ErrConfiguration) {
		t.Errorf("New(4, -1) error = %v, want ErrConfiguration", err)
	}
}

func TestDecodePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{B: 255, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}

	tex, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if tex.Width() != 2 || tex.Height() != 2 {
		t.Fatalf("decoded size = %dx%d, want 2x2", tex.Width(), tex.Height())
	}

	if c := tex.Sample(0, 0); c.R != 1 || c.B != 0 {
		t.Errorf("texel (0, 0) = %+v, want red", c)
	}
	if c := tex.Sample(0.9, 0.9); c.B != 1 || c.R != 0 {
		t.Errorf("texel (1, 1) = %+v, want blue", c)
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not an image")))
	if !errors.Is(err, dial.ErrResource) {
		t.Errorf("Decode(garbage) error = %v, want ErrResource", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.webp")
	if !errors.Is(err, dial.ErrResource) {
		t.Errorf("Load(missing) error = %v, want ErrResource", err)
	}
}

func TestSampleClamps(t *testing.T) {
	tex, err := New(2, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tex.SetPixel(1, 1, dial.White)

	// Coordinates beyond [0, 1] clamp to the nearest edge texel.
	if c := tex.Sample(5, 5); c != dial.White {
		t.Errorf("Sample(5, 5) = %+v, want white edge texel", c)
	}
	if c := tex.Sample(-1, -1); c != dial.Transparent {
		t.Errorf("Sample(-1, -1) = %+v, want transparent corner", c)
	}
}

func TestGenerated(t *testing.T) {
	tex, err := Generated(128)
	if err != nil {
		t.Fatalf("Generated: %v", err)
	}
	if tex.Width() != 128 || tex.Height() != 128 {
		t.Fatalf("generated size = %dx%d, want 128x128", tex.Width(), tex.Height())
	}

	// Corners lie outside the disc and stay transparent.
	if c := tex.Sample(0, 0); c.A != 0 {
		t.Errorf("corner texel alpha = %v, want 0", c.A)
	}

	// A point between the center dot and the numeral ring is face-colored.
	if c := tex.Sample(0.5, 0.6); c.A != 1 || c.R < 0.9 {
		t.Errorf("face texel = %+v, want opaque near-white", c)
	}
}

func TestGeneratedInvalidSize(t *testing.T) {
	if _, err := Generated(0); !errors.Is(err, dial.ErrConfiguration) {
		t.Errorf("Generated(0) error = %v, want ErrConfiguration", err)
	}
}
