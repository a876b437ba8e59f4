// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package texture provides the pixel sources for the clock face pass.
//
// A Texture is a plain RGBA buffer: decoded from an image file (webp,
// png or jpeg), converted from an image.Image, or generated
// procedurally when no asset is available. Textures are host-owned;
// the renderer borrows them for the face pass and never frees them.
package texture
