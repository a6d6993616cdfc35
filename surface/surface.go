// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"github.com/gogpu/features"
)

// Surface is a 2D rendering target.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Kind returns the capability this surface implements.
	Kind() features.Capability

	// Clear fills the entire surface with the given color.
	Clear(c color.Color)

	// FillRect fills r, clipped to the surface bounds, with c using
	// source-over compositing.
	FillRect(r image.Rectangle, c color.Color)

	// DrawImage draws img into dst, scaling when the sizes differ.
	DrawImage(img image.Image, dst image.Rectangle)

	// Flush ensures all pending drawing operations are complete.
	Flush() error

	// Snapshot returns the current contents as a new RGBA image.
	// The returned image is a copy; modifying it does not affect the surface.
	Snapshot() *image.RGBA

	// Close releases all resources associated with the surface.
	// Close is idempotent.
	Close() error
}

// Bounds returns the rectangle covered by s.
func Bounds(s Surface) image.Rectangle {
	return image.Rect(0, 0, s.Width(), s.Height())
}
