// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"github.com/gogpu/features"
	"golang.org/x/image/draw"
)

// ImageSurface is a CPU-based surface that renders to an *image.RGBA.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(color.White)
//	s.FillRect(image.Rect(0, 0, 100, 100), color.RGBA{255, 0, 0, 255})
//	img := s.Snapshot()
type ImageSurface struct {
	img    *image.RGBA
	closed bool
}

// NewImageSurface creates a new CPU-based surface with the given dimensions.
// Non-positive dimensions are clamped to 1.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &ImageSurface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewImageSurfaceFromImage creates a surface backed by an existing image.
// The surface renders into the provided image directly.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	return &ImageSurface{img: img}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int { return s.img.Bounds().Dx() }

// Height returns the surface height.
func (s *ImageSurface) Height() int { return s.img.Bounds().Dy() }

// Kind returns features.ImageSurface.
func (s *ImageSurface) Kind() features.Capability { return features.ImageSurface }

// Clear fills the entire surface with c, replacing existing pixels.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	if c == nil {
		c = color.Transparent
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect composites c over r.
func (s *ImageSurface) FillRect(r image.Rectangle, c color.Color) {
	if s.closed || c == nil {
		return
	}
	r = r.Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// DrawImage composites img into dst. When dst and the image bounds differ
// in size the image is resampled bilinearly.
func (s *ImageSurface) DrawImage(img image.Image, dst image.Rectangle) {
	if s.closed || img == nil || dst.Empty() {
		return
	}
	src := img.Bounds()
	if dst.Size() == src.Size() {
		draw.Draw(s.img, dst, img, src.Min, draw.Over)
		return
	}
	draw.BiLinear.Scale(s.img, dst, img, src, draw.Over, nil)
}

// Flush is a no-op for CPU surfaces.
func (s *ImageSurface) Flush() error { return nil }

// Snapshot returns a copy of the surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, s.Width(), s.Height()))
	draw.Draw(out, out.Bounds(), s.img, s.img.Bounds().Min, draw.Src)
	return out
}

// Image returns the backing image without copying.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Close marks the surface closed. Drawing after Close is ignored.
func (s *ImageSurface) Close() error {
	s.closed = true
	return nil
}
