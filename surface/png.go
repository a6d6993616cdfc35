// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/gogpu/features"
	"golang.org/x/image/draw"
)

// WritePNG encodes a snapshot of s as PNG, provided the default registry
// has features.PNGFunctions enabled.
func WritePNG(w io.Writer, s Surface) error {
	return defaultRegistry.WritePNG(w, s)
}

// ReadPNG decodes a PNG into a new ImageSurface, provided the global
// registry has features.PNGFunctions and features.ImageSurface enabled.
func ReadPNG(r io.Reader) (*ImageSurface, error) {
	return defaultRegistry.ReadPNG(r)
}

// WritePNG encodes a snapshot of s as PNG.
func (r *Registry) WritePNG(w io.Writer, s Surface) error {
	if err := r.requirePNG(); err != nil {
		return err
	}
	if err := s.Flush(); err != nil {
		return fmt.Errorf("surface: flush before png encode: %w", err)
	}
	if err := png.Encode(w, s.Snapshot()); err != nil {
		return fmt.Errorf("surface: png encode: %w", err)
	}
	return nil
}

// ReadPNG decodes a PNG into a new ImageSurface.
func (r *Registry) ReadPNG(rd io.Reader) (*ImageSurface, error) {
	if err := r.requirePNG(); err != nil {
		return nil, err
	}
	if caps := r.Capabilities(); !caps.Has(features.ImageSurface) {
		return nil, &CapabilityDisabledError{Name: "image", Capability: features.ImageSurface}
	}
	img, err := png.Decode(rd)
	if err != nil {
		return nil, fmt.Errorf("surface: png decode: %w", err)
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return NewImageSurfaceFromImage(rgba), nil
}

func (r *Registry) requirePNG() error {
	if caps := r.Capabilities(); !caps.Has(features.PNGFunctions) {
		return &CapabilityDisabledError{Name: "png", Capability: features.PNGFunctions}
	}
	return nil
}
