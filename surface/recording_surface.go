// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
	"image/color"
	"slices"

	"github.com/gogpu/features"
)

// ErrSurfaceClosed is returned when replaying a closed recording.
var ErrSurfaceClosed = errors.New("surface: surface closed")

// RecordingSurface captures drawing operations instead of rasterizing them.
// The recorded operations can be replayed onto any other surface, which is
// how one drawing is sent to several output formats.
//
// Example:
//
//	rec := surface.NewRecordingSurface(800, 600)
//	rec.Clear(color.White)
//	rec.FillRect(image.Rect(10, 10, 50, 50), color.Black)
//
//	img := surface.NewImageSurface(800, 600)
//	if err := rec.Replay(img); err != nil {
//	    return err
//	}
type RecordingSurface struct {
	width, height int
	ops           []Operation
	closed        bool
}

// NewRecordingSurface creates an empty recording with the given extents.
func NewRecordingSurface(width, height int) *RecordingSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &RecordingSurface{
		width:  width,
		height: height,
		ops:    make([]Operation, 0, 64),
	}
}

// Width returns the recording width.
func (s *RecordingSurface) Width() int { return s.width }

// Height returns the recording height.
func (s *RecordingSurface) Height() int { return s.height }

// Kind returns features.RecordingSurface.
func (s *RecordingSurface) Kind() features.Capability { return features.RecordingSurface }

// Clear records a clear. Operations recorded before it can no longer
// affect the result and are dropped.
func (s *RecordingSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	s.ops = append(s.ops[:0], Operation{Kind: OpClear, Color: c})
}

// FillRect records a rectangle fill.
func (s *RecordingSurface) FillRect(r image.Rectangle, c color.Color) {
	if s.closed {
		return
	}
	s.ops = append(s.ops, Operation{Kind: OpFillRect, Rect: r, Color: c})
}

// DrawImage records an image draw. The image is referenced, not copied.
func (s *RecordingSurface) DrawImage(img image.Image, dst image.Rectangle) {
	if s.closed {
		return
	}
	s.ops = append(s.ops, Operation{Kind: OpDrawImage, Rect: dst, Image: img})
}

// Flush is a no-op; flushes are not recorded.
func (s *RecordingSurface) Flush() error { return nil }

// Operations returns a copy of the recorded operations.
func (s *RecordingSurface) Operations() []Operation {
	return slices.Clone(s.ops)
}

// Len returns the number of recorded operations.
func (s *RecordingSurface) Len() int { return len(s.ops) }

// Replay applies every recorded operation to dst in order.
func (s *RecordingSurface) Replay(dst Surface) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	for _, op := range s.ops {
		if err := op.apply(dst); err != nil {
			return err
		}
	}
	return nil
}

// Snapshot rasterizes the recording onto a new image.
func (s *RecordingSurface) Snapshot() *image.RGBA {
	img := NewImageSurface(s.width, s.height)
	for _, op := range s.ops {
		_ = op.apply(img)
	}
	return img.Image()
}

// Close releases the recorded operations.
func (s *RecordingSurface) Close() error {
	s.closed = true
	s.ops = nil
	return nil
}
