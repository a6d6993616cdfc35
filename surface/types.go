// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image"
	"image/color"
)

// OpKind identifies a drawing operation.
type OpKind uint8

const (
	OpClear OpKind = iota
	OpFillRect
	OpDrawImage
	OpFlush
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpFillRect:
		return "fill-rect"
	case OpDrawImage:
		return "draw-image"
	case OpFlush:
		return "flush"
	}
	return fmt.Sprintf("OpKind(%d)", k)
}

// Operation is one recorded or observed drawing call.
type Operation struct {
	Kind  OpKind
	Rect  image.Rectangle
	Color color.Color
	Image image.Image
}

// apply replays op onto s.
func (op Operation) apply(s Surface) error {
	switch op.Kind {
	case OpClear:
		s.Clear(op.Color)
	case OpFillRect:
		s.FillRect(op.Rect, op.Color)
	case OpDrawImage:
		s.DrawImage(op.Image, op.Rect)
	case OpFlush:
		return s.Flush()
	}
	return nil
}

// Options configures surface creation.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int

	// BackgroundColor is the initial background color.
	// Default: transparent
	BackgroundColor color.Color

	// Target is the surface wrapped by the observer backend. When nil the
	// observer wraps a new image surface.
	Target Surface

	// Custom options for specific backends.
	Custom map[string]any
}

// DefaultOptions returns Options with default values.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:  width,
		Height: height,
	}
}
