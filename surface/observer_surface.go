// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"github.com/gogpu/features"
)

// ObserverFunc is called after every operation performed on an
// ObserverSurface.
type ObserverFunc func(op Operation)

// ObserverStats counts the operations that passed through an observer.
type ObserverStats struct {
	Clears     int
	FillRects  int
	DrawImages int
	Flushes    int
}

// Total returns the number of observed operations.
func (st ObserverStats) Total() int {
	return st.Clears + st.FillRects + st.DrawImages + st.Flushes
}

// ObserverSurface forwards every operation to a target surface and then
// notifies the registered observers.
type ObserverSurface struct {
	target    Surface
	observers []ObserverFunc
	stats     ObserverStats
}

// NewObserverSurface wraps target.
func NewObserverSurface(target Surface) *ObserverSurface {
	return &ObserverSurface{target: target}
}

// Observe registers fn. Observers run in registration order.
func (s *ObserverSurface) Observe(fn ObserverFunc) {
	if fn != nil {
		s.observers = append(s.observers, fn)
	}
}

// Stats returns the operation counters.
func (s *ObserverSurface) Stats() ObserverStats { return s.stats }

// Target returns the wrapped surface.
func (s *ObserverSurface) Target() Surface { return s.target }

func (s *ObserverSurface) notify(op Operation) {
	switch op.Kind {
	case OpClear:
		s.stats.Clears++
	case OpFillRect:
		s.stats.FillRects++
	case OpDrawImage:
		s.stats.DrawImages++
	case OpFlush:
		s.stats.Flushes++
	}
	for _, fn := range s.observers {
		fn(op)
	}
}

func (s *ObserverSurface) Width() int  { return s.target.Width() }
func (s *ObserverSurface) Height() int { return s.target.Height() }

// Kind returns features.ObserverSurface.
func (s *ObserverSurface) Kind() features.Capability { return features.ObserverSurface }

func (s *ObserverSurface) Clear(c color.Color) {
	s.target.Clear(c)
	s.notify(Operation{Kind: OpClear, Color: c})
}

func (s *ObserverSurface) FillRect(r image.Rectangle, c color.Color) {
	s.target.FillRect(r, c)
	s.notify(Operation{Kind: OpFillRect, Rect: r, Color: c})
}

func (s *ObserverSurface) DrawImage(img image.Image, dst image.Rectangle) {
	s.target.DrawImage(img, dst)
	s.notify(Operation{Kind: OpDrawImage, Rect: dst, Image: img})
}

func (s *ObserverSurface) Flush() error {
	err := s.target.Flush()
	s.notify(Operation{Kind: OpFlush})
	return err
}

func (s *ObserverSurface) Snapshot() *image.RGBA { return s.target.Snapshot() }

// Close closes the wrapped surface.
func (s *ObserverSurface) Close() error { return s.target.Close() }
