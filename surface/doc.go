// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides rendering targets whose availability is gated by
// the build's capability set.
//
// Every backend is registered under a name and bound to the capability it
// implements (features.ImageSurface, features.RecordingSurface, ...). A
// Registry only hands out surfaces whose capability is enabled, so a build
// that was configured without a backend fails with a clear
// *CapabilityDisabledError instead of at first use.
//
// # Built-in backends
//
//   - "image": CPU surface backed by *image.RGBA
//   - "recording": records operations and replays them onto another surface
//   - "observer": forwards to a target surface and reports every operation
//
// # Usage
//
//	s, err := surface.NewSurfaceByName("image", 800, 600)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	s.Clear(color.White)
//	s.FillRect(image.Rect(10, 10, 110, 60), color.RGBA{255, 0, 0, 255})
//	if err := surface.WritePNG(w, s); err != nil {
//	    return err
//	}
//
// The default registry uses features.HostSet(). Tools that resolve a
// different target build their own with NewDefaultRegistry.
package surface
