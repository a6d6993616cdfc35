// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image/color"
	"slices"
	"testing"

	"github.com/gogpu/features"
)

func imageFactory(opts Options) (Surface, error) {
	return NewImageSurface(opts.Width, opts.Height), nil
}

// TestRegistryRegister tests backend registration.
func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	r.Register("test", features.ImageSurface, 50, imageFactory, nil)

	entry, ok := r.Get("test")
	if !ok {
		t.Fatal("registered backend not found")
	}
	if entry.Name != "test" {
		t.Errorf("Name = %s, want test", entry.Name)
	}
	if entry.Priority != 50 {
		t.Errorf("Priority = %d, want 50", entry.Priority)
	}
	if entry.Capability != features.ImageSurface {
		t.Errorf("Capability = %v, want image-surface", entry.Capability)
	}
	if !entry.Available() {
		t.Error("backend should be available (nil Available func)")
	}
}

// TestRegistryUnregister tests backend removal.
func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("temp", features.ImageSurface, 10, imageFactory, nil)
	r.Unregister("temp")

	if _, ok := r.Get("temp"); ok {
		t.Error("backend should not exist after unregister")
	}
}

// TestRegistryPriorityOrder tests priority sorting with name tie-break.
func TestRegistryPriorityOrder(t *testing.T) {
	r := NewRegistry()
	r.SetCapabilities(features.CommonSet())
	r.Register("low", features.ImageSurface, 10, imageFactory, nil)
	r.Register("high", features.ImageSurface, 100, imageFactory, nil)
	r.Register("mid-b", features.ImageSurface, 50, imageFactory, nil)
	r.Register("mid-a", features.ImageSurface, 50, imageFactory, nil)

	want := []string{"high", "mid-a", "mid-b", "low"}
	if got := r.List(); !slices.Equal(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

// TestRegistryCapabilityGating tests that disabled capabilities hide backends.
func TestRegistryCapabilityGating(t *testing.T) {
	r := NewRegistry()
	r.SetCapabilities(features.Select(features.Target{Platform: features.PlatformLinux}))
	r.Register("xcb", features.XCBSurface, 100, imageFactory, nil)
	r.Register("image", features.ImageSurface, 10, imageFactory, nil)

	if got := r.Available(); !slices.Equal(got, []string{"image"}) {
		t.Errorf("Available() = %v, want [image]", got)
	}
	if got := r.List(); !slices.Equal(got, []string{"xcb", "image"}) {
		t.Errorf("List() = %v, want [xcb image]", got)
	}

	_, err := r.NewSurfaceByName("xcb", Options{Width: 4, Height: 4})
	var cde *CapabilityDisabledError
	if !errors.As(err, &cde) {
		t.Fatalf("err = %v, want *CapabilityDisabledError", err)
	}
	if cde.Capability != features.XCBSurface {
		t.Errorf("Capability = %v", cde.Capability)
	}

	s, err := r.NewSurface(Options{Width: 4, Height: 4})
	if err != nil {
		t.Fatal(err)
	}
	if s.Kind() != features.ImageSurface {
		t.Errorf("NewSurface picked %v", s.Kind())
	}

	r.SetCapabilities(features.Select(features.Target{Platform: features.PlatformLinux, IncludeXCB: true}))
	if !r.Enabled("xcb") {
		t.Error("xcb should be enabled once the XCB opt-in is selected")
	}
}

func TestRegistryUnavailable(t *testing.T) {
	r := NewRegistry()
	r.SetCapabilities(features.CommonSet())
	r.Register("broken", features.ImageSurface, 10, imageFactory, func() bool { return false })

	_, err := r.NewSurfaceByName("broken", Options{Width: 1, Height: 1})
	var bue *BackendUnavailableError
	if !errors.As(err, &bue) || bue.Name != "broken" {
		t.Errorf("err = %v, want *BackendUnavailableError", err)
	}
	if _, err := r.NewSurface(Options{}); !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("NewSurface err = %v, want ErrNoBackendAvailable", err)
	}
}

func TestRegistryNotFound(t *testing.T) {
	r := NewRegistry()
	_, err := r.NewSurfaceByName("nope", Options{})
	var bnf *BackendNotFoundError
	if !errors.As(err, &bnf) || bnf.Name != "nope" {
		t.Errorf("err = %v, want *BackendNotFoundError", err)
	}
}

func TestRegistryFactoryError(t *testing.T) {
	r := NewRegistry()
	r.SetCapabilities(features.CommonSet())
	boom := errors.New("boom")
	r.Register("bad", features.ImageSurface, 100, func(Options) (Surface, error) { return nil, boom }, nil)
	r.Register("good", features.ImageSurface, 1, imageFactory, nil)

	s, err := r.NewSurface(Options{Width: 2, Height: 2})
	if err != nil {
		t.Fatalf("NewSurface fell through with %v", err)
	}
	if s.Width() != 2 {
		t.Errorf("Width = %d", s.Width())
	}

	r.Unregister("good")
	if _, err := r.NewSurface(Options{}); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestDefaultRegistryBuiltins(t *testing.T) {
	r := NewDefaultRegistry(features.CommonSet())
	want := []string{"image", "recording", "observer"}
	if got := r.Available(); !slices.Equal(got, want) {
		t.Errorf("Available() = %v, want %v", got, want)
	}

	r.SetCapabilities(features.CommonSet().Without(features.RecordingSurface))
	if r.Enabled("recording") {
		t.Error("recording enabled without its capability")
	}
}

func TestNewSurfaceBackgroundColor(t *testing.T) {
	r := NewDefaultRegistry(features.CommonSet())
	s, err := r.NewSurfaceByName("image", Options{Width: 2, Height: 2, BackgroundColor: color.White})
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Snapshot().RGBAAt(1, 1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel = %v, want white", got)
	}
}

func TestGlobalRegistryUsesHostSet(t *testing.T) {
	if Capabilities() != features.HostSet() {
		t.Errorf("Capabilities() = %v, want host set %v", Capabilities(), features.HostSet())
	}
	s, err := NewSurfaceByName("image", 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if s.Width() != 8 || s.Height() != 8 {
		t.Errorf("size = %dx%d", s.Width(), s.Height())
	}
}
