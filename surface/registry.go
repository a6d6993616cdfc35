// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/gogpu/features"
)

// SurfaceFactory builds a surface from opts.
type SurfaceFactory func(opts Options) (Surface, error)

// RegistryEntry describes a registered backend.
type RegistryEntry struct {
	Name string

	// Capability must be in the registry's set for the backend to be used.
	Capability features.Capability

	// Priority orders automatic selection; higher wins.
	Priority int

	Factory SurfaceFactory

	// Available reports whether the backend can run on this machine. It is
	// checked in addition to Capability.
	Available func() bool
}

// Registry maps backend names to factories, gated by a capability set.
//
// A backend is handed out only when its capability is in the set and its
// Available func reports true:
//
//	r := surface.NewDefaultRegistry(features.Select(target))
//	s, err := r.NewSurface(surface.DefaultOptions(640, 480))
type Registry struct {
	mu      sync.RWMutex
	entries []*RegistryEntry // by descending priority, then name
	caps    features.Set
}

// NewRegistry returns an empty registry gated by features.HostSet().
func NewRegistry() *Registry {
	return &Registry{caps: features.HostSet()}
}

// NewDefaultRegistry returns a registry holding the in-memory backends
// (image, recording, observer), gated by caps.
func NewDefaultRegistry(caps features.Set) *Registry {
	r := &Registry{caps: caps}
	registerBuiltins(r)
	return r
}

var defaultRegistry = NewDefaultRegistry(features.HostSet())

// Default returns the process-wide registry, gated by the host build.
func Default() *Registry { return defaultRegistry }

// Register adds a backend to the default registry.
func Register(name string, capability features.Capability, priority int, factory SurfaceFactory, available func() bool) {
	defaultRegistry.Register(name, capability, priority, factory, available)
}

// Capabilities returns the capability set of the default registry.
func Capabilities() features.Set { return defaultRegistry.Capabilities() }

// NewSurface creates a width x height surface with the default registry's
// best backend.
func NewSurface(width, height int) (Surface, error) {
	return defaultRegistry.NewSurface(DefaultOptions(width, height))
}

// NewSurfaceByName creates a width x height surface with the named backend
// of the default registry.
func NewSurfaceByName(name string, width, height int) (Surface, error) {
	return defaultRegistry.NewSurfaceByName(name, DefaultOptions(width, height))
}

// Register adds or replaces a backend. A nil available means always
// available.
func (r *Registry) Register(name string, capability features.Capability, priority int, factory SurfaceFactory, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}
	e := &RegistryEntry{
		Name:       name,
		Capability: capability,
		Priority:   priority,
		Factory:    factory,
		Available:  available,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = slices.DeleteFunc(r.entries, func(old *RegistryEntry) bool { return old.Name == name })
	i, _ := slices.BinarySearchFunc(r.entries, e, compareEntries)
	r.entries = slices.Insert(r.entries, i, e)
}

func compareEntries(a, b *RegistryEntry) int {
	if a.Priority != b.Priority {
		return b.Priority - a.Priority
	}
	return strings.Compare(a.Name, b.Name)
}

// Unregister removes a backend. Unknown names are ignored.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = slices.DeleteFunc(r.entries, func(e *RegistryEntry) bool { return e.Name == name })
}

// SetCapabilities replaces the gating set.
func (r *Registry) SetCapabilities(caps features.Set) {
	r.mu.Lock()
	r.caps = caps
	r.mu.Unlock()
	features.Logger().Debug("surface: capabilities updated", "capabilities", caps.String())
}

// Capabilities returns the gating set.
func (r *Registry) Capabilities() features.Set {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.caps
}

// List returns every registered backend name in selection order.
func (r *Registry) List() []string {
	return r.names(false)
}

// Available returns the names of usable backends in selection order.
func (r *Registry) Available() []string {
	return r.names(true)
}

func (r *Registry) names(usableOnly bool) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	for _, e := range r.entries {
		if usableOnly && !r.usableLocked(e) {
			continue
		}
		out = append(out, e.Name)
	}
	return out
}

// Enabled reports whether name is registered and usable.
func (r *Registry) Enabled(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e := r.findLocked(name)
	return e != nil && r.usableLocked(e)
}

// Get returns a copy of the named entry.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e := r.findLocked(name)
	if e == nil {
		return nil, false
	}
	cp := *e
	return &cp, true
}

// NewSurface tries the usable backends in order and returns the first
// surface created. If every factory fails the last error is returned.
func (r *Registry) NewSurface(opts Options) (Surface, error) {
	names := r.Available()
	if len(names) == 0 {
		return nil, ErrNoBackendAvailable
	}
	var err error
	for _, name := range names {
		var s Surface
		if s, err = r.NewSurfaceByName(name, opts); err == nil {
			return s, nil
		}
		features.Logger().Debug("surface: backend failed, trying next", "backend", name, "err", err)
	}
	return nil, err
}

// NewSurfaceByName creates a surface with the named backend and clears it
// to opts.BackgroundColor when one is set.
func (r *Registry) NewSurfaceByName(name string, opts Options) (Surface, error) {
	r.mu.RLock()
	e := r.findLocked(name)
	caps := r.caps
	r.mu.RUnlock()

	switch {
	case e == nil:
		return nil, &BackendNotFoundError{Name: name}
	case !caps.Has(e.Capability):
		return nil, &CapabilityDisabledError{Name: name, Capability: e.Capability}
	case !e.Available():
		return nil, &BackendUnavailableError{Name: name}
	}

	s, err := e.Factory(opts)
	if err != nil {
		return nil, err
	}
	if opts.BackgroundColor != nil {
		s.Clear(opts.BackgroundColor)
	}
	features.Logger().Debug("surface: created", "backend", name, "width", s.Width(), "height", s.Height())
	return s, nil
}

func (r *Registry) findLocked(name string) *RegistryEntry {
	for _, e := range r.entries {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func (r *Registry) usableLocked(e *RegistryEntry) bool {
	return r.caps.Has(e.Capability) && e.Available()
}

// ErrNoBackendAvailable is returned by NewSurface when no backend is usable.
var ErrNoBackendAvailable = errors.New("surface: no backend available")

// BackendNotFoundError reports an unregistered backend name.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: unknown backend " + e.Name
}

// BackendUnavailableError reports a registered backend that cannot run on
// this machine.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend " + e.Name + " is not available on this machine"
}

// CapabilityDisabledError reports a backend, or a surface operation, whose
// capability is not in the registry's set.
type CapabilityDisabledError struct {
	Name       string
	Capability features.Capability
}

func (e *CapabilityDisabledError) Error() string {
	return "surface: " + e.Name + " disabled: " + e.Capability.Symbol() + " not enabled"
}

func registerBuiltins(r *Registry) {
	r.Register("image", features.ImageSurface, 10, func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	}, nil)
	r.Register("recording", features.RecordingSurface, 5, func(opts Options) (Surface, error) {
		return NewRecordingSurface(opts.Width, opts.Height), nil
	}, nil)
	r.Register("observer", features.ObserverSurface, 1, func(opts Options) (Surface, error) {
		target := opts.Target
		if target == nil {
			target = NewImageSurface(opts.Width, opts.Height)
		}
		return NewObserverSurface(target), nil
	}, nil)
}
