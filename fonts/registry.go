package fonts

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/features"
)

// Backend is a named font implementation bound to a capability.
type Backend interface {
	// Name returns the backend identifier (e.g. "ft").
	Name() string

	// Capability returns the capability the backend implements.
	Capability() features.Capability
}

// Loader is implemented by backends that build faces from font file data.
type Loader interface {
	Backend
	Load(data []byte) (Face, error)
}

// Errors.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("fonts: empty font data")

	// ErrNoMatch is returned when no font matches a family.
	ErrNoMatch = errors.New("fonts: no matching font")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "fonts: backend not found: " + e.Name
}

// CapabilityDisabledError indicates the backend's capability is not part of
// the capability set.
type CapabilityDisabledError struct {
	Name       string
	Capability features.Capability
}

func (e *CapabilityDisabledError) Error() string {
	return "fonts: " + e.Name + " disabled: " + e.Capability.Symbol() + " not enabled"
}

// NotLoaderError indicates a backend cannot load font data.
type NotLoaderError struct {
	Name string
}

func (e *NotLoaderError) Error() string {
	return "fonts: backend " + e.Name + " does not load font data"
}

// Registry holds font backends and the capability set that gates them.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
	caps     features.Set
	faces    *faceCache
}

// NewRegistry creates an empty registry gated by caps.
func NewRegistry(caps features.Set) *Registry {
	return &Registry{
		backends: make(map[string]Backend),
		caps:     caps,
		faces:    newFaceCache(DefaultFaceCacheSize),
	}
}

// NewDefaultRegistry creates a registry with the built-in backends.
func NewDefaultRegistry(caps features.Set) *Registry {
	r := NewRegistry(caps)
	r.Register(UserBackend{})
	r.Register(NewFTBackend())
	return r
}

var globalRegistry = NewDefaultRegistry(features.HostSet())

// Default returns the global registry, gated by features.HostSet().
func Default() *Registry { return globalRegistry }

// Register adds a backend.
//
// Register panics if b is nil or a backend with the same name is already
// registered, so duplicate registrations from init functions are caught
// at startup.
func (r *Registry) Register(b Backend) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b == nil {
		panic("fonts: Register backend is nil")
	}
	if _, dup := r.backends[b.Name()]; dup {
		panic("fonts: Register called twice for " + b.Name())
	}
	r.backends[b.Name()] = b
}

// Unregister removes a backend. Unknown names are ignored.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.backends, name)
}

// SetCapabilities replaces the gating capability set. Cached faces are
// dropped.
func (r *Registry) SetCapabilities(caps features.Set) {
	r.mu.Lock()
	r.caps = caps
	r.mu.Unlock()
	r.faces.clear()
}

// CacheStats returns statistics of the loaded face cache.
func (r *Registry) CacheStats() CacheStats { return r.faces.stats() }

// Capabilities returns the gating capability set.
func (r *Registry) Capabilities() features.Set {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.caps
}

// Backends returns the registered backend names in alphabetical order.
func (r *Registry) Backends() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names(false)
}

// Enabled returns the names of backends whose capability is enabled,
// in alphabetical order.
func (r *Registry) Enabled() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names(true)
}

// must be called with the lock held.
func (r *Registry) names(onlyEnabled bool) []string {
	names := make([]string, 0, len(r.backends))
	for name, b := range r.backends {
		if onlyEnabled && !r.caps.Has(b.Capability()) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named backend whether or not its capability is
// enabled.
func (r *Registry) Lookup(name string) (Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.backends[name]
	return b, ok
}

// Backend returns the named backend if it is registered and enabled.
func (r *Registry) Backend(name string) (Backend, error) {
	r.mu.RLock()
	b, ok := r.backends[name]
	caps := r.caps
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !caps.Has(b.Capability()) {
		return nil, &CapabilityDisabledError{Name: name, Capability: b.Capability()}
	}
	return b, nil
}

// BackendFor returns the enabled backend implementing c. When several
// backends implement c, the first by name wins.
func (r *Registry) BackendFor(c features.Capability) (Backend, error) {
	r.mu.RLock()
	caps := r.caps
	var found Backend
	for _, name := range r.names(false) {
		if b := r.backends[name]; b.Capability() == c {
			found = b
			break
		}
	}
	r.mu.RUnlock()

	if !caps.Has(c) {
		return nil, &CapabilityDisabledError{Name: c.Key(), Capability: c}
	}
	if found == nil {
		return nil, &BackendNotFoundError{Name: c.Key()}
	}
	return found, nil
}

// Load parses data with the named backend. Faces are cached by backend
// and content, so loading the same data twice returns the same Face.
func (r *Registry) Load(name string, data []byte) (Face, error) {
	b, err := r.Backend(name)
	if err != nil {
		return nil, err
	}
	l, ok := b.(Loader)
	if !ok {
		return nil, &NotLoaderError{Name: name}
	}
	return r.faces.getOrLoad(newFaceKey(name, data), func() (Face, error) {
		face, err := l.Load(data)
		if err != nil {
			return nil, fmt.Errorf("fonts: %s: %w", name, err)
		}
		features.Logger().Debug("fonts: face loaded", "backend", name, "family", face.Family())
		return face, nil
	})
}

// NewUserFace builds a callback-defined face, provided user fonts are enabled.
func (r *Registry) NewUserFace(cfg UserFaceConfig) (Face, error) {
	b, err := r.Backend(userBackendName)
	if err != nil {
		return nil, err
	}
	return b.(UserBackend).NewFace(cfg)
}

// NewMatcher creates a font matcher over dirs, provided Fontconfig-style
// matching is enabled. With no dirs the platform defaults are used.
func (r *Registry) NewMatcher(dirs ...string) (*Matcher, error) {
	caps := r.Capabilities()
	if !caps.Has(features.FCFont) {
		return nil, &CapabilityDisabledError{Name: "fc", Capability: features.FCFont}
	}
	if len(dirs) == 0 {
		dirs = DefaultDirs(features.Host().Platform)
	}
	return &Matcher{registry: r, dirs: dirs}, nil
}
