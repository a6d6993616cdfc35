package features

import "fmt"

// Resolver wraps Select with optional diagnostics. The zero value behaves
// exactly like Select.
type Resolver struct {
	opts resolverOptions
}

// NewResolver creates a Resolver with the given options.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(&r.opts)
	}
	return r
}

// Strict reports whether unknown platforms are rejected.
func (r *Resolver) Strict() bool { return r.opts.strict }

// Required returns the capabilities Resolve insists on.
func (r *Resolver) Required() Set { return r.opts.required }

// Resolve selects the capabilities for t and applies the resolver's
// policy. A non-strict resolver without requirements never fails.
func (r *Resolver) Resolve(t Target) (Set, error) {
	return r.resolve(t, Select(t))
}

// ResolveSymbols detects the target from raw symbols and resolves the set
// SelectSymbols computes for them. The two only differ from Resolve when
// both __APPLE__ and __linux__ are defined, in which case both platform
// sets are kept.
func (r *Resolver) ResolveSymbols(sym Symbols) (Set, error) {
	return r.resolve(DetectTarget(sym), SelectSymbols(sym))
}

func (r *Resolver) resolve(t Target, selected Set) (Set, error) {
	log := Logger()

	if !t.Platform.Known() {
		if r.opts.strict {
			return 0, fmt.Errorf("%w: %s", ErrUnknownPlatform, t.Platform)
		}
		log.Warn("features: unrecognized platform, enabling common capabilities only",
			"platform", t.Platform.String())
	}
	if t.IncludeXCB && t.Platform != PlatformLinux {
		log.Debug("features: XCB opt-in ignored outside Linux", "platform", t.Platform.String())
	}

	set := selected.Difference(r.opts.disabled)

	if missing := r.opts.required.Difference(set); !missing.Empty() {
		target := t
		return set, &MissingCapabilityError{Target: &target, Missing: missing}
	}

	log.Debug("features: capabilities selected",
		"target", t.String(),
		"count", set.Len(),
		"capabilities", set.String())
	return set, nil
}
