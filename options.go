package features

// ResolverOption configures a Resolver during creation.
//
// Example:
//
//	// Fail on unknown platforms and when PDF output is unavailable.
//	r := features.NewResolver(
//	    features.WithStrict(),
//	    features.WithRequired(features.PDFSurface),
//	)
type ResolverOption func(*resolverOptions)

// resolverOptions holds optional configuration for a Resolver.
type resolverOptions struct {
	strict   bool
	required Set
	disabled Set
}

// WithStrict turns an unrecognized platform into ErrUnknownPlatform instead
// of silently resolving to the common set.
func WithStrict() ResolverOption {
	return func(o *resolverOptions) {
		o.strict = true
	}
}

// WithRequired makes Resolve fail with *MissingCapabilityError when any of
// caps is not selected for the target.
func WithRequired(caps ...Capability) ResolverOption {
	return func(o *resolverOptions) {
		o.required = o.required.Union(NewSet(caps...))
	}
}

// WithDisabled removes caps from every resolved set. It lets a build drop
// a backend the platform would otherwise provide; it never adds one.
func WithDisabled(caps ...Capability) ResolverOption {
	return func(o *resolverOptions) {
		o.disabled = o.disabled.Union(NewSet(caps...))
	}
}
