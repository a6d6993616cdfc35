package features

import (
	"errors"
	"strings"
)

// Sentinel errors for the features package.
var (
	// ErrUnknownPlatform is returned when a platform name cannot be parsed,
	// or by a strict Resolver when the target platform is not one of
	// Windows, Apple or Linux.
	ErrUnknownPlatform = errors.New("features: unknown platform")

	// ErrUnknownCapability is returned when a capability name cannot be parsed.
	ErrUnknownCapability = errors.New("features: unknown capability")
)

// MissingCapabilityError reports capabilities that were required but are
// not part of the selected set.
type MissingCapabilityError struct {
	Target  *Target
	Missing Set
}

func (e *MissingCapabilityError) Error() string {
	var sb strings.Builder
	sb.WriteString("features: missing capabilities ")
	sb.WriteString(strings.Join(e.Missing.Symbols(), ", "))
	if e.Target != nil {
		sb.WriteString(" for target ")
		sb.WriteString(e.Target.String())
	}
	return sb.String()
}

// Require returns a *MissingCapabilityError when any of caps is absent
// from s, and nil otherwise.
//
// The selector itself never fails on missing capabilities; Require lets
// code that depends on an optional backend fail early with a clear message
// instead of when the backend is first used.
func Require(s Set, caps ...Capability) error {
	missing := NewSet(caps...).Difference(s)
	if missing.Empty() {
		return nil
	}
	return &MissingCapabilityError{Missing: missing}
}
