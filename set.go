package features

import (
	"encoding/json"
	"math/bits"
	"strings"
)

// Set is an immutable set of capabilities. The zero value is the empty set.
//
// Sets are plain values; methods that "modify" a set return a new one.
type Set uint32

// NewSet returns a set holding the given capabilities. Invalid
// capabilities are ignored.
func NewSet(caps ...Capability) Set {
	var s Set
	for _, c := range caps {
		s = s.With(c)
	}
	return s
}

// Has reports whether c is in the set.
func (s Set) Has(c Capability) bool {
	return c.Valid() && s&(1<<c) != 0
}

// HasAll reports whether every capability in caps is in the set.
func (s Set) HasAll(caps ...Capability) bool {
	for _, c := range caps {
		if !s.Has(c) {
			return false
		}
	}
	return true
}

// With returns s plus c.
func (s Set) With(c Capability) Set {
	if !c.Valid() {
		return s
	}
	return s | 1<<c
}

// Without returns s minus c.
func (s Set) Without(c Capability) Set {
	if !c.Valid() {
		return s
	}
	return s &^ (1 << c)
}

// Union returns the capabilities in s or o.
func (s Set) Union(o Set) Set { return s | o }

// Intersect returns the capabilities in both s and o.
func (s Set) Intersect(o Set) Set { return s & o }

// Difference returns the capabilities in s that are not in o.
func (s Set) Difference(o Set) Set { return s &^ o }

// Equal reports whether both sets hold the same capabilities.
func (s Set) Equal(o Set) bool { return s == o }

// Empty reports whether the set holds nothing.
func (s Set) Empty() bool { return s == 0 }

// Len returns the number of capabilities in the set.
func (s Set) Len() int { return bits.OnesCount32(uint32(s)) }

// List returns the capabilities in header order.
func (s Set) List() []Capability {
	out := make([]Capability, 0, s.Len())
	for c := Capability(0); c < numCapabilities; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Keys returns the short keys of the capabilities in header order.
func (s Set) Keys() []string {
	caps := s.List()
	keys := make([]string, len(caps))
	for i, c := range caps {
		keys[i] = c.Key()
	}
	return keys
}

// Symbols returns the header symbols of the capabilities in header order.
func (s Set) Symbols() []string {
	caps := s.List()
	syms := make([]string, len(caps))
	for i, c := range caps {
		syms[i] = c.Symbol()
	}
	return syms
}

// String returns the keys in braces, e.g. "{image-surface png-functions}".
func (s Set) String() string {
	return "{" + strings.Join(s.Keys(), " ") + "}"
}

// ParseSet parses a list of keys or symbols.
func ParseSet(names []string) (Set, error) {
	var s Set
	for _, n := range names {
		c, err := ParseCapability(n)
		if err != nil {
			return 0, err
		}
		s = s.With(c)
	}
	return s, nil
}

// MarshalJSON encodes the set as a sorted array of keys.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Keys())
}

// UnmarshalJSON decodes an array of keys or symbols.
func (s *Set) UnmarshalJSON(b []byte) error {
	var names []string
	if err := json.Unmarshal(b, &names); err != nil {
		return err
	}
	v, err := ParseSet(names)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalYAML encodes the set as a sequence of keys.
func (s Set) MarshalYAML() (any, error) {
	return s.Keys(), nil
}

// UnmarshalYAML decodes a sequence of keys or symbols.
func (s *Set) UnmarshalYAML(unmarshal func(any) error) error {
	var names []string
	if err := unmarshal(&names); err != nil {
		return err
	}
	v, err := ParseSet(names)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
