// Package enum describes closed enumerations by their member names and
// provides total mappings keyed by them.
//
// A member is a dense integer starting at zero; its name is the spelling
// used on the wire. Iteration is always in declaration order.
package enum

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrUnknownMember is returned when a name or value is not part of an enumeration.
var ErrUnknownMember = errors.New("unknown member")

// Key constrains the types that can be enumerated.
type Key interface {
	~int
}

// Set describes a closed enumeration: its type name and the names of its
// members in declaration order.
type Set[K Key] struct {
	name  string
	names []string
	index map[string]K
}

// NewSet builds the description of an enumeration. names[i] is the name of
// member K(i). It panics when the enumeration is empty or a name is blank or
// repeated, since that is a mistake in a literal table.
func NewSet[K Key](typeName string, names []string) *Set[K] {
	if len(names) == 0 {
		panic(fmt.Sprintf("enum: %s has no members", typeName))
	}
	index := make(map[string]K, len(names))
	for i, n := range names {
		if n == "" {
			panic(fmt.Sprintf("enum: %s member %d has no name", typeName, i))
		}
		if _, dup := index[n]; dup {
			panic(fmt.Sprintf("enum: %s member %q declared twice", typeName, n))
		}
		index[n] = K(i)
	}
	return &Set[K]{name: typeName, names: slices.Clone(names), index: index}
}

// Name returns the type name of the enumeration.
func (s *Set[K]) Name() string {
	return s.name
}

// Len returns the number of members.
func (s *Set[K]) Len() int {
	return len(s.names)
}

// Contains reports whether k is a member.
func (s *Set[K]) Contains(k K) bool {
	return k >= 0 && int(k) < len(s.names)
}

// String returns the name of k. Values outside the enumeration render as
// Type(n).
func (s *Set[K]) String(k K) string {
	if !s.Contains(k) {
		return fmt.Sprintf("%s(%d)", s.name, int(k))
	}
	return s.names[k]
}

// Names returns a copy of the member names in declaration order.
func (s *Set[K]) Names() []string {
	return slices.Clone(s.names)
}

// Members returns every member in declaration order.
func (s *Set[K]) Members() []K {
	members := make([]K, len(s.names))
	for i := range members {
		members[i] = K(i)
	}
	return members
}

// All yields every member in declaration order.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range s.names {
			if !yield(K(i)) {
				return
			}
		}
	}
}

// Parse returns the member with the given name. Matching is exact.
func (s *Set[K]) Parse(name string) (K, error) {
	k, ok := s.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s %q", ErrUnknownMember, s.name, name)
	}
	return k, nil
}

// MarshalText renders k as its name, failing for values outside the
// enumeration. Enumerated types delegate their encoding.TextMarshaler here.
func (s *Set[K]) MarshalText(k K) ([]byte, error) {
	if !s.Contains(k) {
		return nil, fmt.Errorf("%w: %s(%d)", ErrUnknownMember, s.name, int(k))
	}
	return []byte(s.names[k]), nil
}
