// Package tech enumerates the research tree and declares each technology's
// prerequisites.
package tech

import "github.com/gamma-delta/center-brain-archive/internal/enum"

// Set describes the Technology enumeration.
var Set = enum.NewSet[Technology]("Technology", names[:])

// Root is the technology every research path starts from.
const Root = DysonSphereProgram

// All returns every technology in declaration order.
func All() []Technology {
	return Set.Members()
}

// Parse returns the technology with the given name.
func Parse(name string) (Technology, error) {
	return Set.Parse(name)
}

// Prerequisites returns the technologies that must be researched before t,
// in declared order. The result is a fresh slice the caller may modify.
// Values outside the enumeration have no prerequisites.
func Prerequisites(t Technology) []Technology {
	if !Set.Contains(t) {
		return []Technology{}
	}
	return append([]Technology{}, prerequisites[t]...)
}

// String returns the declared name of the technology.
func (t Technology) String() string {
	return Set.String(t)
}

// MarshalText encodes the technology as its declared name.
func (t Technology) MarshalText() ([]byte, error) {
	return Set.MarshalText(t)
}

// UnmarshalText decodes a declared technology name.
func (t *Technology) UnmarshalText(text []byte) error {
	v, err := Set.Parse(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
