// Package item enumerates every item of Dyson Sphere Program known to the
// archive. Member names are the JSON keys of the item-keyed indices and must
// not be respelled.
package item

import "github.com/gamma-delta/center-brain-archive/internal/enum"

// Set describes the Item enumeration.
var Set = enum.NewSet[Item]("Item", names[:])

// All returns every item in declaration order.
func All() []Item {
	return Set.Members()
}

// Parse returns the item with the given name.
func Parse(name string) (Item, error) {
	return Set.Parse(name)
}

// String returns the declared name of the item.
func (i Item) String() string {
	return Set.String(i)
}

// MarshalText encodes the item as its declared name.
func (i Item) MarshalText() ([]byte, error) {
	return Set.MarshalText(i)
}

// UnmarshalText decodes a declared item name.
func (i *Item) UnmarshalText(text []byte) error {
	v, err := Set.Parse(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
