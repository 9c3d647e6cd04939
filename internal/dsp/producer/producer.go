// Package producer enumerates the buildings a recipe can be made in.
package producer

import "github.com/gamma-delta/center-brain-archive/internal/enum"

// Set describes the Producer enumeration.
var Set = enum.NewSet[Producer]("Producer", names[:])

// All returns every producer in declaration order.
func All() []Producer {
	return Set.Members()
}

// Parse returns the producer with the given name.
func Parse(name string) (Producer, error) {
	return Set.Parse(name)
}

// String returns the declared name of the producer.
func (p Producer) String() string {
	return Set.String(p)
}

// MarshalText encodes the producer as its declared name.
func (p Producer) MarshalText() ([]byte, error) {
	return Set.MarshalText(p)
}

// UnmarshalText decodes a declared producer name.
func (p *Producer) UnmarshalText(text []byte) error {
	v, err := Set.Parse(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
