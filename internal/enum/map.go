package enum

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrDuplicateKey is returned when a serialised map names a member twice.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrMissingKey is returned when a serialised map omits members.
var ErrMissingKey = errors.New("missing key")

// ErrNoSet is returned when decoding into a Map that was not created from a Set.
var ErrNoSet = errors.New("map has no enumeration")

// Map is a total mapping from every member of an enumeration to a value.
// It has no absent keys: Get never fails and the serialised form always
// carries exactly one key per member.
type Map[K Key, V any] struct {
	set    *Set[K]
	values []V
}

// Build evaluates f once per member, in declaration order.
func Build[K Key, V any](set *Set[K], f func(K) V) Map[K, V] {
	values := make([]V, set.Len())
	for i := range values {
		values[i] = f(K(i))
	}
	return Map[K, V]{set: set, values: values}
}

// Empty returns a Map over set that holds no values yet. It is only useful
// as a target for UnmarshalJSON; Len reports 0 until then.
func Empty[K Key, V any](set *Set[K]) Map[K, V] {
	return Map[K, V]{set: set}
}

// Get returns the value for k. k must be a member of the enumeration.
func (m Map[K, V]) Get(k K) V {
	return m.values[k]
}

// Len returns the number of entries.
func (m Map[K, V]) Len() int {
	return len(m.values)
}

// Domain returns the enumeration the map is keyed by.
func (m Map[K, V]) Domain() *Set[K] {
	return m.set
}

// All yields every (member, value) pair in declaration order.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, v := range m.values {
			if !yield(K(i), v) {
				return
			}
		}
	}
}

// MarshalJSON encodes the map as an object whose keys are the member names
// in declaration order.
func (m Map[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range m.values {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.set.names[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("enum: %s %s: %w", m.set.name, m.set.names[i], err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object that names every member exactly once.
// Unknown, repeated and missing keys are errors, and so are unknown fields
// inside the values. The receiver must come from Empty or Build.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	if m.set == nil {
		return ErrNoSet
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("enum: %s map: %w", m.set.name, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("enum: %s map: expected object, got %v", m.set.name, tok)
	}

	values := make([]V, m.set.Len())
	seen := make([]bool, m.set.Len())
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("enum: %s map: %w", m.set.name, err)
		}
		name, _ := tok.(string)
		k, err := m.set.Parse(name)
		if err != nil {
			return err
		}
		if seen[k] {
			return fmt.Errorf("%w: %s %q", ErrDuplicateKey, m.set.name, name)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("enum: %s %s: %w", m.set.name, name, err)
		}
		vdec := json.NewDecoder(bytes.NewReader(raw))
		vdec.DisallowUnknownFields()
		if err := vdec.Decode(&values[k]); err != nil {
			return fmt.Errorf("enum: %s %s: %w", m.set.name, name, err)
		}
		seen[k] = true
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("enum: %s map: %w", m.set.name, err)
	}

	var missing []string
	for i, ok := range seen {
		if !ok {
			missing = append(missing, m.set.names[i])
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s %s", ErrMissingKey, m.set.name, strings.Join(missing, ", "))
	}
	m.values = values
	return nil
}
