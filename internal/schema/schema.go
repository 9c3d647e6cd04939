// Package schema describes the shape of the archive document as a JSON
// Schema and turns that description into TypeScript declarations, either
// directly or through an external schema-to-TypeScript tool.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Draft is the JSON Schema dialect of documents built here.
const Draft = "http://json-schema.org/draft-07/schema#"

// Schema is the subset of JSON Schema the archive needs. Properties and
// definitions keep insertion order so generated output is stable.
type Schema struct {
	Schema               string      `json:"$schema,omitempty"`
	Ref                  string      `json:"$ref,omitempty"`
	Title                string      `json:"title,omitempty"`
	Description          string      `json:"description,omitempty"`
	Type                 string      `json:"type,omitempty"`
	Format               string      `json:"format,omitempty"`
	Enum                 []string    `json:"enum,omitempty"`
	Minimum              *float64    `json:"minimum,omitempty"`
	Items                *Schema     `json:"items,omitempty"`
	Required             []string    `json:"required,omitempty"`
	Properties           *Properties `json:"properties,omitempty"`
	AdditionalProperties *bool       `json:"additionalProperties,omitempty"`
	Definitions          *Properties `json:"definitions,omitempty"`
}

// Properties is an ordered set of named schemas.
type Properties struct {
	keys   []string
	values map[string]*Schema
}

// Set adds or replaces a named schema. New names go last.
func (p *Properties) Set(name string, s *Schema) {
	if p.values == nil {
		p.values = make(map[string]*Schema)
	}
	if _, ok := p.values[name]; !ok {
		p.keys = append(p.keys, name)
	}
	p.values[name] = s
}

// Get returns the schema stored under name.
func (p *Properties) Get(name string) (*Schema, bool) {
	if p == nil {
		return nil, false
	}
	s, ok := p.values[name]
	return s, ok
}

// Keys returns the names in insertion order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.keys...)
}

// Len returns the number of names.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// MarshalJSON encodes the properties as an object in insertion order.
func (p *Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(p.values[k])
		if err != nil {
			return nil, fmt.Errorf("schema: property %s: %w", k, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

const refPrefix = "#/definitions/"

// Ref returns a reference to the named definition.
func Ref(name string) *Schema {
	return &Schema{Ref: refPrefix + name}
}

// RefName returns the definition name a reference points at, or "".
func (s *Schema) RefName() string {
	name, ok := strings.CutPrefix(s.Ref, refPrefix)
	if !ok {
		return ""
	}
	return name
}

// Compact renders the document as single-line JSON, the form piped to
// external generators.
func (s *Schema) Compact() ([]byte, error) {
	return json.Marshal(s)
}

// Indent renders the document as indented JSON with a trailing newline.
func (s *Schema) Indent() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
