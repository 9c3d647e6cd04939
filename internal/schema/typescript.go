package schema

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Generator turns a schema document into TypeScript declarations.
type Generator interface {
	Generate(ctx context.Context, doc *Schema) ([]byte, error)
}

const tsBanner = `/* eslint-disable */
/**
 * This file was automatically generated by centerbrain.
 * DO NOT MODIFY IT BY HAND. Instead, run ` + "`centerbrain generate`" + `.
 */
`

// Builtin emits TypeScript without external tools. String enumerations
// become unions of literals and objects become interfaces with one required
// member per property and no index signature.
type Builtin struct{}

// Generate renders doc, root type first, then each definition in order.
func (Builtin) Generate(_ context.Context, doc *Schema) ([]byte, error) {
	var b strings.Builder
	b.WriteString(tsBanner)

	if doc.Title == "" {
		return nil, fmt.Errorf("schema: root schema has no title")
	}
	if err := writeDecl(&b, doc.Title, doc); err != nil {
		return nil, err
	}
	for _, name := range doc.Definitions.Keys() {
		def, _ := doc.Definitions.Get(name)
		if err := writeDecl(&b, name, def); err != nil {
			return nil, err
		}
	}
	return []byte(b.String()), nil
}

func writeDecl(b *strings.Builder, name string, s *Schema) error {
	b.WriteString("\n")
	writeDoc(b, "", s.Description)

	switch {
	case s.Type == "string" && len(s.Enum) > 0:
		fmt.Fprintf(b, "export type %s =\n", name)
		for i, v := range s.Enum {
			b.WriteString("  | " + strconv.Quote(v))
			if i == len(s.Enum)-1 {
				b.WriteString(";")
			}
			b.WriteString("\n")
		}
	case s.Type == "object":
		fmt.Fprintf(b, "export interface %s {\n", name)
		for _, prop := range s.Properties.Keys() {
			ps, _ := s.Properties.Get(prop)
			ts, err := tsType(ps)
			if err != nil {
				return fmt.Errorf("schema: %s.%s: %w", name, prop, err)
			}
			writeDoc(b, "  ", ps.Description)
			fmt.Fprintf(b, "  %s: %s;\n", tsKey(prop), ts)
		}
		b.WriteString("}\n")
	default:
		ts, err := tsType(s)
		if err != nil {
			return fmt.Errorf("schema: %s: %w", name, err)
		}
		fmt.Fprintf(b, "export type %s = %s;\n", name, ts)
	}
	return nil
}

func tsType(s *Schema) (string, error) {
	if ref := s.RefName(); ref != "" {
		return ref, nil
	}
	switch s.Type {
	case "string":
		if len(s.Enum) == 0 {
			return "string", nil
		}
		quoted := make([]string, len(s.Enum))
		for i, v := range s.Enum {
			quoted[i] = strconv.Quote(v)
		}
		return "(" + strings.Join(quoted, " | ") + ")", nil
	case "number":
		return "number", nil
	case "boolean":
		return "boolean", nil
	case "array":
		if s.Items == nil {
			return "unknown[]", nil
		}
		elem, err := tsType(s.Items)
		if err != nil {
			return "", err
		}
		return elem + "[]", nil
	default:
		return "", fmt.Errorf("cannot express schema type %q inline", s.Type)
	}
}

func writeDoc(b *strings.Builder, indent, text string) {
	if text == "" {
		return
	}
	fmt.Fprintf(b, "%s/**\n", indent)
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(b, "%s * %s\n", indent, line)
	}
	fmt.Fprintf(b, "%s */\n", indent)
}

// tsKey quotes property names that are not plain identifiers.
func tsKey(name string) string {
	for i, r := range name {
		ident := r == '_' || r == '$' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (i > 0 && r >= '0' && r <= '9')
		if !ident {
			return strconv.Quote(name)
		}
	}
	return name
}
