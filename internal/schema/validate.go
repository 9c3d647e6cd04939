package schema

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrViolation marks a value that does not conform to a schema.
var ErrViolation = errors.New("schema violation")

// resourceURL names the in-memory document handed to the compiler.
const resourceURL = "centerbrain.schema.json"

// Violation is one place where a value departs from its schema.
type Violation struct {
	Path    string // JSON pointer-like location, "$" for the root
	Message string
}

// Error formats the violation with its location.
func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Unwrap returns ErrViolation.
func (v *Violation) Unwrap() error {
	return ErrViolation
}

// Validate checks a value decoded by encoding/json into interface{} form
// against root, compiled as a draft-07 document. Each failing keyword is
// reported as its own Violation; the result joins them.
func Validate(root *Schema, value any) error {
	compiled, err := compile(root)
	if err != nil {
		return err
	}

	err = compiled.Validate(value)
	if err == nil {
		return nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("schema: validating: %w", err)
	}

	printer := message.NewPrinter(language.English)
	var errs []error
	for _, leaf := range leaves(verr) {
		errs = append(errs, &Violation{
			Path:    instancePath(value, leaf.InstanceLocation),
			Message: leaf.ErrorKind.LocalizedString(printer),
		})
	}
	return errors.Join(errs...)
}

func compile(root *Schema) (*jsonschema.Schema, error) {
	data, err := root.Compact()
	if err != nil {
		return nil, fmt.Errorf("schema: encoding document: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("schema: decoding document: %w", err)
	}

	c := jsonschema.NewCompiler()
	c.DefaultDraft(jsonschema.Draft7)
	if err := c.AddResource(resourceURL, doc); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	compiled, err := c.Compile(resourceURL)
	if err != nil {
		return nil, fmt.Errorf("schema: compiling document: %w", err)
	}
	return compiled, nil
}

// leaves flattens the error tree to the keywords that actually failed.
func leaves(e *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(e.Causes) == 0 {
		return []*jsonschema.ValidationError{e}
	}
	var out []*jsonschema.ValidationError
	for _, c := range e.Causes {
		out = append(out, leaves(c)...)
	}
	return out
}

// instancePath renders a location as "$.key[3].key", walking value to tell
// array indices from object keys.
func instancePath(value any, location []string) string {
	path := "$"
	cur := value
	for _, tok := range location {
		switch c := cur.(type) {
		case []any:
			path += "[" + tok + "]"
			cur = nil
			if i, err := strconv.Atoi(tok); err == nil && i >= 0 && i < len(c) {
				cur = c[i]
			}
		case map[string]any:
			path += "." + tok
			cur = c[tok]
		default:
			path += "." + tok
			cur = nil
		}
	}
	return path
}
