package archive

import (
	"errors"
	"fmt"
)

// Sentinel errors for archive compilation.
var (
	ErrMissingRecipe     = errors.New("missing recipe definition")
	ErrRecipeMismatch    = errors.New("definition is filed under another recipe")
	ErrUnknownTechnology = errors.New("unknown technology")
	ErrUnknownItem       = errors.New("unknown item")
	ErrUnknownProducer   = errors.New("unknown producer")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrIncomplete        = errors.New("incomplete archive document")
	ErrAsymmetricEdge    = errors.New("prerequisite edge without matching postrequisite")
	ErrUnsoundIndex      = errors.New("usage index disagrees with recipe")
)

// IntegrityError describes one problem with the input tables or a compiled
// archive.
type IntegrityError struct {
	Subject string // e.g. "recipe IronSmelting" or "technology Thruster"
	Field   string // the offending field, if any
	Err     error  // wraps a sentinel error
}

// Error formats the problem as subject, field and cause.
func (e *IntegrityError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %v", e.Subject, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Subject, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *IntegrityError) Unwrap() error {
	return e.Err
}

// IntegrityErrors unpacks an error returned by Compile or Verify into its
// individual problems. Errors of any other shape yield nil.
func IntegrityErrors(err error) []*IntegrityError {
	var out []*IntegrityError
	var walk func(error)
	walk = func(err error) {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				walk(e)
			}
			return
		}
		var ie *IntegrityError
		if errors.As(err, &ie) {
			out = append(out, ie)
		}
	}
	if err != nil {
		walk(err)
	}
	return out
}
