// Package errors holds the sentinel errors shared by the datacheck packages,
// plus a small accumulator for reporting several failures at once.
package errors

import "errors"

var (
	// ErrValidation is the umbrella error for data that does not conform to a template.
	ErrValidation = errors.New("validation failed")

	// ErrBadType means a value (or the root) has the wrong type for its template node.
	ErrBadType = errors.New("bad type")

	// ErrMismatchedKeys means a mapping is missing a template key or carries an extra one.
	ErrMismatchedKeys = errors.New("mismatched keys")

	// ErrInvalidTemplate means the template itself is malformed.
	ErrInvalidTemplate = errors.New("invalid template")

	// ErrUnsupportedInput means a decoded document has a shape we can't represent.
	ErrUnsupportedInput = errors.New("unsupported input")
)

// Collection accumulates errors in the order they were added. It is not safe
// for concurrent use.
type Collection struct {
	errs []error
}

// Add appends err to the collection. Nil errors are dropped.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errs = append(c.errs, err)
	}
}

// Len is the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errs)
}

// HasError reports whether anything has been collected.
func (c *Collection) HasError() bool {
	return len(c.errs) > 0
}

// GetError returns nil for an empty collection, the lone error when there is
// exactly one, and an errors.Join of everything otherwise.
func (c *Collection) GetError() error {
	switch len(c.errs) {
	case 0:
		return nil
	case 1:
		return c.errs[0]
	default:
		return errors.Join(c.errs...)
	}
}
