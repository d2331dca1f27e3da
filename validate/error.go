package validate

import (
	"github.com/amp-labs/datacheck/errors"
)

// Reason classifies a validation failure.
type Reason int

const (
	BadType Reason = iota + 1
	MismatchedKeys
	InvalidTemplate
)

func (r Reason) String() string {
	switch r {
	case BadType:
		return "bad type"
	case MismatchedKeys:
		return "mismatched keys"
	case InvalidTemplate:
		return "invalid template"
	default:
		return "unknown"
	}
}

func (r Reason) label() string {
	switch r {
	case BadType:
		return "bad_type"
	case MismatchedKeys:
		return "mismatched_keys"
	case InvalidTemplate:
		return "invalid_template"
	default:
		return "unknown"
	}
}

// Error is the first failure found while validating.
type Error struct {
	Reason Reason
	Path   string
}

// Error renders "<reason>: <path>", e.g. "bad type: a.c" or "bad type: " at the root.
func (e *Error) Error() string {
	return e.Reason.String() + ": " + e.Path
}

// Unwrap exposes the matching sentinel from the errors package. Data
// failures also match errors.ErrValidation; template failures do not.
func (e *Error) Unwrap() []error {
	switch e.Reason {
	case BadType:
		return []error{errors.ErrValidation, errors.ErrBadType}
	case MismatchedKeys:
		return []error{errors.ErrValidation, errors.ErrMismatchedKeys}
	case InvalidTemplate:
		return []error{errors.ErrInvalidTemplate}
	default:
		return nil
	}
}

func fail(reason Reason, path string) *Error {
	return &Error{Reason: reason, Path: path}
}
