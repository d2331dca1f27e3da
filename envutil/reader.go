package envutil

import (
	"errors"
	"fmt"
)

var (
	ErrBadEnvVar     = errors.New("error parsing environment variable")
	ErrEnvVarMissing = errors.New("missing environment variable")
)

// Reader is the result of looking up and parsing one environment variable.
// It remembers whether the variable was present and whether parsing failed,
// so callers pick their own policy for missing or malformed values.
type Reader[T any] struct {
	key     string
	present bool
	err     error
	value   T
}

// Value returns the parsed value, or an error wrapping ErrBadEnvVar or
// ErrEnvVarMissing.
func (r Reader[T]) Value() (T, error) { //nolint:ireturn
	if r.err != nil {
		return r.value, fmt.Errorf("%w %s: %w", ErrBadEnvVar, r.key, r.err)
	}

	if !r.present {
		return r.value, fmt.Errorf("%w %s", ErrEnvVarMissing, r.key)
	}

	return r.value, nil
}

// ValueOrElse returns the parsed value, or v when the variable is missing or malformed.
func (r Reader[T]) ValueOrElse(v T) T { //nolint:ireturn
	if r.HasValue() {
		return r.value
	}

	return v
}

func (r Reader[T]) HasValue() bool {
	return r.present && r.err == nil
}

// WithDefault fills in dfl when the variable is absent. A malformed value
// keeps its error.
func (r Reader[T]) WithDefault(dfl T) Reader[T] {
	if r.present || r.err != nil {
		return r
	}

	return Reader[T]{key: r.key, present: true, value: dfl}
}

// Map parses the raw value of a Reader into another type.
func Map[A any, B any](r Reader[A], f func(A) (B, error)) Reader[B] {
	out := Reader[B]{key: r.key, present: r.present, err: r.err}
	if !r.present || r.err != nil {
		return out
	}

	out.value, out.err = f(r.value)

	return out
}
