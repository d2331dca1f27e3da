package envutil

// Option adjusts a Reader after lookup.
type Option[T any] func(Reader[T]) Reader[T]

// Default supplies a value for a missing variable.
func Default[T any](dfl T) Option[T] {
	return func(r Reader[T]) Reader[T] {
		return r.WithDefault(dfl)
	}
}

// Validate runs f on a present value; a non-nil result becomes the Reader's error.
func Validate[T any](f func(T) error) Option[T] {
	return func(r Reader[T]) Reader[T] {
		return Map(r, func(v T) (T, error) {
			return v, f(v)
		})
	}
}

func apply[T any](r Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		r = opt(r)
	}

	return r
}
