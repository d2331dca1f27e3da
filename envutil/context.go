package envutil

import (
	"context"
	"os"
)

type overrideKey string

// WithEnvOverride returns a context in which key reads as value, regardless
// of the process environment. Tests use it instead of os.Setenv so they can
// run in parallel.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, overrideKey(key), value)
}

func lookup(ctx context.Context, key string) (string, bool) {
	if ctx != nil {
		if v, ok := ctx.Value(overrideKey(key)).(string); ok {
			return v, true
		}
	}

	return os.LookupEnv(key)
}
