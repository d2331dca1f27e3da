package spans

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName names the tracer used when the context carries none.
const InstrumentationName = "github.com/amp-labs/datacheck"

type contextKey string

const tracerKey contextKey = "tracer"

// WithTracer attaches a tracer to ctx; spans started from ctx use it.
func WithTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, tracerKey, tracer)
}

// TracerFromContext returns the tracer set by WithTracer, if any.
func TracerFromContext(ctx context.Context) (trace.Tracer, bool) {
	if ctx == nil {
		return nil, false
	}

	tracer, ok := ctx.Value(tracerKey).(trace.Tracer)

	return tracer, ok && tracer != nil
}

func tracerFor(ctx context.Context) trace.Tracer { //nolint:ireturn
	if tracer, ok := TracerFromContext(ctx); ok {
		return tracer
	}

	return otel.Tracer(InstrumentationName)
}
