// Package spans wraps an operation in an OpenTelemetry span and records its
// outcome on the span status.
//
//	entries, err := spans.RunVal(ctx, "freq.Merge", func(ctx context.Context) ([]freq.Entry, error) {
//	    return freq.Merge(inputs...), nil
//	}, attribute.Int("inputs", len(inputs)))
package spans

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Run executes f inside a span named name.
func Run(ctx context.Context, name string, f func(ctx context.Context) error, attrs ...attribute.KeyValue) error {
	_, err := RunVal(ctx, name, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, f(ctx)
	}, attrs...)

	return err
}

// RunVal executes f inside a span named name and returns its result. A
// non-nil error is recorded on the span and sets its status to Error.
func RunVal[T any](
	ctx context.Context, name string, f func(ctx context.Context) (T, error), attrs ...attribute.KeyValue,
) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, span := tracerFor(ctx).Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...))
	defer span.End()

	val, err := f(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}

	return val, err
}
