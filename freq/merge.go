package freq

import (
	"context"

	"github.com/amp-labs/datacheck/logger"
	"github.com/amp-labs/datacheck/spans"
	"go.opentelemetry.io/otel/attribute"
)

// Merge sums counts per word across mappings and returns the totals in
// Compare order. The inputs are not modified. No inputs yields an empty,
// non-nil slice.
func Merge(mappings ...map[string]int) []Entry {
	var c Counter

	for _, m := range mappings {
		c.AddAll(m)
	}

	return c.Entries()
}

// MergeContext is Merge with a span, metrics and a debug log line.
func MergeContext(ctx context.Context, mappings ...map[string]int) []Entry {
	entries, _ := spans.RunVal(ctx, "freq.Merge", func(context.Context) ([]Entry, error) {
		return Merge(mappings...), nil
	}, attribute.Int("freq.inputs", len(mappings)))

	mergesTotal.Inc()
	mergedWords.Observe(float64(len(entries)))

	logger.Get(logger.WithSubsystem(ctx, "freq")).Debug("merged frequency mappings",
		"inputs", len(mappings), "words", len(entries))

	return entries
}
