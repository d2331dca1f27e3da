package validate

import (
	"context"
	goerrors "errors"
	"time"

	"github.com/amp-labs/datacheck/logger"
	"github.com/amp-labs/datacheck/shape"
	"github.com/amp-labs/datacheck/spans"
	"go.opentelemetry.io/otel/attribute"
)

// Validate reports whether data conforms to tmpl. On failure the message
// names the first mismatch, e.g. "mismatched keys: b". Neither argument is
// modified.
//
// A zero shape.Template, or a nested node with an empty or repeated key,
// fails with "invalid template: <path>".
func Validate(data any, tmpl shape.Template) (bool, string) {
	if err := walk(data, tmpl, ""); err != nil {
		return false, err.Error()
	}

	return true, ""
}

// Check is Validate with an error result. It returns nil or a *Error, and
// records the outcome in metrics, the context logger and a span.
func Check(ctx context.Context, data any, tmpl shape.Template) error {
	start := time.Now()

	err := spans.Run(ctx, "validate.Check", func(context.Context) error {
		if err := walk(data, tmpl, ""); err != nil {
			return err
		}

		return nil
	}, attribute.Bool("template.nested", tmpl.IsNested()))

	result := "ok"

	var verr *Error
	if goerrors.As(err, &verr) {
		result = verr.Reason.label()

		logger.Get(logger.WithSubsystem(ctx, "validate")).Debug("data does not match template",
			"reason", verr.Reason.String(), "path", verr.Path)
	}

	validationsTotal.WithLabelValues(result).Inc()
	validationTime.WithLabelValues(result).Observe(float64(time.Since(start).Microseconds()) / 1000.0) //nolint:mnd

	return err
}

// walk returns *Error rather than error so a nil result never turns into a
// non-nil interface.
func walk(data any, tmpl shape.Template, path string) *Error {
	if !tmpl.IsNested() {
		if !tmpl.IsLeaf() {
			return fail(InvalidTemplate, path)
		}

		if !tmpl.Kind().Matches(data) {
			return fail(BadType, path)
		}

		return nil
	}

	fields := tmpl.Fields()

	if key, bad := badKey(fields); bad {
		return fail(InvalidTemplate, shape.Join(path, key))
	}

	m, ok := data.(map[string]any)
	if !ok {
		return fail(BadType, path)
	}

	for _, f := range fields {
		if _, present := m[f.Key]; !present {
			return fail(MismatchedKeys, shape.Join(path, f.Key))
		}
	}

	if extra, found := firstExtraKey(m, tmpl); found {
		return fail(MismatchedKeys, shape.Join(path, extra))
	}

	for _, f := range fields {
		if err := walk(m[f.Key], f.Template, shape.Join(path, f.Key)); err != nil {
			return err
		}
	}

	return nil
}

// badKey returns the first field key that is empty or already used by an
// earlier field.
func badKey(fields []shape.Field) (string, bool) {
	seen := make(map[string]struct{}, len(fields))

	for _, f := range fields {
		if _, dup := seen[f.Key]; dup || f.Key == "" {
			return f.Key, true
		}

		seen[f.Key] = struct{}{}
	}

	return "", false
}

// firstExtraKey returns the smallest data key the template doesn't name.
func firstExtraKey(m map[string]any, tmpl shape.Template) (string, bool) {
	var (
		extra string
		found bool
	)

	for k := range m {
		if _, ok := tmpl.Lookup(k); ok {
			continue
		}

		if !found || k < extra {
			extra, found = k, true
		}
	}

	return extra, found
}
