package shape

import (
	"fmt"
	"slices"

	"github.com/amp-labs/datacheck/errors"
)

// Infer builds the template that a sample value satisfies exactly. Nested
// keys are sorted, since Go maps carry no order of their own.
func Infer(v any) (Template, error) {
	return infer(v, "")
}

func infer(v any, path string) (Template, error) {
	if m, ok := v.(map[string]any); ok {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}

		slices.Sort(keys)

		fields := make([]Field, 0, len(keys))

		for _, k := range keys {
			sub, err := infer(m[k], Join(path, k))
			if err != nil {
				return Template{}, err
			}

			fields = append(fields, Key(k, sub))
		}

		return Nested(fields...), nil
	}

	kind, ok := KindOf(v)
	if !ok {
		return Template{}, fmt.Errorf("%w: cannot infer a type for %T at %q", errors.ErrUnsupportedInput, v, path)
	}

	return Leaf(kind), nil
}
