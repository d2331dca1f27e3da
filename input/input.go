// Package input decodes datacheck documents (data, templates and frequency
// mappings) from YAML or JSON. JSON is read through the YAML decoder, so one
// code path serves both formats.
package input

import (
	"fmt"
	"io"
	"os"

	"github.com/amp-labs/datacheck/errors"
	"github.com/amp-labs/datacheck/shape"
	"gopkg.in/yaml.v3"
)

// Stdin is the path that names standard input.
const Stdin = "-"

// Open opens path for reading; Stdin means os.Stdin, which is never closed.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	return f, nil
}

// DecodeData reads one document. Mappings decode to map[string]any, integers
// to int, and floats to float64. Mappings with non-string keys are rejected.
func DecodeData(r io.Reader) (any, error) {
	var v any

	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		if err == io.EOF { //nolint:errorlint
			return nil, fmt.Errorf("%w: empty document", errors.ErrUnsupportedInput)
		}

		return nil, err
	}

	return normalize(v, "")
}

// DecodeTemplate reads a template; see shape.Parse for the format.
func DecodeTemplate(r io.Reader) (shape.Template, error) {
	doc, err := io.ReadAll(r)
	if err != nil {
		return shape.Template{}, err
	}

	tmpl, err := shape.Parse(doc)
	if err != nil {
		return shape.Template{}, err
	}

	return tmpl, tmpl.Validate()
}

// DecodeFrequencies reads a word -> count mapping. Non-integer counts are errors.
func DecodeFrequencies(r io.Reader) (map[string]int, error) {
	var m map[string]int

	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if err == io.EOF { //nolint:errorlint
			return map[string]int{}, nil
		}

		return nil, err
	}

	if m == nil {
		m = map[string]int{}
	}

	return m, nil
}

func LoadData(path string) (any, error) {
	return load(path, DecodeData)
}

func LoadTemplate(path string) (shape.Template, error) {
	return load(path, DecodeTemplate)
}

func LoadFrequencies(path string) (map[string]int, error) {
	return load(path, DecodeFrequencies)
}

func load[T any](path string, decode func(io.Reader) (T, error)) (T, error) {
	var zero T

	rc, err := Open(path)
	if err != nil {
		return zero, err
	}

	defer rc.Close() //nolint:errcheck

	v, err := decode(rc)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

func normalize(v any, path string) (any, error) {
	switch val := v.(type) {
	case map[string]any:
		for k, sub := range val {
			n, err := normalize(sub, shape.Join(path, k))
			if err != nil {
				return nil, err
			}

			val[k] = n
		}

		return val, nil
	case map[any]any:
		return nil, fmt.Errorf("%w: mapping at %q has non-string keys", errors.ErrUnsupportedInput, path)
	case []any:
		for i, sub := range val {
			n, err := normalize(sub, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}

			val[i] = n
		}

		return val, nil
	default:
		return v, nil
	}
}
