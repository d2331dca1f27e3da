package shape

import (
	"testing"

	"github.com/amp-labs/datacheck/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func keys(t Template) []string {
	out := make([]string, 0, t.Len())
	for _, f := range t.Fields() {
		out = append(out, f.Key)
	}

	return out
}

func TestParse(t *testing.T) {
	t.Parallel()

	tmpl, err := Parse([]byte(`
zeta: integer
alpha:
  c: str
  b: float
mid: bool
`))
	require.NoError(t, err)
	require.NoError(t, tmpl.Validate())

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys(tmpl))

	alpha, ok := tmpl.Lookup("alpha")
	require.True(t, ok)
	assert.Equal(t, []string{"c", "b"}, keys(alpha))

	b, _ := alpha.Lookup("b")
	assert.Equal(t, Float, b.Kind())
}

func TestParseJSON(t *testing.T) {
	t.Parallel()

	tmpl, err := Parse([]byte(`{"b": "string", "a": {"c": "integer"}}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a"}, keys(tmpl))
}

func TestParseScalarRoot(t *testing.T) {
	t.Parallel()

	tmpl, err := Parse([]byte("integer\n"))
	require.NoError(t, err)
	assert.True(t, tmpl.IsLeaf())
	assert.Equal(t, Integer, tmpl.Kind())
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"unknown type", "a: decimal\n"},
		{"sequence", "a: [integer]\n"},
		{"null value", "a:\n"},
		{"duplicate key", "a: integer\na: string\n"},
		{"alias", "base: &b integer\nother: *b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
		})
	}

	_, err := Parse([]byte("a:\n  - integer\n"))
	require.ErrorIs(t, err, errors.ErrInvalidTemplate)
	assert.Contains(t, err.Error(), "line 2")
}

func TestMarshalYAML(t *testing.T) {
	t.Parallel()

	tmpl := Nested(
		Key("z", Leaf(Integer)),
		Key("a", Nested(Key("flag", Leaf(Boolean)))),
	)

	out, err := yaml.Marshal(tmpl)
	require.NoError(t, err)
	assert.Equal(t, "z: integer\na:\n    flag: boolean\n", string(out))

	back, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a"}, keys(back))

	_, err = yaml.Marshal(Nested(Key("x", Template{})))
	require.Error(t, err)
}
