package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/amp-labs/datacheck/envutil"
	"github.com/amp-labs/datacheck/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out, _, err := runContext(t.Context(), t, args...)

	return out, err
}

func runContext(ctx context.Context, t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	root, opts := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := execute(ctx, root, opts)

	return out.String(), errOut.String(), err
}

func TestValidateCommand(t *testing.T) { //nolint:paralleltest
	dir := t.TempDir()

	tmpl := writeFile(t, dir, "template.yaml", "a: integer\nb:\n  c: string\n")
	good := writeFile(t, dir, "good.json", `{"a": 1, "b": {"c": "x"}}`)
	badType := writeFile(t, dir, "bad_type.yaml", "a: 1\nb:\n  c: 2\n")
	missing := writeFile(t, dir, "missing.yaml", "b:\n  c: x\n")

	out, err := run(t, "validate", "--template", tmpl, good)
	require.NoError(t, err)
	assert.Equal(t, good+": ok\n", out)

	out, err = run(t, "validate", "-t", tmpl, "-w", "2", good, badType, missing)
	require.ErrorIs(t, err, errors.ErrValidation)
	require.ErrorIs(t, err, errors.ErrBadType)
	require.ErrorIs(t, err, errors.ErrMismatchedKeys)
	assert.Contains(t, err.Error(), badType+": bad type: b.c")
	assert.Equal(t,
		good+": ok\n"+
			badType+": bad type: b.c\n"+
			missing+": mismatched keys: a\n",
		out)
}

func TestValidateCommandErrors(t *testing.T) { //nolint:paralleltest
	dir := t.TempDir()

	tmpl := writeFile(t, dir, "template.yaml", "a: integer\n")

	_, err := run(t, "validate", writeFile(t, dir, "d.yaml", "a: 1\n"))
	require.Error(t, err, "template flag is required")

	out, err := run(t, "validate", "-t", tmpl, filepath.Join(dir, "nope.yaml"))
	require.ErrorIs(t, err, errors.ErrValidation)
	assert.Contains(t, out, "nope.yaml: opening")

	_, err = run(t, "validate", "-t", writeFile(t, dir, "broken.yaml", "a: [int]\n"), tmpl)
	require.ErrorIs(t, err, errors.ErrInvalidTemplate)
}

func TestMergeCommand(t *testing.T) { //nolint:paralleltest
	dir := t.TempDir()

	first := writeFile(t, dir, "one.yaml", "python: 10\njava: 3\n")
	second := writeFile(t, dir, "two.json", `{"python": 5, "c++": 2}`)

	out, err := run(t, "merge", first, second)
	require.NoError(t, err)
	assert.Equal(t, "python\t15\njava\t3\nc++\t2\n", out)

	out, err = run(t, "merge", "-o", "json", first, second)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"word":"python","count":15},{"word":"java","count":3},{"word":"c++","count":2}]`, out)

	out, err = run(t, "merge", "-o", "yaml", second)
	require.NoError(t, err)
	assert.Equal(t, "- word: python\n  count: 5\n- word: c++\n  count: 2\n", out)

	out, err = run(t, "merge")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = run(t, "merge", "-o", "xml", first)
	require.ErrorIs(t, err, errUnknownFormat)
}

func TestMergeCommandFold(t *testing.T) { //nolint:paralleltest
	dir := t.TempDir()

	first := writeFile(t, dir, "one.yaml", "Go: 2\nRust: 1\n")
	second := writeFile(t, dir, "two.yaml", "go: 1\nGO: 1\n")

	out, err := run(t, "merge", "--fold", first, second)
	require.NoError(t, err)
	assert.Equal(t, "go\t4\nrust\t1\n", out)
}

func TestInferCommand(t *testing.T) { //nolint:paralleltest
	dir := t.TempDir()

	data := writeFile(t, dir, "sample.json", `{"name": "ada", "geo": {"lat": 51.5}, "admin": false}`)

	out, err := run(t, "infer", data)
	require.NoError(t, err)
	assert.Equal(t, "admin: boolean\ngeo:\n  lat: float\nname: string\n", out)

	tmpl := writeFile(t, dir, "inferred.yaml", out)

	_, err = run(t, "validate", "-t", tmpl, data)
	require.NoError(t, err)
}

func TestMetricsTextfile(t *testing.T) { //nolint:paralleltest
	dir := t.TempDir()

	tmpl := writeFile(t, dir, "template.yaml", "a: integer\n")
	data := writeFile(t, dir, "data.yaml", "a: 1\n")
	metrics := filepath.Join(dir, "datacheck.prom")

	_, err := run(t, "--metrics-textfile", metrics, "validate", "-t", tmpl, data)
	require.NoError(t, err)

	content, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(content), "datacheck_validations_total")
}

func TestMetricsTextfileOnFailure(t *testing.T) { //nolint:paralleltest
	dir := t.TempDir()

	tmpl := writeFile(t, dir, "template.yaml", "a: integer\n")
	data := writeFile(t, dir, "data.yaml", "a: x\n")
	metrics := filepath.Join(dir, "datacheck.prom")

	out, err := run(t, "--metrics-textfile", metrics, "validate", "-t", tmpl, data)
	require.ErrorIs(t, err, errors.ErrValidation)
	assert.Equal(t, data+": bad type: a\n", out)

	content, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(content), `datacheck_validations_total{result="bad_type"}`)
}

func TestValidateWorkersEnv(t *testing.T) { //nolint:paralleltest
	dir := t.TempDir()

	tmpl := writeFile(t, dir, "template.yaml", "a: integer\n")
	data := writeFile(t, dir, "data.yaml", "a: 1\n")

	tests := []struct {
		name    string
		value   string
		wantErr error
	}{
		{name: "valid", value: "2"},
		{name: "not a number", value: "abc", wantErr: envutil.ErrBadEnvVar},
		{name: "zero", value: "0", wantErr: errNotPositive},
		{name: "negative", value: "-3", wantErr: errNotPositive},
	}

	for _, tt := range tests { //nolint:paralleltest
		t.Run(tt.name, func(t *testing.T) {
			ctx := envutil.WithEnvOverride(t.Context(), "DATACHECK_WORKERS", tt.value)

			out, _, err := runContext(ctx, t, "validate", "-t", tmpl, data)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, data+": ok\n", out)

				return
			}

			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, out)
		})
	}

	ctx := envutil.WithEnvOverride(t.Context(), "DATACHECK_WORKERS", "abc")

	_, _, err := runContext(ctx, t, "validate", "-w", "1", "-t", tmpl, data)
	require.NoError(t, err, "an explicit --workers flag skips the environment")
}

func TestQuietFlag(t *testing.T) { //nolint:paralleltest
	dir := t.TempDir()

	tmpl := writeFile(t, dir, "template.yaml", "a: integer\n")
	data := writeFile(t, dir, "data.yaml", "a: x\n")
	ctx := envutil.WithEnvOverride(t.Context(), "LOG_LEVEL", "debug")

	_, errOut, err := runContext(ctx, t, "validate", "-t", tmpl, data)
	require.ErrorIs(t, err, errors.ErrValidation)
	assert.Contains(t, errOut, "validation finished with failures")
	assert.Contains(t, errOut, "subsystem=validate")

	_, errOut, err = runContext(ctx, t, "--quiet", "validate", "-t", tmpl, data)
	require.ErrorIs(t, err, errors.ErrValidation)
	assert.NotContains(t, errOut, "validation finished with failures")
	assert.NotContains(t, errOut, "subsystem=validate")
}
