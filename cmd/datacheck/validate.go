package main

import (
	"context"
	goerrors "errors"
	"fmt"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/datacheck/envutil"
	"github.com/amp-labs/datacheck/errors"
	"github.com/amp-labs/datacheck/input"
	"github.com/amp-labs/datacheck/logger"
	"github.com/amp-labs/datacheck/shape"
	"github.com/amp-labs/datacheck/validate"
	"github.com/spf13/cobra"
)

const defaultWorkers = 4

var errNotPositive = goerrors.New("must be at least 1")

func positive(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", errNotPositive, n)
	}

	return nil
}

type fileResult struct {
	path string
	err  error
}

func newValidateCmd() *cobra.Command {
	var (
		templatePath string
		workers      int
	)

	cmd := &cobra.Command{
		Use:   "validate --template TEMPLATE DATA...",
		Short: "Check data files against a template",
		Long: `Checks each data file (YAML or JSON, "-" for stdin) against the template and
prints "<file>: ok" or the first mismatch, e.g. "<file>: bad type: a.c".
Exits non-zero when any file fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !cmd.Flags().Changed("workers") {
				var err error

				workers, err = envutil.Int(ctx, "DATACHECK_WORKERS",
					envutil.Default(defaultWorkers), envutil.Validate(positive)).Value()
				if err != nil {
					return err
				}
			}

			tmpl, err := input.LoadTemplate(templatePath)
			if err != nil {
				return err
			}

			results, err := validateFiles(ctx, tmpl, args, workers)
			if err != nil {
				return err
			}

			var failures errors.Collection

			for _, res := range results {
				if res.err == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", res.path)

					continue
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", res.path, res.err)
				failures.Add(fmt.Errorf("%s: %w", res.path, res.err))
			}

			if failures.HasError() {
				logger.Get(ctx).Debug("validation finished with failures", "failed", failures.Len())

				return fmt.Errorf("%w: %d of %d files: %w",
					errors.ErrValidation, failures.Len(), len(results), failures.GetError())
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "template file (YAML or JSON)")
	cmd.Flags().IntVarP(&workers, "workers", "w", defaultWorkers, "files validated concurrently")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}

// validateFiles checks every path on a bounded pool; results keep the order of paths.
func validateFiles(ctx context.Context, tmpl shape.Template, paths []string, workers int) ([]fileResult, error) {
	if workers < 1 {
		workers = 1
	}

	pool := pond.NewResultPool[fileResult](workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()

	for _, path := range paths {
		group.Submit(func() fileResult {
			data, err := input.LoadData(path)
			if err != nil {
				return fileResult{path: path, err: err}
			}

			return fileResult{path: path, err: validate.Check(ctx, data, tmpl)}
		})
	}

	return group.Wait()
}
