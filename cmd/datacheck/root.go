package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/amp-labs/datacheck/logger"
	"github.com/amp-labs/datacheck/telemetry"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

const appName = "datacheck"

type rootOptions struct {
	metricsTextfile string
	quiet           bool

	ctx      context.Context //nolint:containedctx
	shutdown telemetry.ShutdownFunc
}

func newRootCmd() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Validate nested documents and merge word frequencies",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.metricsTextfile, "metrics-textfile", "",
		"write Prometheus metrics in text format to this file on exit")
	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress log output")

	root.AddCommand(newValidateCmd(), newMergeCmd(), newInferCmd())

	return root, opts
}

// execute runs the command tree and then tears down telemetry and writes
// metrics, whether or not the command failed.
func execute(ctx context.Context, root *cobra.Command, opts *rootOptions) error {
	err := root.ExecuteContext(ctx)

	if tdErr := opts.teardown(); tdErr != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", tdErr)

		err = errors.Join(err, tdErr)
	}

	return err
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var logOpts []logger.Option
	if w := cmd.ErrOrStderr(); w != os.Stderr {
		logOpts = append(logOpts, logger.WithOutput(w))
	}

	if _, err := logger.ConfigureLogging(ctx, appName, logOpts...); err != nil {
		return fmt.Errorf("configuring logging: %w", err)
	}

	ctx = logger.WithMuted(ctx, o.quiet)
	ctx = logger.With(ctx, "run_id", uuid.NewString(), "command", cmd.Name())
	o.ctx = ctx

	cfg, err := telemetry.LoadConfigFromEnv(ctx)
	if err != nil {
		return fmt.Errorf("loading telemetry config: %w", err)
	}

	o.shutdown, err = telemetry.Initialize(ctx, cfg)
	if err != nil {
		return err
	}

	cmd.SetContext(ctx)

	return nil
}

func (o *rootOptions) teardown() error {
	ctx := o.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	if o.shutdown != nil {
		if err := o.shutdown(ctx); err != nil {
			logger.Get(ctx).Warn("telemetry shutdown failed", "error", err)
		}
	}

	if o.metricsTextfile == "" {
		return nil
	}

	if err := prometheus.WriteToTextfile(o.metricsTextfile, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}

	return nil
}
