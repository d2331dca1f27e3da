package main

import (
	"github.com/amp-labs/datacheck/input"
	"github.com/amp-labs/datacheck/shape"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newInferCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "infer DATA",
		Short: "Print the template a sample document satisfies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := input.LoadData(args[0])
			if err != nil {
				return err
			}

			tmpl, err := shape.Infer(data)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2) //nolint:mnd

			if err := enc.Encode(tmpl); err != nil {
				return err
			}

			return enc.Close()
		},
	}
}
