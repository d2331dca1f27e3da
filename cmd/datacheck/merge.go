package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/amp-labs/datacheck/freq"
	"github.com/amp-labs/datacheck/input"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errUnknownFormat = errors.New("unknown output format")

func newMergeCmd() *cobra.Command {
	var (
		fold   bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "merge FREQ...",
		Short: "Sum word frequencies across files",
		Long: `Reads word -> count mappings (YAML or JSON) and prints the summed counts,
highest first, ties in ascending word order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mappings := make([]map[string]int, 0, len(args))

			for _, path := range args {
				m, err := input.LoadFrequencies(path)
				if err != nil {
					return err
				}

				if fold {
					m = freq.Fold(m)
				}

				mappings = append(mappings, m)
			}

			return writeEntries(cmd.OutOrStdout(), output, freq.MergeContext(cmd.Context(), mappings...))
		},
	}

	cmd.Flags().BoolVar(&fold, "fold", false, "case-fold and NFC-normalize words before merging")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, yaml or json")

	return cmd
}

func writeEntries(w io.Writer, format string, entries []freq.Entry) error {
	switch format {
	case "text":
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%s\t%d\n", e.Word, e.Count); err != nil {
				return err
			}
		}

		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2) //nolint:mnd

		if err := enc.Encode(entries); err != nil {
			return err
		}

		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(entries)
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}
