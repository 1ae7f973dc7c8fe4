package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the loaded requirements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tQUALITIES\tTOOLS\tCOMPONENTS")
			for _, id := range a.catalog.IDs() {
				set := a.catalog.Lookup(id)
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", id, len(set.Qualities), len(set.Tools), len(set.Components))
			}
			return w.Flush()
		},
	}
}

func newValidateCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Report dangling references in the loaded definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			result, err := a.service.Validate(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !result.HasErrors() {
				fmt.Fprintf(out, "%d requirements OK\n", len(a.catalog.IDs()))
				return nil
			}
			for _, msg := range result.Errors {
				fmt.Fprintln(out, msg)
			}
			return fmt.Errorf("found %d problems in the definitions", len(result.Errors))
		},
	}
}
