package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vsinha/craftreq/pkg/application/dto"
	"github.com/vsinha/craftreq/pkg/domain/entities"
	"github.com/vsinha/craftreq/pkg/interfaces/cli/output"
)

func newCheckCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "check <requirement-id> [requirement-id...]",
		Short: "Check whether a requirement can be met",
		Long: `Check whether a requirement can be met from the inventory.

When several ids are given their groups are combined and checked as one.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			report, err := a.check(cmd, args)
			if err != nil {
				return err
			}
			config, err := a.outputConfig(cmd)
			if err != nil {
				return err
			}
			return output.Generate(report, config)
		},
	}
}

func newMissingCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "missing <requirement-id>",
		Short: "List what is missing to meet a requirement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			report, err := a.check(cmd, args)
			if err != nil {
				return err
			}
			if report.Missing == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing is missing.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Missing)
			return nil
		},
	}
}

func newDisassembleCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "disassemble <requirement-id>",
		Short: "Check what taking a product apart needs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			set, err := a.service.Disassembly(ctx, entities.RequirementID(args[0]))
			if err != nil {
				return err
			}
			inv, err := a.inventory(ctx)
			if err != nil {
				return err
			}
			report, err := a.service.CheckSet(ctx, set, inv, opts.Batch)
			if err != nil {
				return err
			}
			report.RequirementID = entities.RequirementID(args[0] + " (disassembly)")

			config, err := a.outputConfig(cmd)
			if err != nil {
				return err
			}
			return output.Generate(report, config)
		},
	}
}

// check resolves ids into one set and checks it against the configured inventory
func (a *app) check(cmd *cobra.Command, args []string) (*dto.CheckReport, error) {
	ctx := cmd.Context()
	inv, err := a.inventory(ctx)
	if err != nil {
		return nil, err
	}

	if len(args) == 1 {
		return a.service.Check(ctx, entities.RequirementID(args[0]), inv, a.opts.Batch)
	}

	ids := make([]entities.RequirementID, 0, len(args))
	for _, arg := range args {
		ids = append(ids, entities.RequirementID(arg))
	}
	combined, err := a.service.Combine(ctx, ids...)
	if err != nil {
		return nil, err
	}
	return a.service.CheckSet(ctx, combined, inv, a.opts.Batch)
}
