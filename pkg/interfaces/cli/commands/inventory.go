package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vsinha/craftreq/pkg/infrastructure/database"
	"github.com/vsinha/craftreq/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/craftreq/pkg/infrastructure/repositories/persistence"
)

func newInventoryCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Manage the stored inventory",
	}
	cmd.AddCommand(newInventoryImportCommand(opts))
	cmd.AddCommand(newInventoryShowCommand(opts))
	return cmd
}

func newInventoryImportCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <csv-file>",
		Short: "Import inventory stacks from CSV into the database",
		Long: `Import inventory stacks from CSV into the database.

Every location present in the file is replaced; other locations are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			stacks, err := csv.NewLoader().LoadInventory(args[0])
			if err != nil {
				return fmt.Errorf("failed to load inventory: %w", err)
			}

			db, err := openDatabase(&cfg.Database)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := persistence.NewGormInventoryRepository(db).SaveStacks(cmd.Context(), stacks); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d stacks from %s\n", len(stacks), args[0])
			return nil
		},
	}
}

func newInventoryShowCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored stacks of the configured location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			db, err := openDatabase(&cfg.Database)
			if err != nil {
				return err
			}
			defer database.Close(db)

			stacks, err := persistence.NewGormInventoryRepository(db).GetStacks(cmd.Context(), cfg.Inventory.Location)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ITEM\tQUANTITY\tCHARGES\tPSEUDO")
			for _, s := range stacks {
				fmt.Fprintf(w, "%s\t%d\t%d\t%t\n", s.ItemType, s.Quantity, s.Charges, s.Pseudo)
			}
			return w.Flush()
		},
	}
}
