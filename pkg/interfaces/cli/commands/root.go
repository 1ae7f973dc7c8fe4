package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Options holds the global flags shared by every subcommand
type Options struct {
	ConfigPath    string
	DataPaths     []string
	InventoryPath string
	Location      string
	Batch         int
	Format        string
	Width         int
	Color         string
	Verbose       bool
}

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "craftreq",
		Short: "craftreq - check crafting requirements against an inventory",
		Long: `craftreq loads requirement definitions and an inventory, then reports
whether a recipe can be made and what is missing.

Examples:
  craftreq check plank_frame --batch 2
  craftreq check plank_frame rope_ladder
  craftreq missing stitched_bag --location shed
  craftreq disassemble welded_bracket
  craftreq validate
  craftreq inventory import data/inventory.csv`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "Path to config file (default: ./craftreq.yaml)")
	flags.StringSliceVar(&opts.DataPaths, "data", nil, "Definitions files (YAML or JSON)")
	flags.StringVar(&opts.InventoryPath, "inventory", "", "Inventory CSV file")
	flags.StringVar(&opts.Location, "location", "", "Inventory location to check against")
	flags.IntVar(&opts.Batch, "batch", 1, "Number of items to craft at once")
	flags.StringVar(&opts.Format, "format", "", "Output format: text, json")
	flags.IntVar(&opts.Width, "width", 0, "Display width for folded listings")
	flags.StringVar(&opts.Color, "color", "", "Color mode: style, tags, none")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(newCheckCommand(opts))
	rootCmd.AddCommand(newMissingCommand(opts))
	rootCmd.AddCommand(newDisassembleCommand(opts))
	rootCmd.AddCommand(newValidateCommand(opts))
	rootCmd.AddCommand(newListCommand(opts))
	rootCmd.AddCommand(newInventoryCommand(opts))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
