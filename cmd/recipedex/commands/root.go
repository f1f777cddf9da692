// ABOUTME: Root command for the recipedex CLI
// ABOUTME: Registers all subcommands and global flags
package commands

import (
	"github.com/spf13/cobra"
)

var (
	quiet   bool
	verbose bool
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipedex",
		Short: "Recipe catalog and recommendations from the terminal",
		Long: `Recipedex keeps a local recipe catalog and recommends what to cook
based on your preferences, favorites, the time of day, or whatever
ingredients you have on hand.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show verbose output")

	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewShowCmd())
	cmd.AddCommand(NewAddCmd())
	cmd.AddCommand(NewRecommendCmd())
	cmd.AddCommand(NewPantryCmd())
	cmd.AddCommand(NewSettingsCmd())
	cmd.AddCommand(NewFavoriteCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}
