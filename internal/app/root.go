package app

import (
	"github.com/spf13/cobra"

	"github.com/sornas/pizzagami/internal/config"
)

var (
	configPath string

	// RootCmd is the root command for pizzagami.
	RootCmd = &cobra.Command{
		Use:   "pizzagami",
		Short: "Analyze pizza menus for unique recipes and ingredient patterns",
		Long: `pizzagami analyzes a directory of per-store pizza menus and reports
which recipes are unique across all stores (pizzagami), which ingredients
only one store uses, how ingredients co-occur, and how much of the
theoretically feasible recipe space has actually been observed.

Menus are plain text, one file per store, one pizza per line:

  Margherita: tomato, mozzarella
  Hawaiian: ham, pineapple, mozzarella

Two pizzas are the same recipe iff their ingredient sets are equal; names
and stores never figure into recipe identity.

Examples:
  # Validate menu files
  pizzagami check ./menus

  # Full analysis summary
  pizzagami report ./menus

  # Every pizzagami, per store
  pizzagami list ./menus

  # Re-run the report whenever a menu changes
  pizzagami watch ./menus`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "analysis config file (default: <config-dir>/analysis.yaml)")
	RootCmd.SuggestionsMinimumDistance = 2
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// loadOptions loads analysis options from --config or the default location.
func loadOptions() (config.Options, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.LoadDefault()
}
