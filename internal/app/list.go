package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sornas/pizzagami/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list <menu-dir>",
	Short: "List every pizzagami per store",
	Long: `List each store's globally unique recipes with their menu names,
ingredients, and ingredient-commonness level, followed by a cumulative
histogram of commonness levels.

A recipe is pizzagami when it is listed exactly once across the entire
catalog, counting duplicate names at the same store as separate listings.
A pizzagami is N-ingredient-common when all of its ingredients are within
the global top common-ingredient list; N is the rank of its least common
ingredient.`,
	Example: `  # Show all pizzagami with recipes
  pizzagami list ./menus`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	RootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	dir, err := menuDirArg(args)
	if err != nil {
		return err
	}
	opts, err := loadOptions()
	if err != nil {
		return err
	}

	a, err := runAnalysis(dir, opts)
	if err != nil {
		return err
	}

	hist := a.pizzagami.LevelHistogram(len(a.commonRank))
	fmt.Print(output.RenderPizzagamiDetail(a.pizzagami.ByStore(), hist))
	return nil
}
