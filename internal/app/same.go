package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sornas/pizzagami/internal/analyzer"
	"github.com/sornas/pizzagami/internal/menu"
	"github.com/sornas/pizzagami/internal/output"
)

var sameCmd = &cobra.Command{
	Use:   "same <menu-dir>",
	Short: "Show shared names and shared recipes",
	Long: `Find menu aliasing across the catalog: pizza names that are sold with
more than one distinct recipe, and recipes that are sold under more than
one name.`,
	Example: `  pizzagami same ./menus`,
	Args:    cobra.ExactArgs(1),
	RunE:    runSame,
}

func init() {
	RootCmd.AddCommand(sameCmd)
}

func runSame(cmd *cobra.Command, args []string) error {
	dir, err := menuDirArg(args)
	if err != nil {
		return err
	}

	listings, err := menu.ReadDirectory(dir)
	if err != nil {
		return err
	}
	catalog := menu.BuildCatalog(listings)

	names, recipes := analyzer.SameThings(catalog)
	fmt.Print(output.RenderSameThings(names, recipes))
	return nil
}
