package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sornas/pizzagami/internal/analyzer"
	"github.com/sornas/pizzagami/internal/menu"
	"github.com/sornas/pizzagami/internal/output"
)

var exclusiveCmd = &cobra.Command{
	Use:   "exclusive <menu-dir>",
	Short: "Show ingredients used by only one store",
	Long: `List, per store, the ingredients that appear on that store's menu and
on no other store's menu anywhere in the catalog.`,
	Example: `  pizzagami exclusive ./menus`,
	Args:    cobra.ExactArgs(1),
	RunE:    runExclusive,
}

func init() {
	RootCmd.AddCommand(exclusiveCmd)
}

func runExclusive(cmd *cobra.Command, args []string) error {
	dir, err := menuDirArg(args)
	if err != nil {
		return err
	}

	listings, err := menu.ReadDirectory(dir)
	if err != nil {
		return err
	}
	catalog := menu.BuildCatalog(listings)

	exclusive := analyzer.ExclusiveIngredients(catalog)
	fmt.Print(output.RenderExclusiveTable(exclusive, catalog.Stores()))
	return nil
}
