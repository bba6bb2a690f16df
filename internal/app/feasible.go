package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sornas/pizzagami/internal/analyzer"
	"github.com/sornas/pizzagami/internal/menu"
	"github.com/sornas/pizzagami/internal/output"
)

var feasibleCmd = &cobra.Command{
	Use:   "feasible <menu-dir>",
	Short: "Measure coverage of the feasible recipe space",
	Long: `Compute the downward closure of every observed recipe: all non-empty
ingredient subsets reachable by removing ingredients from some pizza on
some menu. The report compares that feasible space against the recipes
actually observed.

The closure is exponential in the largest recipe's ingredient count;
shared sub-recipes are memoized so the computation stays tractable for
menus with large pizzas.`,
	Example: `  pizzagami feasible ./menus`,
	Args:    cobra.ExactArgs(1),
	RunE:    runFeasible,
}

func init() {
	RootCmd.AddCommand(feasibleCmd)
}

func runFeasible(cmd *cobra.Command, args []string) error {
	dir, err := menuDirArg(args)
	if err != nil {
		return err
	}

	listings, err := menu.ReadDirectory(dir)
	if err != nil {
		return err
	}
	catalog := menu.BuildCatalog(listings)

	spinner := output.NewSpinner("computing feasible pizzas")
	spinner.Start()
	report, err := analyzer.NewClosureEngine().Feasibility(catalog)
	spinner.Stop()
	if err != nil {
		return err
	}

	fmt.Print(output.RenderFeasibility(report))
	return nil
}
