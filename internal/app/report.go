package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sornas/pizzagami/internal/output"
)

var (
	reportFeasible bool

	reportCmd = &cobra.Command{
		Use:   "report <menu-dir>",
		Short: "Run the full analysis and print a summary",
		Long: `Analyze all menus and print the summary report: per-store pizzagami
counts, catalog totals, the size of the possible and feasible recipe
spaces, the most common ingredients, and the per-store scatter of menu
size against pizzagami share.

The feasible-pizza computation enumerates ingredient subsets of every
observed recipe and is exponential in the largest recipe's ingredient
count. Use --feasible=false to skip it for menus with very large pizzas.`,
		Example: `  # Full report
  pizzagami report ./menus

  # Skip the subset-closure computation
  pizzagami report ./menus --feasible=false`,
		Args: cobra.ExactArgs(1),
		RunE: runReport,
	}
)

func init() {
	reportCmd.Flags().BoolVar(&reportFeasible, "feasible", true, "include the feasible-pizza closure in the report")
	RootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
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

	summary, err := buildSummary(a, reportFeasible)
	if err != nil {
		return err
	}

	fmt.Print(output.RenderSummary(summary))
	return nil
}
