package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sornas/pizzagami/internal/analyzer"
	"github.com/sornas/pizzagami/internal/menu"
	"github.com/sornas/pizzagami/internal/output"
)

var (
	pairsMinSupport int
	pairsLimit      int

	pairsCmd = &cobra.Command{
		Use:   "pairs <menu-dir>",
		Short: "Show ingredient co-occurrence probabilities",
		Long: `For each ingredient pair (a, b), estimate the conditional probability
that a recipe containing a also contains b. Each distinct recipe counts
once regardless of how many stores list it, and the probability is not
symmetric: P(a -> b) generally differs from P(b -> a).

Ingredients appearing in fewer distinct recipes than the support threshold
are excluded rather than reported with unreliable probabilities.`,
		Example: `  # Top 30 pairs with the configured support threshold
  pizzagami pairs ./menus

  # Report every pair seen in at least 2 recipes
  pizzagami pairs ./menus --min-support 2 --limit 0`,
		Args: cobra.ExactArgs(1),
		RunE: runPairs,
	}
)

func init() {
	pairsCmd.Flags().IntVar(&pairsMinSupport, "min-support", 0, "minimum distinct recipes per ingredient (default: config value)")
	pairsCmd.Flags().IntVar(&pairsLimit, "limit", 30, "maximum pairs to show, 0 for all")
	RootCmd.AddCommand(pairsCmd)
}

func runPairs(cmd *cobra.Command, args []string) error {
	dir, err := menuDirArg(args)
	if err != nil {
		return err
	}
	opts, err := loadOptions()
	if err != nil {
		return err
	}

	minSupport := pairsMinSupport
	if minSupport <= 0 {
		minSupport = opts.MinPizzasToReport
	}

	listings, err := menu.ReadDirectory(dir)
	if err != nil {
		return err
	}
	catalog := menu.BuildCatalog(listings)

	pairings := analyzer.CoOccurrences(catalog, minSupport)
	fmt.Print(output.RenderPairingsTable(pairings, pairsLimit))
	return nil
}
