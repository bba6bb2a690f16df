package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sornas/pizzagami/internal/analyzer"
	"github.com/sornas/pizzagami/internal/config"
	"github.com/sornas/pizzagami/internal/menu"
	"github.com/sornas/pizzagami/internal/output"
)

// analysis bundles the shared pipeline state every command starts from: the
// catalog plus the frequency counter and pizzagami classifier built over it.
type analysis struct {
	opts       config.Options
	catalog    *menu.Catalog
	counter    *analyzer.FrequencyCounter
	commonRank []string
	pizzagami  *analyzer.Pizzagami
}

// runAnalysis reads the menu directory and runs the common pipeline. The
// frequency counter and the pizzagami classifier share the same weighting
// flag so commonness levels line up with the reported ranking.
func runAnalysis(dir string, opts config.Options) (*analysis, error) {
	listings, err := menu.ReadDirectory(dir)
	if err != nil {
		return nil, err
	}

	catalog := menu.BuildCatalog(listings)
	counter := analyzer.NewFrequencyCounter(catalog)
	commonRank := counter.Common(opts.CommonIngredientLimit, opts.DuplicateWeighted)

	return &analysis{
		opts:       opts,
		catalog:    catalog,
		counter:    counter,
		commonRank: commonRank,
		pizzagami:  analyzer.NewPizzagami(catalog, commonRank),
	}, nil
}

// buildSummary assembles the report data, optionally including the
// feasibility closure. The closure is exponential in the largest recipe, so
// a spinner runs while it computes.
func buildSummary(a *analysis, withFeasibility bool) (*output.Summary, error) {
	s := &output.Summary{
		Stores:            len(a.catalog.Stores()),
		Listings:          a.catalog.TotalListings(),
		DistinctPizzas:    len(a.catalog.AllPizzas()),
		Ingredients:       len(a.catalog.AllIngredients()),
		CommonLimit:       a.opts.CommonIngredientLimit,
		DuplicateWeighted: a.opts.DuplicateWeighted,
		CommonIngredients: a.counter.Ranked(a.opts.CommonIngredientLimit, a.opts.DuplicateWeighted),
		ByStore:           a.pizzagami.ByStore(),
		Scatter:           a.pizzagami.ScatterPoints(),
	}

	if withFeasibility && !a.catalog.IsEmpty() {
		spinner := output.NewSpinner("computing feasible pizzas")
		spinner.Start()
		report, err := analyzer.NewClosureEngine().Feasibility(a.catalog)
		spinner.Stop()
		if err != nil {
			return nil, fmt.Errorf("failed to compute feasibility: %w", err)
		}
		s.Feasibility = report
	}

	return s, nil
}

// menuDirArg validates the positional menu directory argument.
func menuDirArg(args []string) (string, error) {
	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("failed to open menu directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", dir)
	}
	return dir, nil
}

// defaultDBPath returns the export database path inside the config
// directory, creating the directory if needed.
func defaultDBPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return filepath.Join(dir, "pizzagami.db"), nil
}
