package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sornas/pizzagami/internal/analyzer"
	"github.com/sornas/pizzagami/internal/menu"
	"github.com/sornas/pizzagami/internal/store"
)

var (
	exportDBPath string

	exportCmd = &cobra.Command{
		Use:   "export <menu-dir>",
		Short: "Run the full analysis and save a snapshot to SQLite",
		Long: `Run the complete analysis and write its results to a SQLite database:
one run row with catalog totals and feasibility coverage, plus one row per
pizzagami listing, store-exclusive ingredient, and reported ingredient
pair.

The analysis itself stays a one-shot in-memory batch; the database only
records results so runs can be listed and compared with 'pizzagami runs'.`,
		Example: `  # Export to the default database
  pizzagami export ./menus

  # Export to a specific file
  pizzagami export ./menus --db ./analysis.db`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}
)

func init() {
	exportCmd.Flags().StringVar(&exportDBPath, "db", "", "database path (default: <config-dir>/pizzagami.db)")
	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
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
	summary, err := buildSummary(a, true)
	if err != nil {
		return err
	}

	dbPath := exportDBPath
	if dbPath == "" {
		dbPath, err = defaultDBPath()
		if err != nil {
			return err
		}
	}

	db, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.CreateSchema(); err != nil {
		return err
	}

	run := &store.Run{
		ID:             uuid.NewString(),
		CreatedAt:      time.Now().UTC(),
		MenuDir:        dir,
		Stores:         summary.Stores,
		Listings:       summary.Listings,
		DistinctPizzas: summary.DistinctPizzas,
		Ingredients:    summary.Ingredients,
	}
	if summary.Feasibility != nil {
		run.Feasible = summary.Feasibility.FeasibleCount
		run.Unseen = summary.Feasibility.UnseenCount
		run.Coverage = summary.Feasibility.Coverage
	}

	if err := db.SaveRun(run, pizzagamiRows(a), exclusiveRows(a), pairingRows(a, opts.MinPizzasToReport)); err != nil {
		return err
	}

	fmt.Printf("exported run %s to %s\n", run.ID, dbPath)
	return nil
}

func pizzagamiRows(a *analysis) []store.PizzagamiRow {
	var rows []store.PizzagamiRow
	for _, sp := range a.pizzagami.ByStore() {
		for _, e := range sp.Entries {
			for _, name := range e.Names {
				rows = append(rows, store.PizzagamiRow{
					Store:       menu.StoreDisplayName(sp.Store),
					Name:        name,
					Ingredients: e.Pizza.String(),
					CommonLevel: e.CommonLevel,
				})
			}
		}
	}
	return rows
}

func exclusiveRows(a *analysis) []store.ExclusiveRow {
	exclusive := analyzer.ExclusiveIngredients(a.catalog)
	var rows []store.ExclusiveRow
	for _, storeName := range a.catalog.Stores() {
		for _, ingr := range exclusive[storeName] {
			rows = append(rows, store.ExclusiveRow{
				Store:      menu.StoreDisplayName(storeName),
				Ingredient: ingr,
			})
		}
	}
	return rows
}

func pairingRows(a *analysis, minSupport int) []store.PairingRow {
	var rows []store.PairingRow
	for _, p := range analyzer.CoOccurrences(a.catalog, minSupport) {
		rows = append(rows, store.PairingRow{
			Prob:         p.Prob,
			First:        p.First,
			FirstSupport: p.FirstSupport,
			Second:       p.Second,
			SecondCount:  p.SecondCount,
		})
	}
	return rows
}
