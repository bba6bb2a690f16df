package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sornas/pizzagami/internal/output"
	"github.com/sornas/pizzagami/internal/store"
)

var (
	runsDBPath string

	runsCmd = &cobra.Command{
		Use:   "runs",
		Short: "List exported analysis runs",
		Long: `List the analysis snapshots previously written by 'pizzagami export',
newest first.`,
		Example: `  pizzagami runs
  pizzagami runs --db ./analysis.db`,
		Args: cobra.NoArgs,
		RunE: runRuns,
	}
)

func init() {
	runsCmd.Flags().StringVar(&runsDBPath, "db", "", "database path (default: <config-dir>/pizzagami.db)")
	RootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	dbPath := runsDBPath
	if dbPath == "" {
		var err error
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

	runs, err := db.ListRuns()
	if err != nil {
		return err
	}

	fmt.Print(output.RenderRunsTable(runs))
	return nil
}
