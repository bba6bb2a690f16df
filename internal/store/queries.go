package store

import (
	"database/sql"
	"fmt"
)

// SaveRun writes a run and all of its result rows in one transaction.
func (s *Store) SaveRun(run *Run, pizzagami []PizzagamiRow, exclusive []ExclusiveRow, pairings []PairingRow) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO runs (id, created_at, menu_dir, stores, listings, distinct_pizzas,
			ingredients, feasible, unseen, coverage)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt, run.MenuDir, run.Stores, run.Listings,
		run.DistinctPizzas, run.Ingredients, run.Feasible, run.Unseen, run.Coverage)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for _, row := range pizzagami {
		_, err = tx.Exec(`
			INSERT INTO pizzagami (run_id, store, name, ingredients, common_level)
			VALUES (?, ?, ?, ?, ?)`,
			run.ID, row.Store, row.Name, row.Ingredients, row.CommonLevel)
		if err != nil {
			return fmt.Errorf("failed to insert pizzagami row: %w", err)
		}
	}

	for _, row := range exclusive {
		_, err = tx.Exec(`
			INSERT INTO exclusive_ingredients (run_id, store, ingredient)
			VALUES (?, ?, ?)`,
			run.ID, row.Store, row.Ingredient)
		if err != nil {
			return fmt.Errorf("failed to insert exclusive ingredient row: %w", err)
		}
	}

	for _, row := range pairings {
		_, err = tx.Exec(`
			INSERT INTO pairings (run_id, prob, first_ingredient, first_support,
				second_ingredient, second_count)
			VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID, row.Prob, row.First, row.FirstSupport, row.Second, row.SecondCount)
		if err != nil {
			return fmt.Errorf("failed to insert pairing row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}
	return nil
}

// ListRuns returns all exported runs, newest first.
func (s *Store) ListRuns() ([]*Run, error) {
	rows, err := s.db.Query(`
		SELECT id, created_at, menu_dir, stores, listings, distinct_pizzas,
			ingredients, feasible, unseen, coverage
		FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run := &Run{}
		err := rows.Scan(&run.ID, &run.CreatedAt, &run.MenuDir, &run.Stores,
			&run.Listings, &run.DistinctPizzas, &run.Ingredients,
			&run.Feasible, &run.Unseen, &run.Coverage)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}

// GetRun returns a run by ID, or sql.ErrNoRows if it does not exist.
func (s *Store) GetRun(id string) (*Run, error) {
	run := &Run{}
	err := s.db.QueryRow(`
		SELECT id, created_at, menu_dir, stores, listings, distinct_pizzas,
			ingredients, feasible, unseen, coverage
		FROM runs WHERE id = ?`, id).
		Scan(&run.ID, &run.CreatedAt, &run.MenuDir, &run.Stores,
			&run.Listings, &run.DistinctPizzas, &run.Ingredients,
			&run.Feasible, &run.Unseen, &run.Coverage)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// PizzagamiOf returns the pizzagami rows recorded for a run.
func (s *Store) PizzagamiOf(runID string) ([]PizzagamiRow, error) {
	rows, err := s.db.Query(`
		SELECT store, name, ingredients, common_level
		FROM pizzagami WHERE run_id = ? ORDER BY store, name`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pizzagami rows: %w", err)
	}
	defer rows.Close()

	var out []PizzagamiRow
	for rows.Next() {
		var row PizzagamiRow
		if err := rows.Scan(&row.Store, &row.Name, &row.Ingredients, &row.CommonLevel); err != nil {
			return nil, fmt.Errorf("failed to scan pizzagami row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pizzagami rows: %w", err)
	}
	return out, nil
}
