package app

import (
	"testing"

	"github.com/sornas/pizzagami/internal/config"
)

func TestExportRowConversion(t *testing.T) {
	dir := writeMenuDir(t, map[string]string{
		"napoli.txt": "Margherita: tomato, mozzarella\nDiavola: tomato, salami\n",
		"roma.txt":   "Classic: tomato, mozzarella\n",
	})

	a, err := runAnalysis(dir, config.Default())
	if err != nil {
		t.Fatalf("runAnalysis failed: %v", err)
	}

	pizzagami := pizzagamiRows(a)
	if len(pizzagami) != 1 {
		t.Fatalf("got %d pizzagami rows, want 1", len(pizzagami))
	}
	if pizzagami[0].Store != "napoli" || pizzagami[0].Name != "diavola" {
		t.Errorf("unexpected pizzagami row: %+v", pizzagami[0])
	}
	if pizzagami[0].Ingredients != "salami, tomato" {
		t.Errorf("ingredients = %q, want sorted comma list", pizzagami[0].Ingredients)
	}

	exclusive := exclusiveRows(a)
	// salami is exclusive to napoli; tomato and mozzarella are shared.
	foundSalami := false
	for _, row := range exclusive {
		if row.Ingredient == "salami" {
			foundSalami = true
			if row.Store != "napoli" {
				t.Errorf("salami exclusive to %s, want napoli", row.Store)
			}
		}
		if row.Ingredient == "tomato" || row.Ingredient == "mozzarella" {
			t.Errorf("shared ingredient %s reported exclusive", row.Ingredient)
		}
	}
	if !foundSalami {
		t.Errorf("salami missing from exclusive rows: %+v", exclusive)
	}

	pairings := pairingRows(a, 1)
	if len(pairings) == 0 {
		t.Fatalf("expected pairing rows with min support 1")
	}
	for _, row := range pairings {
		if row.Prob < 0 || row.Prob > 1 {
			t.Errorf("pairing probability out of range: %+v", row)
		}
		if row.First == row.Second {
			t.Errorf("self pairing exported: %+v", row)
		}
	}
}

func TestExportRowConversionDuplicateNames(t *testing.T) {
	// A pizzagami with several names at its store exports one row per name;
	// a recipe listed twice is not pizzagami at all.
	dir := writeMenuDir(t, map[string]string{
		"napoli.txt": "Margherita: tomato, mozzarella\nMargarita: tomato, mozzarella\nDiavola: tomato, salami\n",
	})

	a, err := runAnalysis(dir, config.Default())
	if err != nil {
		t.Fatalf("runAnalysis failed: %v", err)
	}

	rows := pizzagamiRows(a)
	if len(rows) != 1 || rows[0].Name != "diavola" {
		t.Errorf("rows = %+v, want only diavola", rows)
	}
}
