package menu

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantName string
		wantIngr []string
	}{
		{
			name:     "regular line",
			line:     "Margherita: tomato, mozzarella",
			wantName: "margherita",
			wantIngr: []string{"mozzarella", "tomato"},
		},
		{
			name:     "uppercase ingredients normalized",
			line:     "Hawaiian: Ham, PINEAPPLE",
			wantName: "hawaiian",
			wantIngr: []string{"ham", "pineapple"},
		},
		{
			name:     "duplicate ingredients collapse",
			line:     "Doppio: tomato, tomato, basil",
			wantName: "doppio",
			wantIngr: []string{"basil", "tomato"},
		},
		{
			name:     "bare name means empty identity",
			line:     "Calzone",
			wantName: "calzone",
			wantIngr: nil,
		},
		{
			name:     "trailing colon means empty identity",
			line:     "Bianca:",
			wantName: "bianca:",
			wantIngr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, pizza := ParseLine(tt.line)
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			got := pizza.Ingredients()
			if len(got) == 0 && len(tt.wantIngr) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.wantIngr) {
				t.Errorf("ingredients = %v, want %v", got, tt.wantIngr)
			}
		})
	}
}

func TestReadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeMenu(t, dir, "napoli.txt", "Margherita: tomato, mozzarella\n\nDiavola: tomato, salami\n")
	writeMenu(t, dir, "roma.txt", "Hawaiian: ham, pineapple, mozzarella\n")

	listings, err := ReadDirectory(dir)
	if err != nil {
		t.Fatalf("ReadDirectory failed: %v", err)
	}

	if len(listings) != 3 {
		t.Fatalf("got %d listings, want 3 (blank lines skipped)", len(listings))
	}

	// Files are read in sorted order.
	if listings[0].Store != "napoli.txt" || listings[2].Store != "roma.txt" {
		t.Errorf("unexpected store order: %v, %v", listings[0].Store, listings[2].Store)
	}
	if listings[0].Name != "margherita" {
		t.Errorf("first listing name = %q, want margherita", listings[0].Name)
	}
}

func TestReadDirectoryMissing(t *testing.T) {
	if _, err := ReadDirectory(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Errorf("expected error for missing directory")
	}
}

func TestStoreDisplayName(t *testing.T) {
	if got := StoreDisplayName("napoli.txt"); got != "napoli" {
		t.Errorf("StoreDisplayName = %q, want napoli", got)
	}
	if got := StoreDisplayName("napoli"); got != "napoli" {
		t.Errorf("StoreDisplayName without suffix = %q, want napoli", got)
	}
}

func writeMenu(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write menu fixture: %v", err)
	}
}
