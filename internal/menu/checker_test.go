package menu

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckDirectoryClean(t *testing.T) {
	dir := t.TempDir()
	writeMenu(t, dir, "napoli.txt", "Margherita: tomato, mozzarella\nDiavola: tomato, salami\n")

	diags, err := CheckDirectory(dir)
	if err != nil {
		t.Fatalf("CheckDirectory failed: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", diags)
	}
}

func TestCheckDirectoryDiagnostics(t *testing.T) {
	dir := t.TempDir()
	writeMenu(t, dir, "roma.txt",
		"Margherita tomato, mozzarella\n"+ // missing colon
			"quattro: tomato, mozzarella\n"+ // name not capitalized
			"Capricciosa: tomato, Mozzarella\n"+ // ingredient not lowercase
			"Strana: a: b\n") // extra colon

	diags, err := CheckDirectory(dir)
	if err != nil {
		t.Fatalf("CheckDirectory failed: %v", err)
	}
	if len(diags) != 4 {
		t.Fatalf("got %d diagnostics, want 4: %v", len(diags), diags)
	}

	path := filepath.Join(dir, "roma.txt")
	wantFragments := []string{
		path + ":1: missing ':'",
		path + ":2: pizza name not capitalized: quattro",
		path + ":3: ingredient name not lowercase: Mozzarella",
		path + ":4: unexpected extra ':'",
	}
	for i, want := range wantFragments {
		if !strings.Contains(diags[i], want) {
			t.Errorf("diags[%d] = %q, want it to contain %q", i, diags[i], want)
		}
	}
}

func TestCheckDirectoryLineOrder(t *testing.T) {
	dir := t.TempDir()
	writeMenu(t, dir, "a.txt", "bad one\nAlso bad\n")

	diags, err := CheckDirectory(dir)
	if err != nil {
		t.Fatalf("CheckDirectory failed: %v", err)
	}
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(diags))
	}
	if !strings.Contains(diags[0], ":1:") || !strings.Contains(diags[1], ":2:") {
		t.Errorf("diagnostics out of line order: %v", diags)
	}
}
