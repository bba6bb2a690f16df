package menu

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ParseLine turns one menu line into a listing name and identity. Lines look
// like "Margherita: tomato, mozzarella"; a bare name (no colon, or a trailing
// colon with nothing after it) means a pizza with no listed ingredients.
// Names and ingredients are lowercased and trimmed.
func ParseLine(line string) (string, Pizza) {
	name, rest, ok := strings.Cut(line, ":")
	if !ok || strings.TrimSpace(rest) == "" {
		return strings.ToLower(strings.TrimSpace(line)), Pizza{}
	}

	ingredients := strings.Split(rest, ",")
	for i, ingr := range ingredients {
		ingredients[i] = strings.ToLower(strings.TrimSpace(ingr))
	}
	return strings.ToLower(strings.TrimSpace(name)), NewPizza(ingredients)
}

// ReadDirectory reads one menu file per store from dir. The store identifier
// is the file name; empty lines are skipped.
func ReadDirectory(dir string) ([]Listing, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu directory: %w", err)
	}

	// Deterministic store order regardless of directory enumeration.
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var listings []Listing
	for _, name := range names {
		fileListings, err := readMenuFile(filepath.Join(dir, name), name)
		if err != nil {
			return nil, err
		}
		listings = append(listings, fileListings...)
	}
	return listings, nil
}

func readMenuFile(path, store string) ([]Listing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open menu file: %w", err)
	}
	defer f.Close()

	var listings []Listing
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, pizza := ParseLine(line)
		listings = append(listings, Listing{Store: store, Name: name, Pizza: pizza})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read menu file %s: %w", path, err)
	}
	return listings, nil
}

// StoreDisplayName strips the menu file extension from a store identifier
// for presentation.
func StoreDisplayName(store string) string {
	return strings.TrimSuffix(store, ".txt")
}
