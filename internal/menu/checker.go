package menu

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CheckDirectory validates the format of every menu file in dir and returns
// one diagnostic per violation, formatted "path:line: message" in file and
// line order. An empty result means the directory parses cleanly.
//
// Checked rules:
//   - every line carries exactly one ':' between name and ingredients
//   - the pizza name starts with an uppercase letter
//   - ingredients are entirely lowercase
func CheckDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var diags []string
	for _, name := range names {
		path := filepath.Join(dir, name)
		fileDiags, err := checkMenuFile(path)
		if err != nil {
			return nil, err
		}
		diags = append(diags, fileDiags...)
	}
	return diags, nil
}

func checkMenuFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open menu file: %w", err)
	}
	defer f.Close()

	var diags []string
	lineno := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineno++
		diags = append(diags, checkLine(path, lineno, scanner.Text())...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read menu file %s: %w", path, err)
	}
	return diags, nil
}

func checkLine(path string, lineno int, line string) []string {
	var diags []string
	diag := func(format string, args ...any) {
		diags = append(diags, fmt.Sprintf("%s:%d: %s", path, lineno, fmt.Sprintf(format, args...)))
	}

	switch strings.Count(line, ":") {
	case 0:
		diag("missing ':'")
		return diags
	case 1:
	default:
		diag("unexpected extra ':'")
		return diags
	}

	name, rest, _ := strings.Cut(line, ":")
	if name != "" && name[:1] != strings.ToUpper(name[:1]) {
		diag("pizza name not capitalized: %s", name)
	}

	for _, ingr := range strings.Split(rest, ", ") {
		if ingr != strings.ToLower(ingr) {
			diag("ingredient name not lowercase: %s", ingr)
		}
	}
	return diags
}
