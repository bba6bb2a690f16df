// Package config provides analysis configuration for pizzagami.
//
// Every tunable is an explicit value threaded into the component that uses
// it; there are no mutable process-wide defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Options holds the knobs shared by the analysis commands.
type Options struct {
	// CommonIngredientLimit is the size N of the top-N common ingredient
	// list used to classify pizzagami commonness levels.
	CommonIngredientLimit int `yaml:"common_ingredient_limit"`
	// DuplicateWeighted selects the duplicate-weighted frequency counter
	// for the common ingredient ranking.
	DuplicateWeighted bool `yaml:"duplicate_weighted"`
	// MinPizzasToReport is the minimum number of distinct recipes an
	// ingredient must appear in before co-occurrence probabilities are
	// reported for it.
	MinPizzasToReport int `yaml:"min_pizzas_to_report"`
}

// Default returns the stock analysis options.
func Default() Options {
	return Options{
		CommonIngredientLimit: 10,
		DuplicateWeighted:     true,
		MinPizzasToReport:     5,
	}
}

// Dir returns the pizzagami config directory, respecting XDG_CONFIG_HOME.
// Defaults to ~/.config/pizzagami if XDG_CONFIG_HOME is not set.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "pizzagami"), nil
}

// Load reads analysis options from the YAML file at path, filling any field
// the file leaves unset from the defaults. A missing file yields the
// defaults without error.
func Load(path string) (Options, error) {
	opts := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := opts.validate(); err != nil {
		return opts, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return opts, nil
}

// LoadDefault loads analysis.yaml from the config directory.
func LoadDefault() (Options, error) {
	dir, err := Dir()
	if err != nil {
		return Default(), err
	}
	return Load(filepath.Join(dir, "analysis.yaml"))
}

func (o Options) validate() error {
	if o.CommonIngredientLimit < 1 {
		return fmt.Errorf("common_ingredient_limit must be positive, got %d", o.CommonIngredientLimit)
	}
	if o.MinPizzasToReport < 1 {
		return fmt.Errorf("min_pizzas_to_report must be positive, got %d", o.MinPizzasToReport)
	}
	return nil
}
