// Package output renders pizzagami analysis results for the terminal.
//
// All renderers build plain strings; ANSI color codes are emitted only when
// stdout is a TTY and NO_COLOR is unset, so piped output stays clean.
package output

import (
	"fmt"
	"math/big"
	"os"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/sornas/pizzagami/internal/analyzer"
	"github.com/sornas/pizzagami/internal/menu"
)

// ANSI color codes used across the renderers.
const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted. It
// checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// colorize wraps text in the given ANSI color code if color is enabled,
// otherwise returns the plain text.
func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// Summary carries everything the report command renders.
type Summary struct {
	Stores            int
	Listings          int
	DistinctPizzas    int
	Ingredients       int
	CommonLimit       int
	DuplicateWeighted bool
	CommonIngredients []analyzer.IngredientCount
	ByStore           []analyzer.StorePizzagami
	Feasibility       *analyzer.FeasibilityReport
	Scatter           []analyzer.StorePoint
}

// RenderSummary renders the full analysis report.
func RenderSummary(s *Summary) string {
	var sb strings.Builder

	sb.WriteString(RenderPizzagamiShort(s.ByStore))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("stores:                %d\n", s.Stores))
	sb.WriteString(fmt.Sprintf("listings:              %d\n", s.Listings))
	sb.WriteString(fmt.Sprintf("distinct pizzas:       %d\n", s.DistinctPizzas))
	sb.WriteString(fmt.Sprintf("distinct ingredients:  %d\n", s.Ingredients))

	// The identity space is the power set of the observed ingredients, far
	// beyond int64 for realistic menus.
	possible := new(big.Int).Lsh(big.NewInt(1), uint(s.Ingredients))
	sb.WriteString(fmt.Sprintf("possible pizzas:       2^%d = %s\n",
		s.Ingredients, humanize.BigComma(possible)))

	seen := new(big.Float).Quo(
		big.NewFloat(100*float64(s.DistinctPizzas)),
		new(big.Float).SetInt(possible),
	)
	sb.WriteString(fmt.Sprintf("seen pizzas:           %d (%s%% of possible)\n",
		s.DistinctPizzas, seen.Text('e', 1)))

	if s.Feasibility != nil {
		sb.WriteString(fmt.Sprintf("feasible pizzas:       %s (%.1f%% seen)\n",
			humanize.Comma(int64(s.Feasibility.FeasibleCount)), s.Feasibility.Coverage))
	}

	sb.WriteString("\n")
	weighting := "plain"
	if s.DuplicateWeighted {
		weighting = "duplicate-weighted"
	}
	sb.WriteString(fmt.Sprintf("%d most common ingredients (%s):\n", s.CommonLimit, weighting))
	for i, ic := range s.CommonIngredients {
		sb.WriteString(fmt.Sprintf("  %2d. (%3d) %s\n", i+1, ic.Count, ic.Ingredient))
	}

	if len(s.Scatter) > 0 {
		sb.WriteString("\n")
		sb.WriteString(RenderStoreScatter(s.Scatter))
	}

	return sb.String()
}

// RenderPizzagamiShort renders one line per store: how many of its listings
// are pizzagami.
func RenderPizzagamiShort(byStore []analyzer.StorePizzagami) string {
	var sb strings.Builder
	for _, sp := range byStore {
		store := menu.StoreDisplayName(sp.Store)
		if len(sp.Entries) == 0 {
			sb.WriteString(fmt.Sprintf("%s: %s\n", store, colorize(colorGray, "no pizzagami :(")))
			continue
		}
		pct := int(float64(len(sp.Entries))*100/float64(sp.MenuSize) + 0.5)
		sb.WriteString(fmt.Sprintf("%s: %s (out of %d total) %d%%\n",
			store,
			colorize(colorGreen, fmt.Sprintf("%d pizzagami!", len(sp.Entries))),
			sp.MenuSize, pct))
		if common := countIngredientCommon(sp.Entries); common > 0 {
			sb.WriteString(fmt.Sprintf("...%d ingredient-common pizzagami\n", common))
		}
	}
	return sb.String()
}

// RenderPizzagamiDetail renders every pizzagami per store with its names,
// recipe, and commonness level, followed by the cumulative level histogram.
func RenderPizzagamiDetail(byStore []analyzer.StorePizzagami, histogram []int) string {
	var sb strings.Builder
	for _, sp := range byStore {
		store := menu.StoreDisplayName(sp.Store)
		if len(sp.Entries) == 0 {
			sb.WriteString(fmt.Sprintf("%s: %s\n\n", store, colorize(colorGray, "no pizzagami :(")))
			continue
		}
		sb.WriteString(fmt.Sprintf("%s: %s (out of %d total)\n",
			store,
			colorize(colorGreen, fmt.Sprintf("%d pizzagami!", len(sp.Entries))),
			sp.MenuSize))
		if common := countIngredientCommon(sp.Entries); common > 0 {
			sb.WriteString(fmt.Sprintf("...%d ingredient-common pizzagami\n", common))
		}
		for _, e := range sp.Entries {
			name := e.Names[0]
			if len(e.Names) > 1 {
				name = "[" + strings.Join(e.Names, ", ") + "]"
			}
			sb.WriteString(fmt.Sprintf("  %s (%s)\n", name, e.Pizza))
			if e.CommonLevel >= 0 {
				sb.WriteString(fmt.Sprintf("    %d-ingredient-common pizzagami\n", e.CommonLevel))
			}
		}
		sb.WriteString("\n")
	}

	total := 0
	for _, n := range histogram {
		total += n
	}
	sb.WriteString(fmt.Sprintf("%d ingredient-common pizzagami\n", total))
	cumulative := 0
	for level, n := range histogram {
		cumulative += n
		sb.WriteString(fmt.Sprintf("  %2d-ingredient-common pizzagami: %d\n", level, cumulative))
	}

	return sb.String()
}

func countIngredientCommon(entries []analyzer.PizzagamiEntry) int {
	n := 0
	for _, e := range entries {
		if e.CommonLevel >= 0 {
			n++
		}
	}
	return n
}

// RenderExclusiveTable lists each store's exclusive ingredients. Stores are
// rendered in the given order; stores without exclusive ingredients are
// skipped.
func RenderExclusiveTable(exclusive map[string][]string, storeOrder []string) string {
	if len(exclusive) == 0 {
		return "No store-exclusive ingredients found.\n"
	}

	var sb strings.Builder
	sb.WriteString("ingredients only used at one store:\n")
	for _, store := range storeOrder {
		ingrs, ok := exclusive[store]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %s: %s\n", menu.StoreDisplayName(store), strings.Join(ingrs, ", ")))
	}
	return sb.String()
}

// RenderPairingsTable renders the top co-occurrence probabilities, at most
// limit rows.
func RenderPairingsTable(pairings []analyzer.Pairing, limit int) string {
	if len(pairings) == 0 {
		return "No ingredient pairs meet the support threshold.\n"
	}

	if limit > 0 && limit < len(pairings) {
		pairings = pairings[:limit]
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-4s %-6s %s\n", "#", "Prob", "Pair"))
	sb.WriteString(strings.Repeat("─", 60))
	sb.WriteString("\n")
	for i, p := range pairings {
		sb.WriteString(fmt.Sprintf("%-4d %-6.2f %s (%d) -> %s (%d)\n",
			i+1, p.Prob, p.First, p.FirstSupport, p.Second, p.SecondCount))
	}
	return sb.String()
}

// RenderFeasibility renders the closure report.
func RenderFeasibility(r *analyzer.FeasibilityReport) string {
	return fmt.Sprintf("%s feasible pizzas (%.1f%% seen, %s never observed)\n",
		humanize.Comma(int64(r.FeasibleCount)),
		r.Coverage,
		humanize.Comma(int64(r.UnseenCount)))
}

// RenderSameThings renders name and recipe collisions.
func RenderSameThings(names []analyzer.NameCollision, recipes []analyzer.RecipeCollision) string {
	if len(names) == 0 && len(recipes) == 0 {
		return "No shared names or shared recipes found.\n"
	}

	var sb strings.Builder
	if len(names) > 0 {
		sb.WriteString("same name, different ingredients:\n")
		for _, nc := range names {
			sb.WriteString(fmt.Sprintf("  %s:\n", nc.Name))
			for _, p := range nc.Pizzas {
				sb.WriteString(fmt.Sprintf("    %s\n", p))
			}
		}
	}
	if len(recipes) > 0 {
		sb.WriteString("same pizza, different names:\n")
		for _, rc := range recipes {
			sb.WriteString(fmt.Sprintf("  %s:\n", rc.Pizza))
			for _, name := range rc.Names {
				sb.WriteString(fmt.Sprintf("    %s\n", name))
			}
		}
	}
	return sb.String()
}

// RenderStoreScatter renders the per-store menu-size/pizzagami-ratio points
// as a small table, largest menus first.
func RenderStoreScatter(points []analyzer.StorePoint) string {
	sorted := make([]analyzer.StorePoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].MenuSize != sorted[j].MenuSize {
			return sorted[i].MenuSize > sorted[j].MenuSize
		}
		return sorted[i].Store < sorted[j].Store
	})
	points = sorted

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-24s %-10s %s\n", "Store", "Menu", "Pizzagami"))
	sb.WriteString(strings.Repeat("─", 48))
	sb.WriteString("\n")
	for _, p := range points {
		sb.WriteString(fmt.Sprintf("%-24s %-10d %.0f%%\n",
			truncate(p.Store, 24), p.MenuSize, 100*p.PizzagamiRatio))
	}
	return sb.String()
}

// truncate truncates a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
