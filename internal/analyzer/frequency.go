package analyzer

import (
	"sort"

	"github.com/sornas/pizzagami/internal/menu"
)

// FrequencyCounter tallies how often each ingredient occurs across the
// catalog under two weighting schemes. The plain count increments once per
// distinct (store, recipe) pair; the duplicate-weighted count increments once
// per listing, so a recipe sold under two names at one store contributes
// twice. Weighted counts approximate purchase volume rather than
// distinct-recipe volume.
type FrequencyCounter struct {
	plain    map[string]int
	weighted map[string]int
	order    map[string]int // first-seen rank, used to break count ties
}

// NewFrequencyCounter tallies the whole catalog. Iteration follows the
// catalog's store-order contract, so first-seen tie-break order is
// deterministic for a given input.
func NewFrequencyCounter(cat *menu.Catalog) *FrequencyCounter {
	c := &FrequencyCounter{
		plain:    make(map[string]int),
		weighted: make(map[string]int),
		order:    make(map[string]int),
	}

	for _, store := range cat.Stores() {
		for _, pizza := range cat.DistinctPizzasOf(store) {
			listings := len(cat.NamesOf(store, pizza))
			for _, ingr := range pizza.Ingredients() {
				if _, ok := c.order[ingr]; !ok {
					c.order[ingr] = len(c.order)
				}
				c.plain[ingr]++
				c.weighted[ingr] += listings
			}
		}
	}
	return c
}

// Count returns the tally for a single ingredient under the chosen scheme.
func (c *FrequencyCounter) Count(ingr string, weighted bool) int {
	if weighted {
		return c.weighted[ingr]
	}
	return c.plain[ingr]
}

// Ranked returns the top-n ingredients by descending count together with
// their counts. Ties are broken by first-seen order. If n exceeds the number
// of known ingredients, all of them are returned.
func (c *FrequencyCounter) Ranked(n int, weighted bool) []IngredientCount {
	counts := c.plain
	if weighted {
		counts = c.weighted
	}

	ranked := make([]IngredientCount, 0, len(counts))
	for ingr, count := range counts {
		ranked = append(ranked, IngredientCount{Ingredient: ingr, Count: count})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return c.order[ranked[i].Ingredient] < c.order[ranked[j].Ingredient]
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Common returns the top-n ingredients by descending count, ties broken by
// first-seen order. The same counter and weighting flag must feed both this
// ranking and the pizzagami commonness classification for results to line up.
func (c *FrequencyCounter) Common(n int, weighted bool) []string {
	ranked := c.Ranked(n, weighted)
	out := make([]string, len(ranked))
	for i, ic := range ranked {
		out[i] = ic.Ingredient
	}
	return out
}
