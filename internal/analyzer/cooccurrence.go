package analyzer

import (
	"sort"

	"github.com/sornas/pizzagami/internal/menu"
)

// CoOccurrences estimates, for every ordered ingredient pair (a, b), the
// conditional probability that a recipe containing a also contains b. Each
// distinct identity counts once regardless of how many stores list it.
// Ingredients contained in fewer than minSupport distinct recipes are
// excluded entirely rather than reported with low-confidence probabilities;
// the support filter also guards the division. Self-pairs are never
// computed.
//
// The result is sorted by descending probability; ties break by descending
// first-ingredient support, then first ingredient, then second ingredient.
func CoOccurrences(cat *menu.Catalog, minSupport int) []Pairing {
	if minSupport < 1 {
		minSupport = 1
	}

	pizzasWith := make(map[string][]menu.Pizza)
	for _, pizza := range cat.AllPizzas() {
		for _, ingr := range pizza.Ingredients() {
			pizzasWith[ingr] = append(pizzasWith[ingr], pizza)
		}
	}

	ingredients := make([]string, 0, len(pizzasWith))
	for ingr := range pizzasWith {
		ingredients = append(ingredients, ingr)
	}
	sort.Strings(ingredients)

	var pairings []Pairing
	for _, first := range ingredients {
		supporting := pizzasWith[first]
		if len(supporting) < minSupport {
			continue
		}

		others := make(map[string]struct{})
		for _, pizza := range supporting {
			for _, ingr := range pizza.Ingredients() {
				if ingr != first {
					others[ingr] = struct{}{}
				}
			}
		}

		for second := range others {
			n := 0
			for _, pizza := range supporting {
				if pizza.Contains(second) {
					n++
				}
			}
			pairings = append(pairings, Pairing{
				Prob:         float64(n) / float64(len(supporting)),
				First:        first,
				FirstSupport: len(supporting),
				Second:       second,
				SecondCount:  n,
			})
		}
	}

	sort.Slice(pairings, func(i, j int) bool {
		a, b := pairings[i], pairings[j]
		if a.Prob != b.Prob {
			return a.Prob > b.Prob
		}
		if a.FirstSupport != b.FirstSupport {
			return a.FirstSupport > b.FirstSupport
		}
		if a.First != b.First {
			return a.First < b.First
		}
		return a.Second < b.Second
	})
	return pairings
}
