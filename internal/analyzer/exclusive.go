package analyzer

import (
	"sort"

	"github.com/sornas/pizzagami/internal/menu"
)

// ExclusiveIngredients returns, per store, the ingredients that appear in
// listings of that store and nowhere else. The result maps store identifiers
// to sorted ingredient lists; stores with no exclusive ingredients are
// absent.
//
// An ingredient is demoted from the single-store bookkeeping exactly once,
// the first time it is seen at a second distinct store. Re-seeing it at its
// recorded store leaves it exclusive; any later third store finds it already
// demoted. Traversal follows the catalog's lexicographic store order, so the
// recorded first store is well defined.
func ExclusiveIngredients(cat *menu.Catalog) map[string][]string {
	seenOnce := make(map[string]string) // ingredient -> only store seen so far
	seenMore := make(map[string]struct{})

	for _, store := range cat.Stores() {
		for _, pizza := range cat.PizzasOf(store) {
			for _, ingr := range pizza.Ingredients() {
				if _, ok := seenMore[ingr]; ok {
					continue
				}
				if prev, ok := seenOnce[ingr]; ok && prev != store {
					seenMore[ingr] = struct{}{}
					delete(seenOnce, ingr)
					continue
				}
				seenOnce[ingr] = store
			}
		}
	}

	result := make(map[string][]string)
	for ingr, store := range seenOnce {
		result[store] = append(result[store], ingr)
	}
	for _, ingrs := range result {
		sort.Strings(ingrs)
	}
	return result
}
