package analyzer

import "github.com/sornas/pizzagami/internal/menu"

// Pizzagami detects globally unique recipes: a pizza identity observed
// exactly once across the entire catalog, counting every duplicate name at
// every store. Uniqueness is occurrence uniqueness, not store exclusivity; a
// recipe listed twice at the same store under two names is not pizzagami.
type Pizzagami struct {
	occurrences map[string]int
	rankIndex   map[string]int // ingredient -> 0-based position in the common rank
	byStore     []StorePizzagami
}

// NewPizzagami classifies the catalog against a fixed common-ingredient rank
// list. The rank list must come from a FrequencyCounter built over the same
// catalog, with duplicate weighting matching the caller's configuration. The
// catalog is not mutated.
func NewPizzagami(cat *menu.Catalog, commonRank []string) *Pizzagami {
	pg := &Pizzagami{
		occurrences: make(map[string]int),
		rankIndex:   make(map[string]int, len(commonRank)),
	}
	for i, ingr := range commonRank {
		pg.rankIndex[ingr] = i
	}

	for _, store := range cat.Stores() {
		for _, pizza := range cat.DistinctPizzasOf(store) {
			pg.occurrences[pizza.Key()] += len(cat.NamesOf(store, pizza))
		}
	}

	for _, store := range cat.Stores() {
		sp := StorePizzagami{
			Store:    store,
			MenuSize: len(cat.PizzasOf(store)),
		}
		for _, pizza := range cat.DistinctPizzasOf(store) {
			if !pg.IsPizzagami(pizza) {
				continue
			}
			sp.Entries = append(sp.Entries, PizzagamiEntry{
				Pizza:       pizza,
				Names:       cat.NamesOf(store, pizza),
				CommonLevel: pg.commonLevel(pizza),
			})
		}
		pg.byStore = append(pg.byStore, sp)
	}

	return pg
}

// commonLevel returns the highest rank index among the pizza's ingredients
// when every ingredient is within the common rank list, or -1 otherwise. The
// max-index ingredient is the bottleneck: the least common ingredient still
// inside the global top-N. A pizza with no ingredients has no bottleneck and
// reports -1.
func (pg *Pizzagami) commonLevel(pizza menu.Pizza) int {
	if pizza.IsEmpty() {
		return -1
	}
	level := -1
	for _, ingr := range pizza.Ingredients() {
		idx, ok := pg.rankIndex[ingr]
		if !ok {
			return -1
		}
		if idx > level {
			level = idx
		}
	}
	return level
}

// Occurrences returns the number of listings catalog-wide carrying the
// identity.
func (pg *Pizzagami) Occurrences(pizza menu.Pizza) int {
	return pg.occurrences[pizza.Key()]
}

// IsPizzagami reports whether the identity was observed exactly once across
// the whole catalog.
func (pg *Pizzagami) IsPizzagami(pizza menu.Pizza) bool {
	return pg.occurrences[pizza.Key()] == 1
}

// ByStore returns the per-store pizzagami groups in the catalog's store
// order. Stores without pizzagami are included with an empty entry list.
func (pg *Pizzagami) ByStore() []StorePizzagami {
	return pg.byStore
}

// IngredientCommonCount returns the number of pizzagami whose ingredients all
// sit within the common rank list.
func (pg *Pizzagami) IngredientCommonCount() int {
	n := 0
	for _, sp := range pg.byStore {
		for _, e := range sp.Entries {
			if e.CommonLevel >= 0 {
				n++
			}
		}
	}
	return n
}

// LevelHistogram returns, for each rank index 0..size-1, how many pizzagami
// have that exact commonness level. Size is the length of the rank list the
// classifier was built with.
func (pg *Pizzagami) LevelHistogram(size int) []int {
	hist := make([]int, size)
	for _, sp := range pg.byStore {
		for _, e := range sp.Entries {
			if e.CommonLevel >= 0 && e.CommonLevel < size {
				hist[e.CommonLevel]++
			}
		}
	}
	return hist
}

// ScatterPoints returns one point per store: menu size against the fraction
// of its listings that are pizzagami. Stores with empty menus are skipped to
// keep the ratio well defined.
func (pg *Pizzagami) ScatterPoints() []StorePoint {
	var points []StorePoint
	for _, sp := range pg.byStore {
		if sp.MenuSize == 0 {
			continue
		}
		points = append(points, StorePoint{
			Store:          menu.StoreDisplayName(sp.Store),
			MenuSize:       sp.MenuSize,
			PizzagamiRatio: float64(len(sp.Entries)) / float64(sp.MenuSize),
		})
	}
	return points
}
