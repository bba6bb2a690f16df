package analyzer

import (
	"errors"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sornas/pizzagami/internal/menu"
)

// ErrEmptyCatalog is returned when feasibility is requested for a catalog
// with no observable recipes; the closure of nothing is undefined rather
// than empty.
var ErrEmptyCatalog = errors.New("feasibility requires a non-empty catalog")

// defaultClosureCacheEntries bounds the closure memo. The subset lattice of a
// pizza with k ingredients has 2^k nodes, so a handful of 15-ingredient
// recipes stays well within this; eviction only costs recomputation, never
// correctness, since closures are pure functions of the identity.
const defaultClosureCacheEntries = 1 << 20

// ClosureEngine computes the downward closure of recipe identities: every
// non-empty ingredient subset reachable by deleting ingredients one at a time
// from an observed pizza. Closures are memoized by canonical identity key so
// sub-recipes shared between observed pizzas are expanded once per process.
type ClosureEngine struct {
	memo *lru.Cache[string, []string]
}

// NewClosureEngine creates an engine with the default memo capacity.
func NewClosureEngine() *ClosureEngine {
	// Only fails for a non-positive size.
	cache, _ := lru.New[string, []string](defaultClosureCacheEntries)
	return &ClosureEngine{memo: cache}
}

// closureKeys returns the canonical keys of every pizza in the closure of p,
// including p itself. The empty pizza closes over nothing.
func (e *ClosureEngine) closureKeys(p menu.Pizza) []string {
	if p.IsEmpty() {
		return nil
	}
	if keys, ok := e.memo.Get(p.Key()); ok {
		return keys
	}

	set := map[string]struct{}{p.Key(): {}}
	for _, ingr := range p.Ingredients() {
		for _, k := range e.closureKeys(p.Without(ingr)) {
			set[k] = struct{}{}
		}
	}

	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	e.memo.Add(p.Key(), keys)
	return keys
}

// Closure returns every feasible pizza derivable from p, p included, in
// deterministic key order. Subsets reachable via several deletion paths
// appear once.
func (e *ClosureEngine) Closure(p menu.Pizza) []menu.Pizza {
	keys := e.closureKeys(p)
	out := make([]menu.Pizza, len(keys))
	for i, k := range keys {
		out[i] = menu.PizzaFromKey(k)
	}
	return out
}

// Feasibility unions the closures of every distinct observed recipe and
// compares the result against the observed set. It fails fast on a catalog
// that yields no feasible pizzas at all.
func (e *ClosureEngine) Feasibility(cat *menu.Catalog) (*FeasibilityReport, error) {
	if cat.IsEmpty() {
		return nil, ErrEmptyCatalog
	}

	feasible := make(map[string]struct{})
	for _, pizza := range cat.AllPizzas() {
		for _, k := range e.closureKeys(pizza) {
			feasible[k] = struct{}{}
		}
	}
	if len(feasible) == 0 {
		return nil, ErrEmptyCatalog
	}

	unseen := 0
	for k := range feasible {
		if !cat.Contains(menu.PizzaFromKey(k)) {
			unseen++
		}
	}

	return &FeasibilityReport{
		FeasibleCount: len(feasible),
		UnseenCount:   unseen,
		Coverage:      100 * (1 - float64(unseen)/float64(len(feasible))),
	}, nil
}
