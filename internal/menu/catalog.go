package menu

import "sort"

// Catalog is the in-memory index of all listings. It is built once from
// parsed input and never mutated afterward; every analyzer reads it without
// modification.
//
// Store enumeration order is part of the contract: Stores returns store
// identifiers in lexicographic order, so any analysis whose result depends on
// traversal order (first-seen bookkeeping in particular) is reproducible
// across runs.
type Catalog struct {
	stores []string           // sorted lexicographically
	pizzas map[string][]Pizza // store -> identities in input order, duplicates preserved
	names  map[string][]string
	all    map[string]Pizza // distinct identities across all stores, by key
}

// listingKey identifies a (store, identity) pair for name lookups.
func listingKey(store string, p Pizza) string {
	return store + keySep + keySep + p.Key()
}

// BuildCatalog indexes the given listings. An empty input yields an empty
// but usable catalog.
func BuildCatalog(listings []Listing) *Catalog {
	c := &Catalog{
		pizzas: make(map[string][]Pizza),
		names:  make(map[string][]string),
		all:    make(map[string]Pizza),
	}

	for _, l := range listings {
		if _, ok := c.pizzas[l.Store]; !ok {
			c.stores = append(c.stores, l.Store)
		}
		c.pizzas[l.Store] = append(c.pizzas[l.Store], l.Pizza)
		lk := listingKey(l.Store, l.Pizza)
		c.names[lk] = append(c.names[lk], l.Name)
		c.all[l.Pizza.Key()] = l.Pizza
	}
	sort.Strings(c.stores)

	return c
}

// Stores returns all store identifiers in lexicographic order.
func (c *Catalog) Stores() []string {
	out := make([]string, len(c.stores))
	copy(out, c.stores)
	return out
}

// PizzasOf returns every listed identity at the store in input order. The
// same identity recurs once per listing, so a recipe sold under two names
// appears twice.
func (c *Catalog) PizzasOf(store string) []Pizza {
	return c.pizzas[store]
}

// DistinctPizzasOf returns each identity listed at the store once, in order
// of first occurrence.
func (c *Catalog) DistinctPizzasOf(store string) []Pizza {
	seen := make(map[string]struct{})
	var out []Pizza
	for _, p := range c.pizzas[store] {
		if _, ok := seen[p.Key()]; ok {
			continue
		}
		seen[p.Key()] = struct{}{}
		out = append(out, p)
	}
	return out
}

// NamesOf returns the names the identity is sold under at the store, in
// insertion order. The result is nil if the identity is not listed there.
func (c *Catalog) NamesOf(store string, p Pizza) []string {
	return c.names[listingKey(store, p)]
}

// AllPizzas returns the distinct identities across the whole catalog, sorted
// by canonical key for deterministic iteration.
func (c *Catalog) AllPizzas() []Pizza {
	keys := make([]string, 0, len(c.all))
	for k := range c.all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Pizza, len(keys))
	for i, k := range keys {
		out[i] = c.all[k]
	}
	return out
}

// Contains reports whether the identity was observed anywhere in the catalog.
func (c *Catalog) Contains(p Pizza) bool {
	_, ok := c.all[p.Key()]
	return ok
}

// Occurrences returns the total number of listings catalog-wide that carry
// the identity, counting every duplicate name at every store.
func (c *Catalog) Occurrences(p Pizza) int {
	n := 0
	for _, store := range c.stores {
		n += len(c.names[listingKey(store, p)])
	}
	return n
}

// TotalListings returns the number of listings across all stores.
func (c *Catalog) TotalListings() int {
	n := 0
	for _, pizzas := range c.pizzas {
		n += len(pizzas)
	}
	return n
}

// AllIngredients returns every ingredient observed anywhere, sorted.
func (c *Catalog) AllIngredients() []string {
	seen := make(map[string]struct{})
	for _, p := range c.all {
		for _, ingr := range p.Ingredients() {
			seen[ingr] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for ingr := range seen {
		out = append(out, ingr)
	}
	sort.Strings(out)
	return out
}

// IsEmpty reports whether the catalog holds no listings at all.
func (c *Catalog) IsEmpty() bool {
	return len(c.stores) == 0
}
