package menu

import (
	"sort"
	"strings"
)

// keySep separates ingredients inside a canonical key. It cannot occur in an
// ingredient because the parser splits ingredient lists on commas and trims
// whitespace.
const keySep = "\x1f"

// Pizza is the canonical identity of a pizza: its ingredient set. Two pizzas
// are the same iff their ingredient sets are equal, regardless of the name
// they are sold under or the store that sells them. The zero value is the
// empty pizza (no listed ingredients), which is a valid identity.
type Pizza struct {
	ingredients []string // sorted ascending, duplicate-free
}

// NewPizza builds a canonical identity from a raw ingredient list. The input
// need not be deduplicated or ordered; empty tokens are dropped.
func NewPizza(ingredients []string) Pizza {
	if len(ingredients) == 0 {
		return Pizza{}
	}

	seen := make(map[string]struct{}, len(ingredients))
	canonical := make([]string, 0, len(ingredients))
	for _, ingr := range ingredients {
		ingr = strings.TrimSpace(ingr)
		if ingr == "" {
			continue
		}
		if _, ok := seen[ingr]; ok {
			continue
		}
		seen[ingr] = struct{}{}
		canonical = append(canonical, ingr)
	}
	sort.Strings(canonical)

	return Pizza{ingredients: canonical}
}

// Key returns an order-independent, collision-free representation of the
// identity, suitable as a map key. The empty pizza's key is the empty string.
func (p Pizza) Key() string {
	return strings.Join(p.ingredients, keySep)
}

// PizzaFromKey rebuilds an identity from a key produced by Key. The key is
// trusted to be canonical already.
func PizzaFromKey(key string) Pizza {
	if key == "" {
		return Pizza{}
	}
	return Pizza{ingredients: strings.Split(key, keySep)}
}

// Ingredients returns the ingredients in sorted order. The returned slice is
// a copy; mutating it does not affect the identity.
func (p Pizza) Ingredients() []string {
	out := make([]string, len(p.ingredients))
	copy(out, p.ingredients)
	return out
}

// Size returns the number of distinct ingredients.
func (p Pizza) Size() int {
	return len(p.ingredients)
}

// IsEmpty reports whether the pizza has no ingredients.
func (p Pizza) IsEmpty() bool {
	return len(p.ingredients) == 0
}

// Contains reports whether ingr is one of the pizza's ingredients.
func (p Pizza) Contains(ingr string) bool {
	i := sort.SearchStrings(p.ingredients, ingr)
	return i < len(p.ingredients) && p.ingredients[i] == ingr
}

// Without returns a new identity with ingr removed. If ingr is not present
// the receiver is returned unchanged.
func (p Pizza) Without(ingr string) Pizza {
	i := sort.SearchStrings(p.ingredients, ingr)
	if i >= len(p.ingredients) || p.ingredients[i] != ingr {
		return p
	}
	rest := make([]string, 0, len(p.ingredients)-1)
	rest = append(rest, p.ingredients[:i]...)
	rest = append(rest, p.ingredients[i+1:]...)
	return Pizza{ingredients: rest}
}

// Equal reports whether two identities are the same ingredient set.
func (p Pizza) Equal(o Pizza) bool {
	if len(p.ingredients) != len(o.ingredients) {
		return false
	}
	for i := range p.ingredients {
		if p.ingredients[i] != o.ingredients[i] {
			return false
		}
	}
	return true
}

// String renders the ingredient set as a comma-separated list in sorted
// order, matching how reports display recipes.
func (p Pizza) String() string {
	return strings.Join(p.ingredients, ", ")
}

// Listing is one observed menu entry: a recipe sold under a name at a store.
// Several listings may share the same Pizza identity.
type Listing struct {
	Store string
	Name  string
	Pizza Pizza
}
