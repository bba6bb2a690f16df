package analyzer

import (
	"sort"

	"github.com/sornas/pizzagami/internal/menu"
)

// SameThings finds the two kinds of menu aliasing across the whole catalog:
// names sold with more than one distinct recipe, and recipes sold under more
// than one name. Both results are sorted (by name and by recipe key) and
// their inner lists are deterministic.
func SameThings(cat *menu.Catalog) ([]NameCollision, []RecipeCollision) {
	// byName maps each name to its identity keys, byRecipe the reverse.
	byName := make(map[string]map[string]struct{})
	byRecipe := make(map[string]map[string]struct{})

	for _, store := range cat.Stores() {
		for _, pizza := range cat.DistinctPizzasOf(store) {
			for _, name := range cat.NamesOf(store, pizza) {
				if byName[name] == nil {
					byName[name] = make(map[string]struct{})
				}
				byName[name][pizza.Key()] = struct{}{}

				k := pizza.Key()
				if byRecipe[k] == nil {
					byRecipe[k] = make(map[string]struct{})
				}
				byRecipe[k][name] = struct{}{}
			}
		}
	}

	var names []NameCollision
	for name, keys := range byName {
		if len(keys) < 2 {
			continue
		}
		nc := NameCollision{Name: name}
		for k := range keys {
			nc.Pizzas = append(nc.Pizzas, menu.PizzaFromKey(k))
		}
		sort.Slice(nc.Pizzas, func(i, j int) bool {
			return nc.Pizzas[i].Key() < nc.Pizzas[j].Key()
		})
		names = append(names, nc)
	}
	sort.Slice(names, func(i, j int) bool { return names[i].Name < names[j].Name })

	var recipes []RecipeCollision
	for k, aliases := range byRecipe {
		if len(aliases) < 2 {
			continue
		}
		rc := RecipeCollision{Pizza: menu.PizzaFromKey(k)}
		for name := range aliases {
			rc.Names = append(rc.Names, name)
		}
		sort.Strings(rc.Names)
		recipes = append(recipes, rc)
	}
	sort.Slice(recipes, func(i, j int) bool {
		return recipes[i].Pizza.Key() < recipes[j].Pizza.Key()
	})

	return names, recipes
}
