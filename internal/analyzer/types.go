package analyzer

import "github.com/sornas/pizzagami/internal/menu"

// IngredientCount pairs an ingredient with its occurrence count under one of
// the two weighting schemes.
type IngredientCount struct {
	Ingredient string
	Count      int
}

// PizzagamiEntry is one globally unique recipe at a store.
type PizzagamiEntry struct {
	Pizza menu.Pizza
	Names []string // names at this store, insertion order
	// CommonLevel is the 0-based rank index of the pizza's least common
	// ingredient within the global top-N list, or -1 when any ingredient
	// falls outside that list.
	CommonLevel int
}

// StorePizzagami groups the pizzagami found at a single store.
type StorePizzagami struct {
	Store    string
	MenuSize int // total listings at the store, duplicates included
	Entries  []PizzagamiEntry
}

// Pairing is one conditional-probability observation: of the distinct pizzas
// containing First, the fraction that also contain Second.
type Pairing struct {
	Prob         float64
	First        string
	FirstSupport int // distinct pizzas containing First
	Second       string
	SecondCount  int // of those, pizzas also containing Second
}

// FeasibilityReport summarizes the downward closure of all observed recipes.
type FeasibilityReport struct {
	FeasibleCount int
	UnseenCount   int
	Coverage      float64 // percent of feasible pizzas actually observed
}

// NameCollision is a pizza name sold with more than one distinct recipe.
type NameCollision struct {
	Name   string
	Pizzas []menu.Pizza
}

// RecipeCollision is a recipe sold under more than one name.
type RecipeCollision struct {
	Pizza menu.Pizza
	Names []string
}

// StorePoint is one store's coordinates in the menu-size versus
// pizzagami-ratio scatter: how large the menu is and what fraction of its
// listings are globally unique.
type StorePoint struct {
	Store          string
	MenuSize       int
	PizzagamiRatio float64
}
