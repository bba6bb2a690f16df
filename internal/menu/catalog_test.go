package menu

import (
	"reflect"
	"testing"
)

func TestBuildCatalogGrouping(t *testing.T) {
	margherita := NewPizza([]string{"tomato", "mozzarella"})
	hawaiian := NewPizza([]string{"ham", "pineapple", "mozzarella"})

	cat := BuildCatalog([]Listing{
		{Store: "b.txt", Name: "hawaiian", Pizza: hawaiian},
		{Store: "a.txt", Name: "margherita", Pizza: margherita},
		{Store: "a.txt", Name: "margarita", Pizza: margherita},
	})

	// Lexicographic store order regardless of input order.
	if got := cat.Stores(); !reflect.DeepEqual(got, []string{"a.txt", "b.txt"}) {
		t.Errorf("Stores() = %v, want [a.txt b.txt]", got)
	}

	// Duplicate in-store listings of the same recipe are preserved.
	if got := len(cat.PizzasOf("a.txt")); got != 2 {
		t.Errorf("PizzasOf(a.txt) has %d entries, want 2", got)
	}
	if got := len(cat.DistinctPizzasOf("a.txt")); got != 1 {
		t.Errorf("DistinctPizzasOf(a.txt) has %d entries, want 1", got)
	}

	// Names in insertion order.
	names := cat.NamesOf("a.txt", margherita)
	if !reflect.DeepEqual(names, []string{"margherita", "margarita"}) {
		t.Errorf("NamesOf = %v, want [margherita margarita]", names)
	}

	// Two distinct recipes overall, despite three listings.
	if got := len(cat.AllPizzas()); got != 2 {
		t.Errorf("AllPizzas() has %d entries, want 2", got)
	}
	if got := cat.TotalListings(); got != 3 {
		t.Errorf("TotalListings() = %d, want 3", got)
	}
}

func TestCatalogOccurrences(t *testing.T) {
	p := NewPizza([]string{"tomato"})
	cat := BuildCatalog([]Listing{
		{Store: "a.txt", Name: "rossa", Pizza: p},
		{Store: "a.txt", Name: "red", Pizza: p},
		{Store: "b.txt", Name: "tomato pie", Pizza: p},
	})

	if got := cat.Occurrences(p); got != 3 {
		t.Errorf("Occurrences = %d, want 3", got)
	}
	if got := cat.Occurrences(NewPizza([]string{"ham"})); got != 0 {
		t.Errorf("Occurrences of unseen pizza = %d, want 0", got)
	}
}

func TestCatalogAllIngredients(t *testing.T) {
	cat := BuildCatalog([]Listing{
		{Store: "a.txt", Name: "margherita", Pizza: NewPizza([]string{"tomato", "mozzarella"})},
		{Store: "b.txt", Name: "hawaiian", Pizza: NewPizza([]string{"ham", "pineapple", "mozzarella"})},
	})

	want := []string{"ham", "mozzarella", "pineapple", "tomato"}
	if got := cat.AllIngredients(); !reflect.DeepEqual(got, want) {
		t.Errorf("AllIngredients() = %v, want %v", got, want)
	}
}

func TestEmptyCatalog(t *testing.T) {
	cat := BuildCatalog(nil)
	if !cat.IsEmpty() {
		t.Errorf("expected empty catalog")
	}
	if got := len(cat.Stores()); got != 0 {
		t.Errorf("Stores() on empty catalog has %d entries", got)
	}
	if got := len(cat.AllPizzas()); got != 0 {
		t.Errorf("AllPizzas() on empty catalog has %d entries", got)
	}
}
