package analyzer

import (
	"reflect"
	"testing"

	"github.com/sornas/pizzagami/internal/menu"
)

func TestExclusiveIngredientsBasic(t *testing.T) {
	cat := menu.BuildCatalog([]menu.Listing{
		{Store: "storea.txt", Name: "margherita", Pizza: menu.NewPizza([]string{"tomato", "mozzarella"})},
		{Store: "storeb.txt", Name: "hawaiian", Pizza: menu.NewPizza([]string{"ham", "pineapple", "mozzarella"})},
	})

	exclusive := ExclusiveIngredients(cat)

	if got := exclusive["storea.txt"]; !reflect.DeepEqual(got, []string{"tomato"}) {
		t.Errorf("storea exclusives = %v, want [tomato]", got)
	}
	if got := exclusive["storeb.txt"]; !reflect.DeepEqual(got, []string{"ham", "pineapple"}) {
		t.Errorf("storeb exclusives = %v, want [ham pineapple]", got)
	}

	// Mozzarella appears at both stores and must be exclusive to neither.
	for store, ingrs := range exclusive {
		for _, ingr := range ingrs {
			if ingr == "mozzarella" {
				t.Errorf("mozzarella reported exclusive to %s", store)
			}
		}
	}
}

func TestExclusiveIngredientsMutualExclusivity(t *testing.T) {
	cat := menu.BuildCatalog([]menu.Listing{
		{Store: "a.txt", Name: "one", Pizza: menu.NewPizza([]string{"tomato", "basil"})},
		{Store: "b.txt", Name: "two", Pizza: menu.NewPizza([]string{"tomato", "ham"})},
		{Store: "c.txt", Name: "three", Pizza: menu.NewPizza([]string{"tomato", "olive"})},
	})

	exclusive := ExclusiveIngredients(cat)

	seen := make(map[string]string)
	for store, ingrs := range exclusive {
		for _, ingr := range ingrs {
			if prev, ok := seen[ingr]; ok {
				t.Errorf("%s exclusive to both %s and %s", ingr, prev, store)
			}
			seen[ingr] = store
		}
	}
}

func TestExclusiveIngredientsThirdStoreStaysDemoted(t *testing.T) {
	// Tomato is seen at a, demoted at b, and must not be re-admitted by c
	// or by a later repeat at a single store.
	cat := menu.BuildCatalog([]menu.Listing{
		{Store: "a.txt", Name: "one", Pizza: menu.NewPizza([]string{"tomato"})},
		{Store: "b.txt", Name: "two", Pizza: menu.NewPizza([]string{"tomato"})},
		{Store: "c.txt", Name: "three", Pizza: menu.NewPizza([]string{"tomato"})},
		{Store: "c.txt", Name: "four", Pizza: menu.NewPizza([]string{"tomato", "basil"})},
	})

	exclusive := ExclusiveIngredients(cat)

	for store, ingrs := range exclusive {
		for _, ingr := range ingrs {
			if ingr == "tomato" {
				t.Errorf("tomato re-admitted as exclusive to %s", store)
			}
		}
	}
	if got := exclusive["c.txt"]; !reflect.DeepEqual(got, []string{"basil"}) {
		t.Errorf("c exclusives = %v, want [basil]", got)
	}
}

func TestExclusiveIngredientsSameStoreRepeats(t *testing.T) {
	// Repeats at the same store never demote.
	cat := menu.BuildCatalog([]menu.Listing{
		{Store: "a.txt", Name: "one", Pizza: menu.NewPizza([]string{"tomato"})},
		{Store: "a.txt", Name: "two", Pizza: menu.NewPizza([]string{"tomato", "basil"})},
	})

	exclusive := ExclusiveIngredients(cat)
	if got := exclusive["a.txt"]; !reflect.DeepEqual(got, []string{"basil", "tomato"}) {
		t.Errorf("a exclusives = %v, want [basil tomato]", got)
	}
}
