package store

import "time"

// Run is one exported analysis snapshot.
type Run struct {
	ID             string
	CreatedAt      time.Time
	MenuDir        string
	Stores         int
	Listings       int
	DistinctPizzas int
	Ingredients    int
	Feasible       int
	Unseen         int
	Coverage       float64
}

// PizzagamiRow is one pizzagami listing within a run.
type PizzagamiRow struct {
	Store       string
	Name        string
	Ingredients string // comma-separated, sorted
	CommonLevel int    // -1 when not ingredient-common
}

// ExclusiveRow is one store-exclusive ingredient within a run.
type ExclusiveRow struct {
	Store      string
	Ingredient string
}

// PairingRow is one reported co-occurrence probability within a run.
type PairingRow struct {
	Prob         float64
	First        string
	FirstSupport int
	Second       string
	SecondCount  int
}
