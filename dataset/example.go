package dataset

import (
	"math/rand"
)

/*
Example is one labeled training point, produced only after label
extraction and imputation are both complete. Immutable once constructed.
*/
type Example struct {
	Features []float64
	Label    float64
}

/*
Dataset is the assembled example sequence together with its feature
schema. Examples keep the original record order; position i carries the
label of the same source row as its features.
*/
type Dataset struct {
	Names    []string
	Examples []Example
}

func (d *Dataset) Len() int { return len(d.Examples) }

/*
Width is the encoded feature count, the input width of the network
*/
func (d *Dataset) Width() int { return len(d.Names) }

/*
Split shuffles a copy of the example sequence and cuts off a fixed-size
held-out test slice, returning train and test. Examples stay paired with
their labels through the shuffle.
*/
func (d *Dataset) Split(testSize int, seed int64) (train, test []Example) {
	rnd := rand.New(rand.NewSource(seed))
	shuffled := make([]Example, d.Len())
	for i, j := range rnd.Perm(d.Len()) {
		shuffled[i] = d.Examples[j]
	}
	if testSize > len(shuffled) {
		testSize = len(shuffled)
	}
	return shuffled[testSize:], shuffled[:testSize]
}
