package feature

import (
	"sort"

	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/stat"

	"github.com/joycex99/russia-housing/tables"
)

/*
ErrNoObservations signals a feature whose every value is missing, leaving
no data to compute a mean from. Surfaced instead of silently producing
NaN.
*/
var ErrNoObservations = xerrors.New("feature has no observed values")

/*
ImputeMissing substitutes each missing feature value with the arithmetic
mean of the feature's non-missing values across the whole sequence.
Integer/float mixes promote to float. Must run on records the label has
already been split off from; labels are never imputed.
*/
func ImputeMissing(recs []tables.Record) ([]tables.Record, error) {
	out := tables.CloneAll(recs)
	for _, key := range keyUnion(recs) {
		holes := 0
		var xs []float64
		for _, r := range recs {
			v := r[key]
			if v.IsMissing() {
				holes++
				continue
			}
			if f, ok := v.Float(); ok {
				xs = append(xs, f)
			}
		}
		if holes == 0 {
			continue
		}
		if len(xs) == 0 {
			return nil, xerrors.Errorf("feature `%v`: %w", key, ErrNoObservations)
		}
		mean := tables.FloatValue(stat.Mean(xs, nil))
		for _, r := range out {
			if r[key].IsMissing() {
				r[key] = mean
			}
		}
	}
	return out, nil
}

func keyUnion(recs []tables.Record) []string {
	seen := map[string]bool{}
	var keys []string
	for _, r := range recs {
		for k := range r {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys
}
