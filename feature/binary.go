package feature

import (
	"github.com/joycex99/russia-housing/tables"
)

/*
Binarize replaces the listed keys with 1 where the value equals positive
and 0 everywhere else, missing values included. Values that are already
the integers 0 or 1 pass through unchanged, so repeated application with
the same arguments is stable.
*/
func Binarize(recs []tables.Record, keys []string, positive string) []tables.Record {
	out := tables.CloneAll(recs)
	for _, key := range keys {
		for _, r := range out {
			v, ok := r[key]
			if !ok {
				continue
			}
			if v.Equal(tables.IntValue(0)) || v.Equal(tables.IntValue(1)) {
				continue
			}
			if v.Text() == positive {
				r[key] = tables.IntValue(1)
			} else {
				r[key] = tables.IntValue(0)
			}
		}
	}
	return out
}
