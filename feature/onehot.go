package feature

import (
	"fmt"

	"golang.org/x/xerrors"

	"github.com/joycex99/russia-housing/tables"
)

/*
ErrLabelNotFound signals a categorical value looked up against a class
list it is not a member of. Not reachable when the class list is derived
from the same records, but the contract stands for reuse with a foreign
class list.
*/
var ErrLabelNotFound = xerrors.New("value is not a member of the class list")

/*
Classes returns the distinct values of key across the whole record
sequence, in first-appearance order. The index assignment is derived
solely from the records passed in: two different subsets can assign
different indices to the same logical category.
*/
func Classes(recs []tables.Record, key string) []string {
	seen := map[string]bool{}
	var classes []string
	for _, r := range recs {
		t := r[key].Text()
		if !seen[t] {
			seen[t] = true
			classes = append(classes, t)
		}
	}
	return classes
}

/*
ClassIndex finds the index of a value in a class list
*/
func ClassIndex(classes []string, v string) (int, error) {
	for i, c := range classes {
		if c == v {
			return i, nil
		}
	}
	return 0, xerrors.Errorf("`%v`: %w", v, ErrLabelNotFound)
}

/*
OneHotEncode replaces each listed categorical key with key_0..key_{n-1}
integer fields, exactly one of them 1, where n is the number of distinct
values of the key across the whole sequence.
*/
func OneHotEncode(recs []tables.Record, keys ...string) ([]tables.Record, error) {
	out := tables.CloneAll(recs)
	for _, key := range keys {
		classes := Classes(recs, key)
		for i, r := range out {
			j, err := ClassIndex(classes, r[key].Text())
			if err != nil {
				return nil, xerrors.Errorf("one-hot record %d key `%v`: %w", i, key, err)
			}
			delete(r, key)
			for c := range classes {
				hot := int64(0)
				if c == j {
					hot = 1
				}
				r[fmt.Sprintf("%s_%d", key, c)] = tables.IntValue(hot)
			}
		}
	}
	return out, nil
}
