package tables

import "sort"

/*
Record holds one data point's fields at some stage of the pipeline.
Transformations never mutate a record in place; they clone and produce
a new sequence.
*/
type Record map[string]Value

func (r Record) Clone() Record {
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

/*
Keys returns the record field names in deterministic (sorted) order
*/
func (r Record) Keys() []string {
	ks := make([]string, 0, len(r))
	for k := range r {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

/*
CloneAll clones a record sequence field by field
*/
func CloneAll(recs []Record) []Record {
	out := make([]Record, len(recs))
	for i, r := range recs {
		out[i] = r.Clone()
	}
	return out
}
