package dataset

import (
	"golang.org/x/xerrors"

	"go-ml.dev/pkg/zorros"

	"github.com/joycex99/russia-housing/feature"
	"github.com/joycex99/russia-housing/tables"
)

/*
ErrNoDateBase signals that the first record lacks the timestamp used to
anchor date conversion
*/
var ErrNoDateBase = xerrors.New("first record has no timestamp to anchor date conversion")

/*
BinaryRule binarizes one key against its positive value
*/
type BinaryRule struct {
	Key      string
	Positive string
}

/*
Pipeline declares the fixed transformation order applied to raw records:
drop keys, date to day offset, one-hot categoricals, binarize yes/no
fields, split the label off, impute missing features, vectorize. One-hot
vocabularies are always derived before any train/test split so both
sides share index assignments.
*/
type Pipeline struct {
	Drop        []string     // fields removed up front (row ids)
	DateKey     string       // timestamp field, converted to day offsets from the first record
	Categorical []string     // one-hot encoded fields
	Binary      []BinaryRule // positive-value encoded fields
	Label       string       // regression target, split off before imputation
}

/*
Assemble runs the pipeline over a raw record sequence and rejoins the
transformed features with their labels into examples. Labels stay
positionally aligned with their source records through every stage.
*/
func (p Pipeline) Assemble(recs []tables.Record) (*Dataset, error) {
	if len(recs) == 0 {
		return nil, zorros.Errorf("cannot assemble an empty record sequence")
	}
	out := tables.CloneAll(recs)
	for _, r := range out {
		for _, k := range p.Drop {
			delete(r, k)
		}
	}
	var err error
	if p.DateKey != "" {
		base, ok := out[0][p.DateKey]
		if !ok || base.IsMissing() {
			return nil, zorros.Trace(ErrNoDateBase)
		}
		if out, err = feature.DateDelta(out, p.DateKey, base.Text()); err != nil {
			return nil, zorros.Trace(err)
		}
	}
	if out, err = feature.OneHotEncode(out, p.Categorical...); err != nil {
		return nil, zorros.Trace(err)
	}
	for _, b := range p.Binary {
		out = feature.Binarize(out, []string{b.Key}, b.Positive)
	}
	labels, err := p.splitLabels(out)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	if out, err = feature.ImputeMissing(out); err != nil {
		return nil, zorros.Trace(err)
	}
	return vectorize(out, labels)
}

func (p Pipeline) splitLabels(recs []tables.Record) ([]float64, error) {
	labels := make([]float64, len(recs))
	for i, r := range recs {
		v, ok := r[p.Label]
		if !ok {
			return nil, zorros.Errorf("record %d has no label field `%v`", i, p.Label)
		}
		f, ok := v.Float()
		if !ok {
			return nil, zorros.Errorf("record %d label `%v` is not numeric: `%v`", i, p.Label, v.Text())
		}
		labels[i] = f
		delete(r, p.Label)
	}
	return labels, nil
}

func vectorize(recs []tables.Record, labels []float64) (*Dataset, error) {
	names := recs[0].Keys()
	examples := make([]Example, len(recs))
	for i, r := range recs {
		if len(r) != len(names) {
			return nil, zorros.Errorf("record %d has %d features, want %d", i, len(r), len(names))
		}
		x := make([]float64, len(names))
		for j, k := range names {
			f, ok := r[k].Float()
			if !ok {
				return nil, zorros.Errorf("record %d feature `%v` is not numeric: `%v`", i, k, r[k].Text())
			}
			x[j] = f
		}
		examples[i] = Example{Features: x, Label: labels[i]}
	}
	return &Dataset{Names: names, Examples: examples}, nil
}
