/*
Package housing wires the Sberbank real-estate transaction CSV into the
feature pipeline: row ids dropped, the transaction timestamp converted
to a day offset from the first record, district and ecology columns
one-hot encoded, the yes/no district flags and the product type mapped
to 0/1, and price_doc split off as the regression label.
*/
package housing

import (
	"sync"

	"go-ml.dev/pkg/zorros"
	"go-ml.dev/pkg/zorros/zlog"

	"github.com/joycex99/russia-housing/dataset"
	"github.com/joycex99/russia-housing/tables"
)

const (
	DateKey  = "timestamp"
	Label    = "price_doc"
	Positive = "Investment" // product_type value encoded as 1
)

var (
	DropKeys    = []string{"id"}
	Categorical = []string{"sub_area", "ecology"}

	// yes/no district flags binarized against "yes"
	YesNo = []string{
		"culture_objects_top_25",
		"thermal_power_plant_raion",
		"incineration_raion",
		"oil_chemistry_raion",
		"radiation_raion",
		"railroad_terminal_raion",
		"big_market_raion",
		"nuclear_reactor_raion",
		"detention_facility_raion",
		"water_1line",
		"big_road1_1line",
		"railroad_1line",
	}
)

/*
Pipeline is the fixed transformation order for the housing data
*/
func Pipeline() dataset.Pipeline {
	rules := []dataset.BinaryRule{{Key: "product_type", Positive: Positive}}
	for _, k := range YesNo {
		rules = append(rules, dataset.BinaryRule{Key: k, Positive: "yes"})
	}
	return dataset.Pipeline{
		Drop:        DropKeys,
		DateKey:     DateKey,
		Categorical: Categorical,
		Binary:      rules,
		Label:       Label,
	}
}

/*
Source owns the parsed dataset. The assembly runs once on first access
and the result is reused for every training run within the process. An
optional SQLite cache skips re-encoding across processes.
*/
type Source struct {
	Path      string // source CSV, .xz accepted
	CachePath string // optional assembled-dataset cache

	once sync.Once
	ds   *dataset.Dataset
	err  error
}

func (s *Source) Dataset() (*dataset.Dataset, error) {
	s.once.Do(func() { s.ds, s.err = s.load() })
	return s.ds, s.err
}

func (s *Source) load() (*dataset.Dataset, error) {
	if s.CachePath != "" && dataset.HasCache(s.CachePath) {
		return dataset.LoadCache(s.CachePath)
	}
	recs, err := tables.ReadCSV(s.Path)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	ds, err := Pipeline().Assemble(recs)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	if s.CachePath != "" {
		if err = dataset.SaveCache(s.CachePath, ds); err != nil {
			zlog.Warning("failed to write dataset cache: " + err.Error())
		}
	}
	return ds, nil
}
