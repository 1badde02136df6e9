package feature

import (
	"time"

	"golang.org/x/xerrors"

	"github.com/joycex99/russia-housing/tables"
)

const dateLayout = "2006-01-02"

/*
ErrDateFormat signals a timestamp that does not match the strict
year-month-day layout
*/
var ErrDateFormat = xerrors.New("date is not in year-month-day format")

/*
ConvertDate returns the whole days between two ISO year-month-day dates.
ConvertDate(d, d) is 0 and ConvertDate(a, b) == -ConvertDate(b, a).
*/
func ConvertDate(baseDay, currentDay string) (int, error) {
	a, err := time.Parse(dateLayout, baseDay)
	if err != nil {
		return 0, xerrors.Errorf("bad date `%v`: %w", baseDay, ErrDateFormat)
	}
	b, err := time.Parse(dateLayout, currentDay)
	if err != nil {
		return 0, xerrors.Errorf("bad date `%v`: %w", currentDay, ErrDateFormat)
	}
	return int(b.Sub(a).Hours() / 24), nil
}

/*
DateDelta replaces the key field of every record with its day offset from
baseDay. The absolute timestamp becomes a relative integer feature, which
both normalizes scale and keeps the column numeric.
*/
func DateDelta(recs []tables.Record, key, baseDay string) ([]tables.Record, error) {
	out := tables.CloneAll(recs)
	for i, r := range out {
		d, err := ConvertDate(baseDay, r[key].Text())
		if err != nil {
			return nil, xerrors.Errorf("record %d field `%v`: %w", i, key, err)
		}
		r[key] = tables.IntValue(int64(d))
	}
	return out, nil
}
