package feature

import (
	"testing"

	"golang.org/x/xerrors"
	"gotest.tools/assert"

	"github.com/joycex99/russia-housing/tables"
)

func TestConvertDate(t *testing.T) {
	d, err := ConvertDate("2011-08-20", "2011-08-27")
	assert.NilError(t, err)
	assert.Equal(t, d, 7)

	d, err = ConvertDate("2011-08-20", "2011-08-20")
	assert.NilError(t, err)
	assert.Equal(t, d, 0)

	a, err := ConvertDate("2012-01-01", "2011-12-31")
	assert.NilError(t, err)
	b, err := ConvertDate("2011-12-31", "2012-01-01")
	assert.NilError(t, err)
	assert.Equal(t, a, -b)
}

func TestConvertDateFormat(t *testing.T) {
	_, err := ConvertDate("20.08.2011", "2011-08-27")
	assert.Assert(t, xerrors.Is(err, ErrDateFormat))
	_, err = ConvertDate("2011-08-20", "tomorrow")
	assert.Assert(t, xerrors.Is(err, ErrDateFormat))
}

func TestDateDelta(t *testing.T) {
	recs := []tables.Record{
		{"timestamp": tables.StringValue("2011-08-20")},
		{"timestamp": tables.StringValue("2011-09-19")},
	}
	out, err := DateDelta(recs, "timestamp", "2011-08-20")
	assert.NilError(t, err)
	assert.Equal(t, out[0]["timestamp"], tables.IntValue(0))
	assert.Equal(t, out[1]["timestamp"], tables.IntValue(30))
	// originals untouched
	assert.Equal(t, recs[0]["timestamp"], tables.StringValue("2011-08-20"))
}

func TestDateDeltaMissing(t *testing.T) {
	recs := []tables.Record{{"timestamp": tables.NA()}}
	_, err := DateDelta(recs, "timestamp", "2011-08-20")
	assert.Assert(t, xerrors.Is(err, ErrDateFormat))
}
