package tables

import (
	"strconv"
)

/*
Kind discriminates the scalar kinds a cell can hold after interpretation
*/
type Kind int

const (
	String Kind = iota
	Int
	Float
	Missing
)

/*
NAToken is the distinguished marker the source data uses for absent values
*/
const NAToken = "NA"

/*
Value is the result of interpreting one CSV cell. It is an explicit
parse-result type: a cell is an integer, a float, a missing marker, or
falls back to its raw string. Downstream code switches on Kind instead
of catching a conversion error.
*/
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

func IntValue(i int64) Value     { return Value{kind: Int, i: i} }
func FloatValue(f float64) Value { return Value{kind: Float, f: f} }
func StringValue(s string) Value { return Value{kind: String, s: s} }
func NA() Value                  { return Value{kind: Missing} }

/*
ParseValue interprets a raw cell. The NA token maps to the missing marker,
then integer and float literals are tried in that order, and anything else
keeps its raw text.
*/
func ParseValue(cell string) Value {
	if cell == NAToken {
		return NA()
	}
	if i, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return IntValue(i)
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return FloatValue(f)
	}
	return StringValue(cell)
}

func (v Value) Kind() Kind      { return v.kind }
func (v Value) IsMissing() bool { return v.kind == Missing }

/*
Float returns the numeric content promoted to float64 and whether the
value is numeric at all
*/
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case Int:
		return float64(v.i), true
	case Float:
		return v.f, true
	}
	return 0, false
}

/*
Text returns the canonical text form of the value. Missing values
render as the NA token.
*/
func (v Value) Text() string {
	switch v.kind {
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Float:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case Missing:
		return NAToken
	}
	return v.s
}

/*
Equal compares two values by kind and content
*/
func (v Value) Equal(o Value) bool { return v == o }
