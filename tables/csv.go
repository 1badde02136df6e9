package tables

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
	"go-ml.dev/pkg/zorros"
)

/*
ReadCSV loads a delimited file into an ordered record sequence. The header
row supplies the field names; every following row becomes one Record with
each cell interpreted by ParseValue. Files ending in .xz are decompressed
transparently. The file handle is released before return on every path.
*/
func ReadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, zorros.Wrapf(err, "failed to open dataset file `%v`: %v", path, err.Error())
	}
	defer f.Close()
	var rd io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		if rd, err = xz.NewReader(f); err != nil {
			return nil, zorros.Wrapf(err, "failed to open xz stream `%v`: %v", path, err.Error())
		}
	}
	recs, err := DecodeCSV(rd)
	if err != nil {
		return nil, zorros.Wrapf(err, "failed to read dataset `%v`: %v", path, err.Error())
	}
	return recs, nil
}

/*
DecodeCSV reads records from an open CSV stream
*/
func DecodeCSV(rd io.Reader) ([]Record, error) {
	r := csv.NewReader(rd)
	header, err := r.Read()
	if err != nil {
		return nil, zorros.Wrapf(err, "failed to read CSV header: %v", err.Error())
	}
	var recs []Record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, zorros.Wrapf(err, "failed to read CSV row: %v", err.Error())
		}
		rec := make(Record, len(header))
		for i, name := range header {
			rec[name] = ParseValue(row[i])
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
