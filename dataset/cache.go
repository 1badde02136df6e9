package dataset

import (
	"database/sql"
	"encoding/json"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"go-ml.dev/pkg/zorros"
)

/*
HasCache reports whether an assembled-dataset cache exists at path
*/
func HasCache(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

/*
SaveCache persists an assembled dataset into a SQLite file so later runs
can skip re-parsing and re-encoding the source CSV
*/
func SaveCache(path string, ds *Dataset) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return zorros.Wrapf(err, "failed to open dataset cache `%v`: %v", path, err.Error())
	}
	defer db.Close()
	tx, err := db.Begin()
	if err != nil {
		return zorros.Trace(err)
	}
	defer tx.Rollback()
	for _, q := range []string{
		`drop table if exists meta`,
		`drop table if exists examples`,
		`create table meta (names text not null)`,
		`create table examples (id integer primary key, label real not null, features text not null)`,
	} {
		if _, err = tx.Exec(q); err != nil {
			return zorros.Trace(err)
		}
	}
	names, _ := json.Marshal(ds.Names)
	if _, err = tx.Exec(`insert into meta (names) values (?)`, string(names)); err != nil {
		return zorros.Trace(err)
	}
	ins, err := tx.Prepare(`insert into examples (id, label, features) values (?, ?, ?)`)
	if err != nil {
		return zorros.Trace(err)
	}
	defer ins.Close()
	for i, e := range ds.Examples {
		x, _ := json.Marshal(e.Features)
		if _, err = ins.Exec(i, e.Label, string(x)); err != nil {
			return zorros.Trace(err)
		}
	}
	if err = tx.Commit(); err != nil {
		return zorros.Trace(err)
	}
	return nil
}

/*
LoadCache restores an assembled dataset from a SQLite cache file,
preserving the original example order
*/
func LoadCache(path string) (*Dataset, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, zorros.Wrapf(err, "failed to open dataset cache `%v`: %v", path, err.Error())
	}
	defer db.Close()
	ds := &Dataset{}
	var names string
	if err = db.QueryRow(`select names from meta`).Scan(&names); err != nil {
		return nil, zorros.Trace(err)
	}
	if err = json.Unmarshal([]byte(names), &ds.Names); err != nil {
		return nil, zorros.Trace(err)
	}
	rows, err := db.Query(`select label, features from examples order by id`)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	defer rows.Close()
	for rows.Next() {
		var e Example
		var x string
		if err = rows.Scan(&e.Label, &x); err != nil {
			return nil, zorros.Trace(err)
		}
		if err = json.Unmarshal([]byte(x), &e.Features); err != nil {
			return nil, zorros.Trace(err)
		}
		ds.Examples = append(ds.Examples, e)
	}
	if err = rows.Err(); err != nil {
		return nil, zorros.Trace(err)
	}
	return ds, nil
}
