// Package bench - SQLite results recorder.
//
// Persisting outcomes lets long-running boxes accumulate a history of
// generator behavior across suite invocations (e.g. spotting a library
// generator whose averaged coverage drifts between versions). The schema
// is one flat table; queries stay in plain SQL.
package bench

import (
	"database/sql"

	// Registers the "sqlite3" driver with database/sql.
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const createRunsTable = `
CREATE TABLE IF NOT EXISTS runs (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	recorded_at  TEXT    NOT NULL DEFAULT (datetime('now')),
	case_name    TEXT    NOT NULL,
	generator    TEXT    NOT NULL,
	elements     INTEGER NOT NULL,
	runs         INTEGER NOT NULL,
	cycle_length INTEGER NOT NULL,
	coverage     REAL    NOT NULL,
	min_coverage REAL    NOT NULL,
	max_coverage REAL    NOT NULL,
	terminal     INTEGER NOT NULL
)`

const insertRun = `
INSERT INTO runs
	(case_name, generator, elements, runs, cycle_length, coverage, min_coverage, max_coverage, terminal)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

// Recorder appends outcomes to a SQLite database.
type Recorder struct {
	db *sql.DB
}

// OpenRecorder opens (creating if needed) the database at path and ensures
// the runs table exists.
func OpenRecorder(path string) (*Recorder, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open results db %s", path)
	}
	if _, err = db.Exec(createRunsTable); err != nil {
		_ = db.Close()

		return nil, errors.Wrapf(err, "init results db %s", path)
	}

	return &Recorder{db: db}, nil
}

// Record appends one outcome.
func (r *Recorder) Record(o Outcome) error {
	_, err := r.db.Exec(insertRun,
		o.Case, o.Generator, o.Elems, o.Runs,
		o.CycleLength, o.Coverage, o.MinCoverage, o.MaxCoverage, o.Terminal)

	return errors.Wrapf(err, "record case %q", o.Case)
}

// Close releases the underlying database handle.
func (r *Recorder) Close() error {
	return r.db.Close()
}
