// Package replay persists contagion mechanic events for later inspection
// or replay, mirroring kentwait-contagion's sqlite_logger.go: open one
// database, create one table up front, then stream writes through a
// single prepared statement inside one transaction per emitter lifetime.
// Where the teacher fans a simulation's output across six purpose-built
// tables (one per data kind, `database/sql` + `github.com/mattn/go-sqlite3`),
// this package collapses the contagion mechanic's narrower event surface
// into a single `events` table keyed by a ksuid per row. A ksuid sorts
// by its creation second only, so rows written within the same second
// are not in emission order by id; SQLite's implicit rowid, which grows
// with each insert, is what records emission order.
package replay

import (
	"database/sql"
	"encoding/json"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"

	"github.com/kentwait/issun-mechanics/contagion"
)

// SQLiteEmitter is a mechanic.EventEmitter[contagion.Event] that appends
// every event it receives to a SQLite table, one row per Emit call.
type SQLiteEmitter struct {
	db   *sql.DB
	tx   *sql.Tx
	stmt *sql.Stmt
	err  error
}

// OpenSQLiteEmitter opens (creating if absent) the events table at path.
func OpenSQLiteEmitter(path string) (*SQLiteEmitter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "replay: open %s", path)
	}
	const createStmt = `
create table if not exists events (
	id text not null primary key,
	tick integer not null,
	contagion_id text not null,
	node_id text not null,
	kind text not null,
	payload text not null
);`
	if _, err := db.Exec(createStmt); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "replay: create table in %s", path)
	}
	tx, err := db.Begin()
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "replay: begin transaction")
	}
	stmt, err := tx.Prepare("insert into events(id, tick, contagion_id, node_id, kind, payload) values(?, ?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		db.Close()
		return nil, errors.Wrap(err, "replay: prepare insert")
	}
	return &SQLiteEmitter{db: db, tx: tx, stmt: stmt}, nil
}

// Emit implements mechanic.EventEmitter[contagion.Event]. A write failure
// is sticky: it is recorded and surfaced by Close rather than panicking
// mid-tick, since Emit has no error return.
func (e *SQLiteEmitter) Emit(event contagion.Event) {
	if e.err != nil {
		return
	}
	row, marshalErr := toRow(event)
	if marshalErr != nil {
		e.err = marshalErr
		return
	}
	_, err := e.stmt.Exec(ksuid.New().String(), row.tick, row.contagionID, row.nodeID, row.kind, row.payload)
	if err != nil {
		e.err = errors.Wrap(err, "replay: insert event")
	}
}

// Close commits the transaction (or rolls it back if any Emit failed)
// and closes the database. It returns the first error encountered, if
// any.
func (e *SQLiteEmitter) Close() error {
	e.stmt.Close()
	if e.err != nil {
		e.tx.Rollback()
		e.db.Close()
		return e.err
	}
	if err := e.tx.Commit(); err != nil {
		e.db.Close()
		return errors.Wrap(err, "replay: commit")
	}
	return e.db.Close()
}

type row struct {
	tick        uint64
	contagionID string
	nodeID      string
	kind        string
	payload     string
}

func toRow(event contagion.Event) (row, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return row{}, errors.Wrap(err, "replay: marshal event payload")
	}
	r := row{kind: eventKind(event), payload: string(payload)}
	switch e := event.(type) {
	case contagion.InfectionStarted:
		r.tick, r.contagionID, r.nodeID = e.Tick, e.ContagionID, e.NodeID
	case contagion.ProgressionAdvanced:
		r.tick, r.contagionID, r.nodeID = e.Tick, e.ContagionID, e.NodeID
	case contagion.Mutated:
		r.tick, r.contagionID = e.Tick, e.ContagionID
	case contagion.ExtinctBelowThreshold:
		r.tick, r.contagionID = e.Tick, e.ContagionID
	case contagion.Extinct:
		r.tick, r.contagionID = e.Tick, e.ContagionID
	case contagion.Rejected:
		r.tick = e.Tick
	case contagion.PolicyReturnedInvalid:
		r.tick = e.Tick
	}
	return r, nil
}

func eventKind(event contagion.Event) string {
	switch event.(type) {
	case contagion.InfectionStarted:
		return "infection_started"
	case contagion.ProgressionAdvanced:
		return "progression_advanced"
	case contagion.Mutated:
		return "mutated"
	case contagion.ExtinctBelowThreshold:
		return "extinct_below_threshold"
	case contagion.Extinct:
		return "extinct"
	case contagion.Rejected:
		return "rejected"
	case contagion.PolicyReturnedInvalid:
		return "policy_returned_invalid"
	default:
		return "unknown"
	}
}
