// Package sqlite persists the optional analysis run history in an embedded
// database file. The in-memory session stays authoritative; this log only
// feeds the history endpoint and survives restarts.
package sqlite

import (
	"context"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"coanalyst/domain/analysis"
	"coanalyst/domain/core"
	apperrors "coanalyst/internal/errors"
	"coanalyst/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id           TEXT PRIMARY KEY,
	method       TEXT NOT NULL,
	instructions TEXT NOT NULL DEFAULT '',
	result_type  TEXT NOT NULL,
	summary_json TEXT NOT NULL,
	created_at   TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
`

// History is the sqlite-backed ports.RunHistory
type History struct {
	db *sqlx.DB
}

// Open creates or opens the history database at path and ensures the schema
func Open(path string) (*History, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, apperrors.Wrapf(err, "could not open history database at %s", path)
	}

	// A single writer avoids SQLITE_BUSY on concurrent requests
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, apperrors.Wrap(err, "could not create history schema")
	}

	log.Printf("[History] Opened run history at %s", path)
	return &History{db: db}, nil
}

// runRow is the scan target for the runs table
type runRow struct {
	ID           string    `db:"id"`
	Method       string    `db:"method"`
	Instructions string    `db:"instructions"`
	ResultType   string    `db:"result_type"`
	SummaryJSON  string    `db:"summary_json"`
	CreatedAt    time.Time `db:"created_at"`
}

// Record appends one executed analysis to the log
func (h *History) Record(ctx context.Context, rec ports.RunRecord) error {
	_, err := h.db.ExecContext(ctx,
		`INSERT INTO runs (id, method, instructions, result_type, summary_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(rec.ID), string(rec.Method), rec.Instructions,
		rec.ResultType, rec.SummaryJSON, rec.CreatedAt.Time())
	if err != nil {
		return apperrors.Wrap(err, "could not record analysis run")
	}
	return nil
}

// List returns the most recent runs, newest first
func (h *History) List(ctx context.Context, limit int) ([]ports.RunRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	var rows []runRow
	err := h.db.SelectContext(ctx, &rows,
		`SELECT id, method, instructions, result_type, summary_json, created_at
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "could not list analysis runs")
	}

	records := make([]ports.RunRecord, len(rows))
	for i, row := range rows {
		records[i] = ports.RunRecord{
			ID:           core.RunID(row.ID),
			Method:       analysis.Method(row.Method),
			Instructions: row.Instructions,
			ResultType:   row.ResultType,
			SummaryJSON:  row.SummaryJSON,
			CreatedAt:    core.Timestamp(row.CreatedAt),
		}
	}
	return records, nil
}

// Close releases the database handle
func (h *History) Close() error {
	return h.db.Close()
}

var _ ports.RunHistory = (*History)(nil)
