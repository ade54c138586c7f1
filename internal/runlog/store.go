// Package runlog persists per-run reconciliation outcomes to a local sqlite
// database. This is local telemetry only; collection identity lives solely
// in the server-side tag set.
package runlog

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Run is one reconciliation run's outcome.
type Run struct {
	ID              string
	ListID          string
	ListName        string
	CollectionID    string
	StartedAt       time.Time
	FinishedAt      time.Time
	Matched         int
	Unmatched       int
	Requested       int
	CoverUploaded   bool
	UnmatchedTitles []string
}

// Store provides access to run history.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the run-history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open run log: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate run log: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one run.
func (s *Store) Record(ctx context.Context, run Run) error {
	titles, err := json.Marshal(run.UnmatchedTitles)
	if err != nil {
		return fmt.Errorf("encode unmatched titles: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, list_id, list_name, collection_id, started_at, finished_at,
		                  matched, unmatched, requested, cover_uploaded, unmatched_titles)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.ListID, run.ListName, run.CollectionID,
		run.StartedAt.UTC(), run.FinishedAt.UTC(),
		run.Matched, run.Unmatched, run.Requested,
		boolToInt(run.CoverUploaded), string(titles),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// Recent returns the most recent runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, list_id, list_name, collection_id, started_at, finished_at,
		       matched, unmatched, requested, cover_uploaded, unmatched_titles
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var coverUploaded int
		var titles string
		if err := rows.Scan(&r.ID, &r.ListID, &r.ListName, &r.CollectionID,
			&r.StartedAt, &r.FinishedAt,
			&r.Matched, &r.Unmatched, &r.Requested,
			&coverUploaded, &titles); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.CoverUploaded = coverUploaded != 0
		if err := json.Unmarshal([]byte(titles), &r.UnmatchedTitles); err != nil {
			return nil, fmt.Errorf("decode unmatched titles: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
