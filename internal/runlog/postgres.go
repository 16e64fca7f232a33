package runlog

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresStore implements Store backed by Postgres. The runs table is
// created by the embedded migrations.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a Store over an open Postgres handle.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Append records one completed run.
func (s *PostgresStore) Append(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, asin, marketplace, verdict, total_score, result)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.ASIN, rec.Marketplace, rec.Verdict, rec.TotalScore, []byte(rec.Result),
	)
	if err != nil {
		return fmt.Errorf("append run %s: %w", rec.ID, err)
	}
	return nil
}

// Recent returns the latest runs, newest first.
func (s *PostgresStore) Recent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, asin, marketplace, verdict, total_score, result, created_at
		 FROM runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var r Record
		var result []byte
		if err := rows.Scan(&r.ID, &r.ASIN, &r.Marketplace, &r.Verdict, &r.TotalScore, &result, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Result = result
		recs = append(recs, r)
	}
	return recs, rows.Err()
}
