package runlog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	asin        TEXT NOT NULL,
	marketplace TEXT NOT NULL,
	verdict     TEXT NOT NULL,
	total_score INTEGER,
	result      TEXT NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS runs_created_at_idx ON runs (created_at DESC);
`

// SQLiteStore implements Store with a local SQLite database. Used by
// the CLI, where evaluations run on the operator's machine.
type SQLiteStore struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewSQLiteStore opens (and if needed creates) the run log at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create run log directory: %w", err)
	}
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{db: db, now: time.Now}, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Append records one completed run.
func (s *SQLiteStore) Append(ctx context.Context, rec Record) error {
	createdAt := s.now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, asin, marketplace, verdict, total_score, result, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.ASIN, rec.Marketplace, rec.Verdict, rec.TotalScore, string(rec.Result), createdAt,
	)
	if err != nil {
		return fmt.Errorf("append run %s: %w", rec.ID, err)
	}
	return nil
}

type sqliteRun struct {
	ID          string `db:"id"`
	ASIN        string `db:"asin"`
	Marketplace string `db:"marketplace"`
	Verdict     string `db:"verdict"`
	TotalScore  *int   `db:"total_score"`
	Result      string `db:"result"`
	CreatedAt   string `db:"created_at"`
}

// Recent returns the latest runs, newest first.
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]Record, error) {
	var rows []sqliteRun
	err := s.db.SelectContext(ctx, &rows,
		`SELECT id, asin, marketplace, verdict, total_score, result, created_at
		 FROM runs ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	recs := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec, err := row.toRecord()
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse run id %q: %w", s, err)
	}
	return id, nil
}

func (r sqliteRun) toRecord() (Record, error) {
	id, err := parseID(r.ID)
	if err != nil {
		return Record{}, err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return Record{}, fmt.Errorf("parse run timestamp %q: %w", r.CreatedAt, err)
	}
	return Record{
		ID:          id,
		ASIN:        r.ASIN,
		Marketplace: r.Marketplace,
		Verdict:     r.Verdict,
		TotalScore:  r.TotalScore,
		Result:      []byte(r.Result),
		CreatedAt:   createdAt,
	}, nil
}
