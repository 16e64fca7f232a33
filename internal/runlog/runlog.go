// Package runlog is the append-only operational log of completed
// evaluations. Every run is recorded with its verdict and full result
// payload so operators can audit recent engine activity.
package runlog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Record is one completed evaluation.
type Record struct {
	ID          uuid.UUID `db:"id" json:"id"`
	ASIN        string    `db:"asin" json:"asin"`
	Marketplace string    `db:"marketplace" json:"marketplace"`
	Verdict     string    `db:"verdict" json:"verdict"`

	// TotalScore is nil for runs discarded before scoring.
	TotalScore *int            `db:"total_score" json:"total_score,omitempty"`
	Result     json.RawMessage `db:"result" json:"result"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}

// Store appends and reads evaluation runs.
type Store interface {
	// Append records one completed run. CreatedAt is set by the store.
	Append(ctx context.Context, rec Record) error
	// Recent returns the latest runs, newest first.
	Recent(ctx context.Context, limit int) ([]Record, error)
}
