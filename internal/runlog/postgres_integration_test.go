//go:build integration
// +build integration

package runlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	_ "github.com/lib/pq"

	"github.com/sellerscope/sellerscope/internal/platform"
)

// setupTestDB creates a PostgreSQL container and returns a connection
func setupTestDB(t *testing.T) (*sql.DB, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "runlog_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(60 * time.Second),
	}

	postgresContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}

	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := postgresContainer.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	connStr := fmt.Sprintf("host=%s port=%s user=test password=test dbname=runlog_test sslmode=disable", host, port.Port())

	// Wait for connection to be available
	var db *sql.DB
	for i := 0; i < 30; i++ {
		db, err = sql.Open("postgres", connStr)
		if err == nil {
			err = db.Ping()
			if err == nil {
				break
			}
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	if err := platform.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	cleanup := func() {
		db.Close()
		postgresContainer.Terminate(ctx)
	}
	return db, cleanup
}

func TestPostgresAppendRecent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	s := NewPostgresStore(db)
	ctx := context.Background()

	approved := Record{
		ID:          uuid.New(),
		ASIN:        "B0EXAMPLE1",
		Marketplace: "UK",
		Verdict:     "APPROVED",
		TotalScore:  intp(72),
		Result:      json.RawMessage(`{"verdict":"APPROVED"}`),
	}
	discarded := Record{
		ID:          uuid.New(),
		ASIN:        "B0EXAMPLE2",
		Marketplace: "USA",
		Verdict:     "DISCARDED",
		Result:      json.RawMessage(`{"verdict":"DISCARDED"}`),
	}
	if err := s.Append(ctx, approved); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := s.Append(ctx, discarded); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}

	byID := map[uuid.UUID]Record{got[0].ID: got[0], got[1].ID: got[1]}
	scored, ok := byID[approved.ID]
	if !ok {
		t.Fatalf("approved run %s not returned", approved.ID)
	}
	if scored.TotalScore == nil || *scored.TotalScore != 72 {
		t.Errorf("total score = %v, want 72", scored.TotalScore)
	}
	if byID[discarded.ID].TotalScore != nil {
		t.Error("discarded run should have no total score")
	}
	if scored.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}
}

func TestPostgresRecentLimit(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	s := NewPostgresStore(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		rec := Record{ID: uuid.New(), ASIN: "B0EXAMPLE1", Marketplace: "UK", Verdict: "DISCARDED", Result: json.RawMessage(`{}`)}
		if err := s.Append(ctx, rec); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := s.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
}
