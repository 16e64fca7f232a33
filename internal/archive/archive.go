// Package archive stores the raw upstream payload of every evaluation
// so fetched records can be audited and replayed later. Payloads are
// keyed by marketplace, ASIN and evaluation ID.
package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Storage abstracts blob storage for raw evaluation payloads.
type Storage interface {
	Put(ctx context.Context, marketplace, asin, evaluationID string, payload []byte) error
	Get(ctx context.Context, marketplace, asin, evaluationID string) ([]byte, error)
}

// LocalStorage implements Storage using the local filesystem.
// Useful for development and testing.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) path(marketplace, asin, evaluationID string) string {
	return filepath.Join(s.BaseDir, marketplace, asin, evaluationID+".json")
}

// Put stores a raw payload.
func (s *LocalStorage) Put(ctx context.Context, marketplace, asin, evaluationID string, payload []byte) error {
	path := s.path(marketplace, asin, evaluationID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, payload, 0o644)
}

// Get retrieves a raw payload.
func (s *LocalStorage) Get(ctx context.Context, marketplace, asin, evaluationID string) ([]byte, error) {
	return os.ReadFile(s.path(marketplace, asin, evaluationID))
}
