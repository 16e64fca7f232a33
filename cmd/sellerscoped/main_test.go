package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  addr: ":9090"
keepa:
  api_key: file-key
  stats_days: 30
engine:
  thresholds:
    max_weight_kg: 2
`)
	t.Setenv("SELLERSCOPE_CONFIG", path)
	t.Setenv("PORT", "")
	t.Setenv("KEEPA_API_KEY", "")
	t.Setenv("DATABASE_URL", "")

	cfg := loadConfig()
	if cfg.Addr != ":9090" {
		t.Errorf("addr = %q, want :9090", cfg.Addr)
	}
	if cfg.KeepaAPIKey != "file-key" {
		t.Errorf("api key = %q, want file-key", cfg.KeepaAPIKey)
	}
	if cfg.StatsDays != 30 {
		t.Errorf("stats days = %d, want 30", cfg.StatsDays)
	}
	if got := cfg.Engine.RuleThresholds().MaxWeightKg; got != 2 {
		t.Errorf("max weight = %v, want 2", got)
	}
	if cfg.DatabaseURL != "postgres://localhost:5432/sellerscope?sslmode=disable" {
		t.Errorf("database url = %q, want default", cfg.DatabaseURL)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  addr: ":9090"
keepa:
  api_key: file-key
`)
	t.Setenv("SELLERSCOPE_CONFIG", path)
	t.Setenv("PORT", "7070")
	t.Setenv("KEEPA_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://db:5432/app")

	cfg := loadConfig()
	if cfg.Addr != ":7070" {
		t.Errorf("addr = %q, want :7070", cfg.Addr)
	}
	if cfg.KeepaAPIKey != "env-key" {
		t.Errorf("api key = %q, want env-key", cfg.KeepaAPIKey)
	}
	if cfg.DatabaseURL != "postgres://db:5432/app" {
		t.Errorf("database url = %q, want env value", cfg.DatabaseURL)
	}
}
