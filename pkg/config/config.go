// Package config handles loading and managing Sellerscope configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for Sellerscope.
type Config struct {
	Keepa    KeepaConfig    `yaml:"keepa"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Archive  ArchiveConfig  `yaml:"archive"`
	Engine   EngineConfig   `yaml:"engine"`
}

// KeepaConfig controls the upstream product-data client.
type KeepaConfig struct {
	APIKey    string `yaml:"api_key"`
	StatsDays int    `yaml:"stats_days"`
}

// ServerConfig controls the daemon's HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig controls the run-log store.
type DatabaseConfig struct {
	// URL is a Postgres connection string. Empty selects SQLite.
	URL string `yaml:"url"`
	// SQLitePath overrides the default local run-log location.
	SQLitePath string `yaml:"sqlite_path"`
}

// ArchiveConfig controls raw-payload archiving.
type ArchiveConfig struct {
	// Backend is "local", "s3", "gcs" or "" (archiving disabled).
	Backend   string `yaml:"backend"`
	LocalDir  string `yaml:"local_dir"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// EngineConfig overrides decision-engine tunables. Zero values keep the
// built-in defaults.
type EngineConfig struct {
	// Weights overrides score component weights by name: demand,
	// competition, profitability, differentiation.
	Weights map[string]float64 `yaml:"weights"`
	// Thresholds overrides rule cutoffs by name, e.g. max_weight_kg or
	// moat_review_count. Unlisted thresholds keep their defaults.
	Thresholds map[string]float64 `yaml:"thresholds"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Keepa: KeepaConfig{
			APIKey:    os.Getenv("KEEPA_API_KEY"),
			StatsDays: 90,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Database: DatabaseConfig{
			SQLitePath: filepath.Join(CacheDir(), "runs.db"),
		},
		Engine: EngineConfig{
			Weights:    map[string]float64{},
			Thresholds: map[string]float64{},
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// FindConfigFile looks for .sellerscope/config.yaml in the given
// directory and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".sellerscope", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// CacheDir returns the local data directory, ~/.cache/sellerscope.
func CacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to temp dir if HOME isn't available
		home = os.TempDir()
	}
	return filepath.Join(home, ".cache", "sellerscope")
}
