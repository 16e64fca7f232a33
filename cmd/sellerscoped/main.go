// Command sellerscoped is the Sellerscope platform service.
// It serves the decision and discovery endpoints and a health check,
// persisting every evaluation to the Postgres run log.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/sellerscope/sellerscope/internal/api"
	"github.com/sellerscope/sellerscope/internal/archive"
	"github.com/sellerscope/sellerscope/internal/keepa"
	"github.com/sellerscope/sellerscope/internal/platform"
	"github.com/sellerscope/sellerscope/internal/runlog"
	pkgconfig "github.com/sellerscope/sellerscope/pkg/config"
	"github.com/sellerscope/sellerscope/pkg/decision"
	"github.com/sellerscope/sellerscope/pkg/rules"
	"github.com/sellerscope/sellerscope/pkg/scoring"
)

type config struct {
	Addr        string
	DatabaseURL string
	KeepaAPIKey string
	StatsDays   int
	ArchiveDir  string
	S3Bucket    string
	S3Region    string
	GCSBucket   string
	Engine      pkgconfig.EngineConfig
}

// loadConfig starts from the yaml config file (SELLERSCOPE_CONFIG, or
// the nearest .sellerscope/config.yaml) and lets the environment
// override individual values.
func loadConfig() config {
	file := fileConfig()

	cfg := config{
		Addr:        file.Server.Addr,
		DatabaseURL: file.Database.URL,
		KeepaAPIKey: file.Keepa.APIKey,
		StatsDays:   file.Keepa.StatsDays,
		ArchiveDir:  os.Getenv("LOCAL_ARCHIVE_PATH"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3Region:    os.Getenv("AWS_REGION"),
		GCSBucket:   os.Getenv("GCS_BUCKET"),
		Engine:      file.Engine,
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "postgres://localhost:5432/sellerscope?sslmode=disable"
	}
	if v := os.Getenv("KEEPA_API_KEY"); v != "" {
		cfg.KeepaAPIKey = v
	}
	return cfg
}

func fileConfig() *pkgconfig.Config {
	path := os.Getenv("SELLERSCOPE_CONFIG")
	if path == "" {
		if cwd, err := os.Getwd(); err == nil {
			path = pkgconfig.FindConfigFile(cwd)
		}
	}
	if path == "" {
		return pkgconfig.DefaultConfig()
	}
	cfg, err := pkgconfig.Load(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	return cfg
}

func main() {
	cfg := loadConfig()

	if cfg.KeepaAPIKey == "" {
		log.Fatal("KEEPA_API_KEY is required")
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}
	if err := platform.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// Initialize services
	engineOpts, err := engineOptions(cfg)
	if err != nil {
		log.Fatalf("engine config: %v", err)
	}
	client := keepa.NewClient(cfg.KeepaAPIKey).WithStatsDays(cfg.StatsDays)
	engine := decision.New(client, engineOpts...)

	handler := api.NewHandler(engine, runlog.NewPostgresStore(db))

	// Set up HTTP routes
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.HandleFunc("GET /readyz", readyHandler(db))

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.CORS(mux),
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("starting sellerscoped on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

// engineOptions builds orchestrator options from the file config:
// weight and threshold overrides plus the archive backend.
func engineOptions(cfg config) ([]decision.Option, error) {
	var opts []decision.Option
	if len(cfg.Engine.Weights) > 0 {
		composer, err := scoring.NewComposer(cfg.Engine.ScoreWeights())
		if err != nil {
			return nil, err
		}
		opts = append(opts, decision.WithComposer(composer))
	}
	if len(cfg.Engine.Thresholds) > 0 {
		pipeline := rules.NewPipeline(rules.DefaultRules(cfg.Engine.RuleThresholds())...)
		opts = append(opts, decision.WithPipeline(pipeline))
	}
	if store := buildArchive(cfg); store != nil {
		opts = append(opts, decision.WithArchiver(store))
	}
	return opts, nil
}

// buildArchive picks the raw-payload archive backend from the
// environment; nil disables archiving.
func buildArchive(cfg config) archive.Storage {
	ctx := context.Background()
	switch {
	case cfg.S3Bucket != "":
		store, err := archive.NewS3Storage(ctx, archive.S3Config{Bucket: cfg.S3Bucket, Region: cfg.S3Region})
		if err != nil {
			log.Fatalf("s3 archive: %v", err)
		}
		return store
	case cfg.GCSBucket != "":
		store, err := archive.NewGCSStorage(ctx, cfg.GCSBucket)
		if err != nil {
			log.Fatalf("gcs archive: %v", err)
		}
		return store
	case cfg.ArchiveDir != "":
		return archive.NewLocalStorage(cfg.ArchiveDir)
	default:
		return nil
	}
}

func readyHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
