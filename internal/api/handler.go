// Package api implements the hosted Sellerscope REST API: decision and
// discovery endpoints plus a read endpoint over the run log.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sellerscope/sellerscope/internal/runlog"
	"github.com/sellerscope/sellerscope/pkg/decision"
)

// Engine is the evaluation entry point the API exposes.
type Engine interface {
	Decide(ctx context.Context, req decision.Request) (*decision.Result, error)
}

// Handler is the top-level API handler for the hosted Sellerscope service.
type Handler struct {
	engine Engine
	runs   runlog.Store
}

// NewHandler creates a new API handler. runs may be nil when no run
// log is configured.
func NewHandler(engine Engine, runs runlog.Store) *Handler {
	return &Handler{engine: engine, runs: runs}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/decision", h.handleDecision)
	mux.HandleFunc("POST /api/discovery", h.handleDiscovery)
	mux.HandleFunc("GET /api/runs", h.handleListRuns)
	mux.HandleFunc("GET /healthz", h.handleHealth)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeValidationErrors(w http.ResponseWriter, errs []string) {
	writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "errors": errs})
}
