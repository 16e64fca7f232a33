package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/sellerscope/sellerscope/internal/keepa"
	"github.com/sellerscope/sellerscope/internal/runlog"
	"github.com/sellerscope/sellerscope/pkg/decision"
)

func (h *Handler) handleDecision(w http.ResponseWriter, r *http.Request) {
	var req decision.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationErrors(w, []string{"body must be a JSON object"})
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	res, err := h.engine.Decide(r.Context(), req)
	if err != nil {
		if errors.Is(err, keepa.ErrNotFound) {
			writeError(w, http.StatusNotFound, "listing not found")
			return
		}
		log.Printf("decision %s: %v", req.URL, err)
		writeError(w, http.StatusBadGateway, "upstream product data unavailable")
		return
	}

	h.logRun(r.Context(), res)
	writeJSON(w, http.StatusOK, res)
}

// logRun appends the completed evaluation to the run log. Failures are
// logged and never surface to the caller.
func (h *Handler) logRun(ctx context.Context, res *decision.Result) {
	if h.runs == nil {
		return
	}
	payload, err := json.Marshal(res)
	if err != nil {
		log.Printf("run log %s: marshal: %v", res.Request.EvaluationID, err)
		return
	}
	rec := runlog.Record{
		ID:          res.Request.EvaluationID,
		ASIN:        res.Request.ASIN,
		Marketplace: string(res.Request.Context.Marketplace),
		Verdict:     string(res.Verdict),
		Result:      payload,
	}
	if res.StarScore != nil {
		score := res.StarScore.TotalScore
		rec.TotalScore = &score
	}
	if err := h.runs.Append(ctx, rec); err != nil {
		log.Printf("run log %s: %v", rec.ID, err)
	}
}

func (h *Handler) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if h.runs == nil {
		writeJSON(w, http.StatusOK, []runlog.Record{})
		return
	}
	recs, err := h.runs.Recent(r.Context(), 50)
	if err != nil {
		log.Printf("list runs: %v", err)
		writeError(w, http.StatusInternalServerError, "run log unavailable")
		return
	}
	if recs == nil {
		recs = []runlog.Record{}
	}
	writeJSON(w, http.StatusOK, recs)
}
