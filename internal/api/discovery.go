package api

import (
	"encoding/json"
	"net/http"

	"github.com/sellerscope/sellerscope/pkg/discovery"
)

func (h *Handler) handleDiscovery(w http.ResponseWriter, r *http.Request) {
	var req discovery.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationErrors(w, []string{"body must be a JSON object"})
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	writeJSON(w, http.StatusOK, discovery.Run(req))
}
