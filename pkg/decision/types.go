// Package decision orchestrates a full product evaluation: resolve the
// listing ID from the URL, fetch the raw record, normalize, run the
// discard pipeline and, when the candidate survives, compose the Star
// Score and tier the verdict.
package decision

import (
	"time"

	"github.com/google/uuid"

	"github.com/sellerscope/sellerscope/pkg/product"
	"github.com/sellerscope/sellerscope/pkg/request"
	"github.com/sellerscope/sellerscope/pkg/rules"
	"github.com/sellerscope/sellerscope/pkg/scoring"
)

// Verdict is the final tier of an evaluation.
type Verdict string

const (
	VerdictApproved   Verdict = "APPROVED"
	VerdictBorderline Verdict = "BORDERLINE"
	VerdictDiscarded  Verdict = "DISCARDED"
)

// BorderlineThreshold is the total score at and above which a candidate
// that misses the approval threshold is still worth a second look.
const BorderlineThreshold = 60

// Request is one evaluation request: the listing URL plus the business
// context the rules and the scorer branch on.
type Request struct {
	URL string `json:"url"`
	request.Context
}

// Validate returns one error string per invalid field.
func (r Request) Validate() []string {
	var errs []string
	if r.URL == "" {
		errs = append(errs, "url is required")
	}
	return append(errs, r.Context.Validate()...)
}

// RequestInfo echoes the evaluated request back in the result, with the
// resolved listing ID and the evaluation identity attached.
type RequestInfo struct {
	Context      request.Context `json:"context"`
	URL          string          `json:"url"`
	ASIN         string          `json:"asin,omitempty"`
	EvaluationID uuid.UUID       `json:"evaluation_id"`
	Timestamp    time.Time       `json:"timestamp"`
}

// Result is the complete outcome of one evaluation.
type Result struct {
	Verdict Verdict `json:"verdict"`
	// Summary is a one-line localized explanation of the verdict.
	Summary string `json:"summary"`
	// Outcomes lists the discard rules that actually ran, in pipeline
	// order. Empty when the URL never resolved to a listing ID.
	Outcomes []rules.Outcome `json:"outcomes"`
	// StarScore is set only when every discard rule passed.
	StarScore *scoring.StarScore `json:"star_score,omitempty"`
	// ExtractedSignals is set whenever a raw record was fetched, even
	// for discarded candidates, so callers can audit what the rules saw.
	ExtractedSignals *product.Signals `json:"extracted_signals,omitempty"`
	Request          RequestInfo      `json:"request"`
}
