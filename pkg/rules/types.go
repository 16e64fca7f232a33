// Package rules implements the ordered discard-rule pipeline. Each rule
// is a pure predicate over the normalized signals and the request
// context; the pipeline runs them in a fixed order and stops at the
// first failure.
package rules

import (
	"github.com/sellerscope/sellerscope/pkg/product"
	"github.com/sellerscope/sellerscope/pkg/request"
)

// Rule is a single discard gate.
type Rule interface {
	// Key returns the stable machine identifier, e.g. "brand_moat".
	Key() string
	// Name returns the human label, e.g. "DR-3: Brand dominance or review moat".
	Name() string
	// Evaluate applies the rule. Implementations must not perform I/O
	// and must tolerate nil signal fields.
	Evaluate(sig product.Signals, ctx request.Context) Outcome
}

// Outcome is the read-only result of one rule evaluation.
type Outcome struct {
	Key    string `json:"key"`
	Rule   string `json:"rule"`
	Passed bool   `json:"passed"`
	// Reason is a localized, human-readable explanation; empty iff the
	// rule passed.
	Reason string `json:"reason,omitempty"`
	// Margin carries the margin rule's derived values forward to the
	// score composer. Only the margin rule sets it.
	Margin *MarginBreakdown `json:"extra,omitempty"`
}

// MarginBreakdown is the derived data the margin rule forwards. The
// composer reads these values instead of recomputing the margin.
type MarginBreakdown struct {
	GrossMargin float64 `json:"grossMargin"`
	Price       float64 `json:"price"`
	EstCogs     float64 `json:"estCogs"`
	EstFees     float64 `json:"estFees"`
}

// Derived accumulates cross-rule data as the pipeline folds over the
// rule sequence.
type Derived struct {
	Margin *MarginBreakdown
}

// Evaluation is the pipeline's typed accumulator: the outcomes of the
// rules that actually ran plus any derived data.
type Evaluation struct {
	Outcomes []Outcome
	Derived  Derived
}

// Passed reports whether every evaluated rule passed.
func (e Evaluation) Passed() bool {
	for _, o := range e.Outcomes {
		if !o.Passed {
			return false
		}
	}
	return true
}

// FirstFailure returns the failing outcome, or nil when all passed.
func (e Evaluation) FirstFailure() *Outcome {
	for i := range e.Outcomes {
		if !e.Outcomes[i].Passed {
			return &e.Outcomes[i]
		}
	}
	return nil
}

func pass(key, name string) Outcome {
	return Outcome{Key: key, Rule: name, Passed: true}
}

func fail(key, name, reason string) Outcome {
	return Outcome{Key: key, Rule: name, Passed: false, Reason: reason}
}
