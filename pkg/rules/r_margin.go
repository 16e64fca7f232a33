package rules

import (
	"github.com/sellerscope/sellerscope/pkg/i18n"
	"github.com/sellerscope/sellerscope/pkg/product"
	"github.com/sellerscope/sellerscope/pkg/request"
)

// MarginRule (DR-4) estimates gross margin and discards candidates
// below the strategy-dependent minimum. Cost of goods and fulfillment
// fees are heuristic shares of price, not measured costs; no explicit
// cost signals exist in the upstream data.
type MarginRule struct {
	CogsRate        float64
	FeeRate         float64
	MinConservative float64
	MinAggressive   float64
	LowCapitalBump  float64
}

func (r *MarginRule) Key() string  { return "margin_viability" }
func (r *MarginRule) Name() string { return "DR-4: Gross margin viability" }

func (r *MarginRule) Evaluate(sig product.Signals, ctx request.Context) Outcome {
	// A missing or non-positive price is a data-sufficiency failure:
	// the rule cannot make a determination, so it fails rather than
	// passing by default.
	if sig.Price == nil || *sig.Price <= 0 {
		return fail(r.Key(), r.Name(), i18n.T(string(ctx.Language), i18n.MsgMarginNoPrice))
	}

	price := *sig.Price
	estCogs := price * r.CogsRate
	estFees := price * r.FeeRate
	grossMargin := (price - estCogs - estFees) / price

	minimum := r.MinConservative
	if ctx.EntryStrategy == request.StrategyAggressive {
		minimum = r.MinAggressive
	}
	if ctx.CapitalProfile == request.CapitalLow {
		minimum += r.LowCapitalBump
	}

	if grossMargin < minimum {
		reason := i18n.T(string(ctx.Language), i18n.MsgMarginBelowMinimum, grossMargin*100, minimum*100)
		return fail(r.Key(), r.Name(), reason)
	}

	out := pass(r.Key(), r.Name())
	out.Margin = &MarginBreakdown{
		GrossMargin: grossMargin,
		Price:       price,
		EstCogs:     estCogs,
		EstFees:     estFees,
	}
	return out
}
