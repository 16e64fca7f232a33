package rules

import (
	"strings"

	"github.com/sellerscope/sellerscope/pkg/i18n"
	"github.com/sellerscope/sellerscope/pkg/product"
	"github.com/sellerscope/sellerscope/pkg/request"
)

// fragileIndicators are the substrings that mark a listing as fragile.
// The upstream record has no dedicated fragile flag, so the listing text
// is scanned the same way DR-1 scans for IP terms.
var fragileIndicators = []string{
	"fragile",
	"breakable",
	"frágil",
}

// LogisticsRule (DR-5) discards listings that are expensive or risky to
// move: hazmat-flagged items, fragile-marked items and anything at or
// above the weight limit. Missing weight passes; absence of data is not
// a logistics risk.
type LogisticsRule struct {
	MaxWeightKg float64
}

func (r *LogisticsRule) Key() string  { return "logistics_risk" }
func (r *LogisticsRule) Name() string { return "DR-5: Logistics risk" }

func (r *LogisticsRule) Evaluate(sig product.Signals, ctx request.Context) Outcome {
	if sig.Hazmat {
		return fail(r.Key(), r.Name(), i18n.T(string(ctx.Language), i18n.MsgLogisticsHazmat))
	}
	if ind := fragileIndicator(sig); ind != "" {
		return fail(r.Key(), r.Name(), i18n.T(string(ctx.Language), i18n.MsgLogisticsFragile, ind))
	}
	if sig.WeightKg != nil && *sig.WeightKg >= r.MaxWeightKg {
		reason := i18n.T(string(ctx.Language), i18n.MsgLogisticsWeight, *sig.WeightKg, r.MaxWeightKg)
		return fail(r.Key(), r.Name(), reason)
	}
	return pass(r.Key(), r.Name())
}

func fragileIndicator(sig product.Signals) string {
	for _, text := range []*string{sig.Title, sig.Notes} {
		if text == nil {
			continue
		}
		lower := strings.ToLower(*text)
		for _, ind := range fragileIndicators {
			if strings.Contains(lower, ind) {
				return ind
			}
		}
	}
	return ""
}
