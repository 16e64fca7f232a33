package config

import (
	"github.com/sellerscope/sellerscope/pkg/rules"
	"github.com/sellerscope/sellerscope/pkg/scoring"
)

// ScoreWeights merges the configured weight overrides over the default
// score weights.
func (e EngineConfig) ScoreWeights() scoring.Weights {
	w := scoring.DefaultWeights()
	if v, ok := e.Weights["demand"]; ok {
		w.Demand = v
	}
	if v, ok := e.Weights["competition"]; ok {
		w.Competition = v
	}
	if v, ok := e.Weights["profitability"]; ok {
		w.Profitability = v
	}
	if v, ok := e.Weights["differentiation"]; ok {
		w.Differentiation = v
	}
	return w
}

// RuleThresholds merges the configured threshold overrides over the
// default rule thresholds.
func (e EngineConfig) RuleThresholds() rules.Thresholds {
	t := rules.DefaultThresholds()
	if v, ok := e.Thresholds["moat_review_count"]; ok {
		t.MoatReviewCount = int(v)
	}
	if v, ok := e.Thresholds["moat_rated_review_count"]; ok {
		t.MoatRatedReviewCount = int(v)
	}
	if v, ok := e.Thresholds["moat_rating"]; ok {
		t.MoatRating = v
	}
	if v, ok := e.Thresholds["entrenched_offer_count"]; ok {
		t.EntrenchedOfferCount = int(v)
	}
	if v, ok := e.Thresholds["entrenched_reviews"]; ok {
		t.EntrenchedReviews = int(v)
	}
	if v, ok := e.Thresholds["cogs_rate"]; ok {
		t.CogsRate = v
	}
	if v, ok := e.Thresholds["fulfillment_fee_rate"]; ok {
		t.FulfillmentFeeRate = v
	}
	if v, ok := e.Thresholds["margin_min_conservative"]; ok {
		t.MarginMinConservative = v
	}
	if v, ok := e.Thresholds["margin_min_aggressive"]; ok {
		t.MarginMinAggressive = v
	}
	if v, ok := e.Thresholds["margin_low_capital_bump"]; ok {
		t.MarginLowCapitalBump = v
	}
	if v, ok := e.Thresholds["max_weight_kg"]; ok {
		t.MaxWeightKg = v
	}
	return t
}
