package rules

import (
	"strings"

	"github.com/sellerscope/sellerscope/pkg/i18n"
	"github.com/sellerscope/sellerscope/pkg/product"
	"github.com/sellerscope/sellerscope/pkg/request"
)

// genericBrands are brand strings that do not indicate a real brand
// moat. An empty or missing brand is generic too.
var genericBrands = map[string]bool{
	"generic":       true,
	"unbranded":     true,
	"no brand":      true,
	"none":          true,
	"unknown":       true,
	"n/a":           true,
	"na":            true,
	"oem":           true,
	"private label": true,
}

// BrandMoatRule (DR-3) discards candidates facing an established brand
// or review moat. Thresholds depend on product phase and entry
// strategy. Missing numeric signals count as zero for this rule only:
// absent data must not trigger a moat failure.
type BrandMoatRule struct {
	ReviewMoat        int     // reviews that alone form a moat
	RatedReviewMoat   int     // reviews that form a moat at high rating
	RatingMoat        float64 // rating bound for the rated branch
	EntrenchedOffers  int
	EntrenchedReviews int
}

func (r *BrandMoatRule) Key() string  { return "brand_moat" }
func (r *BrandMoatRule) Name() string { return "DR-3: Brand dominance or review moat" }

func (r *BrandMoatRule) Evaluate(sig product.Signals, ctx request.Context) Outcome {
	reviews := intOrZero(sig.ReviewCount)
	rating := floatOrZero(sig.Rating)
	offers := intOrZero(sig.CompetitorCount)

	if ctx.ProductPhase == request.PhaseWhiteLabel &&
		ctx.EntryStrategy == request.StrategyConservative &&
		!isGenericBrand(sig.BrandName) {
		if reviews >= r.ReviewMoat || (rating >= r.RatingMoat && reviews >= r.RatedReviewMoat) {
			reason := i18n.T(string(ctx.Language), i18n.MsgBrandMoat, *sig.BrandName, reviews, rating)
			return fail(r.Key(), r.Name(), reason)
		}
	}

	// Broader entrenchment guard: a crowded, heavily reviewed market is
	// too risky for a conservative entry unless the buyer already owns
	// a brand.
	if ctx.ProductPhase != request.PhaseBrand &&
		ctx.EntryStrategy == request.StrategyConservative &&
		offers >= r.EntrenchedOffers && reviews >= r.EntrenchedReviews {
		reason := i18n.T(string(ctx.Language), i18n.MsgMarketMoat, offers, reviews)
		return fail(r.Key(), r.Name(), reason)
	}

	return pass(r.Key(), r.Name())
}

func isGenericBrand(brand *string) bool {
	if brand == nil {
		return true
	}
	b := strings.ToLower(strings.TrimSpace(*brand))
	return b == "" || genericBrands[b]
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
