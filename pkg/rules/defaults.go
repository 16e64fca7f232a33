package rules

// Thresholds holds the tunable cutoffs for all discard rules.
type Thresholds struct {
	// DR-3: Brand dominance / review moat
	MoatReviewCount      int     // review count that alone signals a moat
	MoatRatedReviewCount int     // review count that signals a moat when highly rated
	MoatRating           float64 // rating bound for the rated-review branch
	EntrenchedOfferCount int     // offer count for the market-entrenchment guard
	EntrenchedReviews    int     // review count for the market-entrenchment guard

	// DR-4: Gross margin viability. Cost rates are heuristic
	// placeholders applied when no explicit cost signals exist.
	CogsRate              float64 // estimated cost of goods as a share of price
	FulfillmentFeeRate    float64 // estimated fulfillment fees as a share of price
	MarginMinConservative float64
	MarginMinAggressive   float64
	MarginLowCapitalBump  float64 // added to the minimum when capital is low

	// DR-5: Logistics risk
	MaxWeightKg float64
}

// DefaultThresholds returns the standard rule thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MoatReviewCount:      800,
		MoatRatedReviewCount: 500,
		MoatRating:           4.6,
		EntrenchedOfferCount: 20,
		EntrenchedReviews:    1000,

		CogsRate:              0.30,
		FulfillmentFeeRate:    0.15,
		MarginMinConservative: 0.35,
		MarginMinAggressive:   0.25,
		MarginLowCapitalBump:  0.05,

		MaxWeightKg: 5,
	}
}

// DefaultRules returns the five discard rules in evaluation order,
// configured with the given thresholds.
func DefaultRules(t Thresholds) []Rule {
	return []Rule{
		&IPRiskRule{},
		&RestrictedCategoryRule{},
		&BrandMoatRule{
			ReviewMoat:        t.MoatReviewCount,
			RatedReviewMoat:   t.MoatRatedReviewCount,
			RatingMoat:        t.MoatRating,
			EntrenchedOffers:  t.EntrenchedOfferCount,
			EntrenchedReviews: t.EntrenchedReviews,
		},
		&MarginRule{
			CogsRate:        t.CogsRate,
			FeeRate:         t.FulfillmentFeeRate,
			MinConservative: t.MarginMinConservative,
			MinAggressive:   t.MarginMinAggressive,
			LowCapitalBump:  t.MarginLowCapitalBump,
		},
		&LogisticsRule{MaxWeightKg: t.MaxWeightKg},
	}
}
