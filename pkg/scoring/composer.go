package scoring

import (
	"fmt"
	"math"

	"github.com/sellerscope/sellerscope/pkg/i18n"
	"github.com/sellerscope/sellerscope/pkg/product"
	"github.com/sellerscope/sellerscope/pkg/request"
	"github.com/sellerscope/sellerscope/pkg/rules"
)

// PassThreshold is the total score at and above which a candidate
// passes the model; the orchestrator maps it to APPROVED.
const PassThreshold = 70

// Composer computes Star Scores. It is stateless and safe for
// concurrent use across evaluations.
type Composer struct {
	weights Weights

	// Neutral defaults substituted for missing signals. A missing rank
	// is neutral demand, not a penalty; a missing offer count assumes a
	// moderately competitive market.
	defaultCompetitors int
	defaultMargin      float64
	neutralDemand      float64

	// differentiation is a fixed heuristic: no market-differentiation
	// signal is computed by this system. Extension point, not a model.
	differentiation float64
}

// NewComposer creates a Composer with the given weights. It returns an
// error when the weights do not sum to 100.
func NewComposer(w Weights) (*Composer, error) {
	if w.Sum() != 100 {
		return nil, fmt.Errorf("component weights sum to %.1f, want 100", w.Sum())
	}
	return &Composer{
		weights:            w,
		defaultCompetitors: 20,
		defaultMargin:      0.30,
		neutralDemand:      50,
		differentiation:    45,
	}, nil
}

// DefaultComposer returns a Composer with the standard weights.
func DefaultComposer() *Composer {
	c, err := NewComposer(DefaultWeights())
	if err != nil {
		panic(err) // DefaultWeights sums to 100
	}
	return c
}

// Compose computes the Star Score for a candidate that passed every
// discard rule. margin is the breakdown the margin rule derived; nil
// falls back to the neutral default (callers normally always have it).
func (c *Composer) Compose(sig product.Signals, ctx request.Context, margin *rules.MarginBreakdown) StarScore {
	lang := string(ctx.Language)

	demand, demandWhy := c.demand(sig, lang)
	competition, competitionWhy := c.competition(sig, ctx, lang)
	profit, profitWhy := c.profitability(margin, lang)
	diff := clamp(c.differentiation)

	total := clamp(math.Round(
		demand*c.weights.Demand/100 +
			competition*c.weights.Competition/100 +
			profit*c.weights.Profitability/100 +
			diff*c.weights.Differentiation/100,
	))
	totalScore := int(total)
	passed := totalScore >= PassThreshold

	explID := i18n.MsgScoreMisses
	if passed {
		explID = i18n.MsgScoreMeets
	}

	return StarScore{
		TotalScore: totalScore,
		Passed:     passed,
		Components: []Component{
			{Name: "Demand", Weight: c.weights.Demand, Score: roundInt(demand), Explanation: demandWhy},
			{Name: "Competition", Weight: c.weights.Competition, Score: roundInt(competition), Explanation: competitionWhy},
			{Name: "Profitability", Weight: c.weights.Profitability, Score: roundInt(profit), Explanation: profitWhy},
			{Name: "Differentiation", Weight: c.weights.Differentiation, Score: roundInt(diff), Explanation: i18n.T(lang, i18n.MsgDiffPlaceholder)},
		},
		Explanation: i18n.T(lang, explID, totalScore, PassThreshold),
	}
}

// demand maps popularity rank to a 0-100 score: low ranks (popular
// listings) score high, with a logarithmic decay plus a linear tail for
// very deep ranks.
func (c *Composer) demand(sig product.Signals, lang string) (float64, string) {
	if sig.BSR == nil || *sig.BSR <= 0 {
		return c.neutralDemand, i18n.T(lang, i18n.MsgDemandNoBSR)
	}
	rank := float64(*sig.BSR)
	score := clamp(100 - (math.Log10(rank)*18 + (rank/60000)*10))
	return score, i18n.T(lang, i18n.MsgDemandBSR, *sig.BSR)
}

func (c *Composer) competition(sig product.Signals, ctx request.Context, lang string) (float64, string) {
	competitors := c.defaultCompetitors
	if sig.CompetitorCount != nil {
		competitors = *sig.CompetitorCount
	}

	score := 70 - clampRange((float64(competitors)-10)*2, 0, 45)
	if ctx.EntryStrategy == request.StrategyConservative {
		score -= 5
	}
	if ctx.CapitalProfile == request.CapitalLow {
		score -= 5
	}
	return clamp(score), i18n.T(lang, i18n.MsgCompetition, competitors)
}

// profitability maps gross margin to a score: a 50% margin is 100.
func (c *Composer) profitability(margin *rules.MarginBreakdown, lang string) (float64, string) {
	gm := c.defaultMargin
	if margin != nil {
		gm = margin.GrossMargin
	}
	return clamp(gm * 200), i18n.T(lang, i18n.MsgProfitability, gm*100)
}

func clamp(v float64) float64 {
	return clampRange(v, 0, 100)
}

func clampRange(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
