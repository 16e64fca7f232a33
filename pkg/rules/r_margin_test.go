package rules_test

import (
	"math"
	"strings"
	"testing"

	"github.com/sellerscope/sellerscope/pkg/request"
	"github.com/sellerscope/sellerscope/pkg/rules"
)

func marginRule() rules.Rule {
	return rules.DefaultRules(rules.DefaultThresholds())[3]
}

func TestMarginRuleEstimatedBreakdown(t *testing.T) {
	rule := marginRule()
	sig := viableSignals()
	sig.Price = fp(20)

	out := rule.Evaluate(sig, ctxWhiteLabelConservative())
	if !out.Passed {
		t.Fatalf("expected pass, got %q", out.Reason)
	}
	if out.Margin == nil {
		t.Fatal("passing margin rule must forward the breakdown")
	}

	m := out.Margin
	if m.Price != 20 || m.EstCogs != 6 || m.EstFees != 3 {
		t.Errorf("breakdown = %+v, want price=20 cogs=6 fees=3", m)
	}
	if math.Abs(m.GrossMargin-0.55) > 1e-9 {
		t.Errorf("grossMargin = %v, want 0.55", m.GrossMargin)
	}
}

func TestMarginRuleMissingPrice(t *testing.T) {
	rule := marginRule()

	for _, price := range []*float64{nil, fp(0), fp(-3)} {
		sig := viableSignals()
		sig.Price = price
		out := rule.Evaluate(sig, ctxWhiteLabelConservative())
		if out.Passed {
			t.Errorf("price %v should fail", price)
		}
		if !strings.Contains(out.Reason, "margin") && !strings.Contains(out.Reason, "margen") {
			t.Errorf("reason %q should describe the margin data gap", out.Reason)
		}
		if out.Margin != nil {
			t.Error("failed margin rule must not forward a breakdown")
		}
	}
}

func TestMarginRuleMinimumDependsOnContext(t *testing.T) {
	// With the 30%/15% heuristics the estimated margin is always 55%,
	// so exercise the minima through custom rates.
	rule := &rules.MarginRule{
		CogsRate:        0.45,
		FeeRate:         0.20, // margin 35%
		MinConservative: 0.35,
		MinAggressive:   0.25,
		LowCapitalBump:  0.05,
	}

	sig := viableSignals()

	ctx := ctxWhiteLabelConservative()
	if out := rule.Evaluate(sig, ctx); !out.Passed {
		t.Errorf("35%% margin should meet the 35%% conservative minimum: %q", out.Reason)
	}

	ctx.CapitalProfile = request.CapitalLow
	out := rule.Evaluate(sig, ctx)
	if out.Passed {
		t.Error("low capital should raise the minimum to 40% and fail")
	}
	if !strings.Contains(out.Reason, "35") || !strings.Contains(out.Reason, "40") {
		t.Errorf("reason %q should state computed vs required margin", out.Reason)
	}

	ctx.EntryStrategy = request.StrategyAggressive
	if out := rule.Evaluate(sig, ctx); !out.Passed {
		t.Errorf("aggressive minimum is 30%%, should pass: %q", out.Reason)
	}
}
