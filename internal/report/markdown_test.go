package report

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sellerscope/sellerscope/pkg/decision"
	"github.com/sellerscope/sellerscope/pkg/product"
	"github.com/sellerscope/sellerscope/pkg/request"
	"github.com/sellerscope/sellerscope/pkg/rules"
	"github.com/sellerscope/sellerscope/pkg/scoring"
)

func sp(v string) *string   { return &v }
func fp(v float64) *float64 { return &v }
func intp(v int) *int       { return &v }

func sampleResult() *decision.Result {
	return &decision.Result{
		Verdict: decision.VerdictApproved,
		Summary: "APPROVED: Star Score 72/100.",
		Outcomes: []rules.Outcome{
			{Key: "ip_risk", Rule: "DR-1: Patents / IP risk", Passed: true},
			{Key: "margin_viability", Rule: "DR-4: Gross margin viability", Passed: true},
		},
		StarScore: &scoring.StarScore{
			TotalScore:  72,
			Passed:      true,
			Explanation: "Score 72/100 meets threshold 70.",
			Components: []scoring.Component{
				{Name: "Demand", Weight: 35, Score: 64, Explanation: "BSR=100"},
			},
		},
		ExtractedSignals: &product.Signals{
			Title:     sp("Silicone Baking Mat Set"),
			BrandName: sp("Generic"),
			Price:     fp(19.99),
			BSR:       intp(100),
		},
		Request: decision.RequestInfo{
			Context:      request.Context{Marketplace: request.MarketplaceUK},
			URL:          "https://www.amazon.co.uk/dp/B0EXAMPLE1",
			ASIN:         "B0EXAMPLE1",
			EvaluationID: uuid.MustParse("1b671a64-40d5-491e-99b0-da01ff1f3341"),
			Timestamp:    time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestMarkdownScoredResult(t *testing.T) {
	md := Markdown(sampleResult())

	for _, want := range []string{
		"# Product Evaluation — B0EXAMPLE1",
		"**Verdict:** APPROVED",
		"APPROVED: Star Score 72/100.",
		"## Extracted Signals",
		"| Title | Silicone Baking Mat Set |",
		"| Price | 19.99 |",
		"## Discard Rules",
		"| DR-1: Patents / IP risk | PASS |",
		"## Star Score: 72/100",
		"| Demand | 35% | 64 | BSR=100 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report missing %q", want)
		}
	}
	// Missing signals render as a placeholder, not a zero.
	if !strings.Contains(md, "| Rating | — |") {
		t.Error("missing rating should render as a dash")
	}
}

func TestMarkdownDiscardedResult(t *testing.T) {
	res := sampleResult()
	res.Verdict = decision.VerdictDiscarded
	res.Summary = "DISCARDED: failed DR-4: Gross margin viability."
	res.StarScore = nil
	res.Outcomes[1].Passed = false
	res.Outcomes[1].Reason = "gross margin 20% below required minimum 25%"

	md := Markdown(res)
	if strings.Contains(md, "## Star Score") {
		t.Error("discarded report must not include a score section")
	}
	if !strings.Contains(md, "| DR-4: Gross margin viability | FAIL | gross margin 20% below required minimum 25% |") {
		t.Error("failed rule row missing")
	}
}

func TestMarkdownInvalidURLResult(t *testing.T) {
	res := &decision.Result{
		Verdict: decision.VerdictDiscarded,
		Summary: "DISCARDED: invalid URL (no listing ID found).",
		Request: decision.RequestInfo{
			URL:       "https://www.amazon.co.uk/s?k=baking",
			Timestamp: time.Now(),
		},
	}
	md := Markdown(res)
	if strings.Contains(md, "## Extracted Signals") || strings.Contains(md, "## Discard Rules") {
		t.Error("unresolvable URL report should carry no signal or rule sections")
	}
	if !strings.Contains(md, "# Product Evaluation\n") {
		t.Error("title should omit the listing ID when none resolved")
	}
}

func TestBuildHTML(t *testing.T) {
	html, err := buildHTML("# Title\n\n| A | B |\n|---|---|\n| 1 | 2 |\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "<table") {
		t.Errorf("html = %q, want heading and GFM table", html)
	}
}
