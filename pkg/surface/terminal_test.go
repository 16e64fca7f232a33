package surface_test

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/sellerscope/sellerscope/pkg/decision"
	"github.com/sellerscope/sellerscope/pkg/product"
	"github.com/sellerscope/sellerscope/pkg/rules"
	"github.com/sellerscope/sellerscope/pkg/scoring"
	"github.com/sellerscope/sellerscope/pkg/surface"
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
			{Key: "restricted_category", Rule: "DR-2: Restricted or sensitive category", Passed: true},
			{Key: "brand_moat", Rule: "DR-3: Brand dominance or review moat", Passed: true},
			{Key: "margin_viability", Rule: "DR-4: Gross margin viability", Passed: true},
			{Key: "logistics_risk", Rule: "DR-5: Logistics risk", Passed: true},
		},
		StarScore: &scoring.StarScore{
			TotalScore:  72,
			Passed:      true,
			Explanation: "Score 72/100 meets threshold 70.",
			Components: []scoring.Component{
				{Name: "Demand", Weight: 35, Score: 61, Explanation: "BSR=150"},
				{Name: "Competition", Weight: 30, Score: 70, Explanation: "offerCount=5"},
				{Name: "Profitability", Weight: 25, Score: 100, Explanation: "grossMargin=55.0%"},
				{Name: "Differentiation", Weight: 10, Score: 45, Explanation: "Heuristic default"},
			},
		},
		ExtractedSignals: &product.Signals{
			Title:           sp("Silicone Baking Mat Set"),
			BrandName:       sp("Generic"),
			Price:           fp(19.99),
			BSR:             intp(150),
			CompetitorCount: intp(5),
		},
		Request: decision.RequestInfo{
			URL:  "https://www.amazon.co.uk/dp/B0EXAMPLE1",
			ASIN: "B0EXAMPLE1",
		},
	}
}

func TestTerminalRenderer_BasicOutput(t *testing.T) {
	// Set NO_COLOR to avoid ANSI codes in test comparison
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	r := &surface.TerminalRenderer{}
	var buf bytes.Buffer

	err := r.Render(&buf, sampleResult())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	output := buf.String()

	// Check header
	if !strings.Contains(output, "APPROVED") {
		t.Error("expected verdict in output")
	}
	if !strings.Contains(output, "B0EXAMPLE1") {
		t.Error("expected ASIN in output")
	}

	// Check rule section
	if !strings.Contains(output, "Rules:") {
		t.Error("expected Rules section")
	}
	if !strings.Contains(output, "DR-4: Gross margin viability") {
		t.Error("expected margin rule line")
	}

	// Check score breakdown
	if !strings.Contains(output, "Star Score: 72/100") {
		t.Error("expected total score")
	}
	if !strings.Contains(output, "Demand") || !strings.Contains(output, "BSR=150") {
		t.Error("expected demand component with its detail")
	}

	// Check signals
	if !strings.Contains(output, "Signals:") {
		t.Error("expected Signals section")
	}
	if !strings.Contains(output, "Silicone Baking Mat Set") {
		t.Error("expected extracted title")
	}
}

func TestTerminalRenderer_FailedRule(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	result := sampleResult()
	result.Verdict = decision.VerdictDiscarded
	result.Summary = "DISCARDED: failed DR-3: Brand dominance or review moat."
	result.StarScore = nil
	result.Outcomes = result.Outcomes[:3]
	result.Outcomes[2].Passed = false
	result.Outcomes[2].Reason = "brand/review moat too strong: brand=Acme, reviews=900, rating=4.7"

	r := &surface.TerminalRenderer{}
	var buf bytes.Buffer
	if err := r.Render(&buf, result); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "✗") {
		t.Error("expected failure marker")
	}
	if !strings.Contains(output, "brand=Acme") {
		t.Error("expected failure reason")
	}
	if strings.Contains(output, "Star Score:") {
		t.Error("discarded result must not print a score section")
	}
}

func TestTerminalRenderer_InvalidURLResult(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	result := &decision.Result{
		Verdict: decision.VerdictDiscarded,
		Summary: "DISCARDED: invalid URL (no listing ID found).",
		Request: decision.RequestInfo{URL: "https://www.amazon.co.uk/s?k=baking"},
	}

	r := &surface.TerminalRenderer{}
	var buf bytes.Buffer
	if err := r.Render(&buf, result); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	output := buf.String()
	if strings.Contains(output, "Rules:") || strings.Contains(output, "Signals:") {
		t.Error("unresolvable URL result should have no rule or signal sections")
	}
	if !strings.Contains(output, "invalid URL") {
		t.Error("expected the summary line")
	}
}

func TestTerminalRenderer_ColorRespected(t *testing.T) {
	// Without NO_COLOR, output should have ANSI codes
	os.Unsetenv("NO_COLOR")

	r := &surface.TerminalRenderer{}
	var buf bytes.Buffer

	err := r.Render(&buf, sampleResult())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "\033[") {
		t.Error("expected ANSI escape codes when NO_COLOR is not set")
	}
}

func TestJSONRenderer(t *testing.T) {
	r := &surface.JSONRenderer{}
	var buf bytes.Buffer

	if err := r.Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["verdict"] != "APPROVED" {
		t.Errorf("verdict = %v", decoded["verdict"])
	}
	if _, ok := decoded["star_score"]; !ok {
		t.Error("expected star_score key")
	}
}
