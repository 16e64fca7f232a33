// Package report renders evaluation results as shareable documents:
// a markdown report and a PDF printed from it.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/sellerscope/sellerscope/pkg/decision"
	"github.com/sellerscope/sellerscope/pkg/product"
)

// Markdown builds a GFM report for one evaluation result.
func Markdown(res *decision.Result) string {
	var b strings.Builder

	title := "Product Evaluation"
	if res.Request.ASIN != "" {
		title += " — " + res.Request.ASIN
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "**Verdict:** %s\n\n", res.Verdict)
	fmt.Fprintf(&b, "%s\n\n", res.Summary)

	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Marketplace | %s |\n", res.Request.Context.Marketplace)
	fmt.Fprintf(&b, "| URL | %s |\n", res.Request.URL)
	fmt.Fprintf(&b, "| Evaluation | %s |\n", res.Request.EvaluationID)
	fmt.Fprintf(&b, "| Date | %s |\n\n", res.Request.Timestamp.Format(time.RFC3339))

	if res.ExtractedSignals != nil {
		writeSignals(&b, res.ExtractedSignals)
	}
	if len(res.Outcomes) > 0 {
		writeOutcomes(&b, res)
	}
	if res.StarScore != nil {
		writeScore(&b, res)
	}
	return b.String()
}

func writeSignals(b *strings.Builder, sig *product.Signals) {
	b.WriteString("## Extracted Signals\n\n")
	b.WriteString("| Signal | Value |\n|---|---|\n")
	fmt.Fprintf(b, "| Title | %s |\n", strValue(sig.Title))
	fmt.Fprintf(b, "| Brand | %s |\n", strValue(sig.BrandName))
	fmt.Fprintf(b, "| Category | %s |\n", strValue(sig.Category))
	fmt.Fprintf(b, "| Price | %s |\n", floatValue(sig.Price, "%.2f"))
	fmt.Fprintf(b, "| Rating | %s |\n", floatValue(sig.Rating, "%.1f"))
	fmt.Fprintf(b, "| Reviews | %s |\n", intValue(sig.ReviewCount))
	fmt.Fprintf(b, "| BSR | %s |\n", intValue(sig.BSR))
	fmt.Fprintf(b, "| Competitors | %s |\n", intValue(sig.CompetitorCount))
	fmt.Fprintf(b, "| Weight (kg) | %s |\n\n", floatValue(sig.WeightKg, "%.2f"))
}

func writeOutcomes(b *strings.Builder, res *decision.Result) {
	b.WriteString("## Discard Rules\n\n")
	b.WriteString("| Rule | Result | Reason |\n|---|---|---|\n")
	for _, o := range res.Outcomes {
		status := "PASS"
		if !o.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(b, "| %s | %s | %s |\n", o.Rule, status, o.Reason)
	}
	b.WriteString("\n")
}

func writeScore(b *strings.Builder, res *decision.Result) {
	fmt.Fprintf(b, "## Star Score: %d/100\n\n", res.StarScore.TotalScore)
	fmt.Fprintf(b, "%s\n\n", res.StarScore.Explanation)
	b.WriteString("| Component | Weight | Score | Detail |\n|---|---|---|---|\n")
	for _, c := range res.StarScore.Components {
		fmt.Fprintf(b, "| %s | %.0f%% | %d | %s |\n", c.Name, c.Weight, c.Score, c.Explanation)
	}
	b.WriteString("\n")
}

func strValue(v *string) string {
	if v == nil {
		return "—"
	}
	return *v
}

func floatValue(v *float64, format string) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf(format, *v)
}

func intValue(v *int) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%d", *v)
}
