package surface

import (
	"fmt"
	"io"
	"os"

	"github.com/sellerscope/sellerscope/pkg/decision"
)

// TerminalRenderer renders the Result as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func verdictColor(v decision.Verdict) string {
	if noColor() {
		return ""
	}
	switch v {
	case decision.VerdictApproved:
		return colorGreen
	case decision.VerdictBorderline:
		return colorYellow
	case decision.VerdictDiscarded:
		return colorRed
	default:
		return ""
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, result *decision.Result) error {
	vc := verdictColor(result.Verdict)

	// Header
	header := fmt.Sprintf("Sellerscope: %s", colored(string(result.Verdict), vc))
	if result.Request.ASIN != "" {
		header += fmt.Sprintf(" — %s", result.Request.ASIN)
	}
	fmt.Fprintf(w, "%s\n", bold(header))
	fmt.Fprintf(w, "%s\n\n", result.Summary)

	// Rule outcomes
	if len(result.Outcomes) > 0 {
		fmt.Fprintln(w, "Rules:")
		for _, o := range result.Outcomes {
			if o.Passed {
				fmt.Fprintf(w, "  %s %s\n", colored("✓", colorGreen), o.Rule)
				continue
			}
			fmt.Fprintf(w, "  %s %s — %s\n", colored("✗", colorRed), bold(o.Rule), o.Reason)
		}
		fmt.Fprintln(w)
	}

	// Score breakdown
	if result.StarScore != nil {
		fmt.Fprintf(w, "%s\n", bold(fmt.Sprintf("Star Score: %d/100", result.StarScore.TotalScore)))
		for _, c := range result.StarScore.Components {
			fmt.Fprintf(w, "  %-16s %3d  (weight %.0f%%)", c.Name, c.Score, c.Weight)
			if c.Explanation != "" {
				fmt.Fprintf(w, "  %s", dim(c.Explanation))
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}

	// Extracted signals, for auditing what the rules saw
	if sig := result.ExtractedSignals; sig != nil {
		fmt.Fprintln(w, "Signals:")
		writeSignal(w, "title", strOrDash(sig.Title))
		writeSignal(w, "brand", strOrDash(sig.BrandName))
		writeSignal(w, "category", strOrDash(sig.Category))
		writeSignal(w, "price", floatOrDash(sig.Price, "%.2f"))
		writeSignal(w, "rating", floatOrDash(sig.Rating, "%.1f"))
		writeSignal(w, "reviews", intOrDash(sig.ReviewCount))
		writeSignal(w, "bsr", intOrDash(sig.BSR))
		writeSignal(w, "competitors", intOrDash(sig.CompetitorCount))
		writeSignal(w, "weight kg", floatOrDash(sig.WeightKg, "%.2f"))
		fmt.Fprintln(w)
	}

	return nil
}

func writeSignal(w io.Writer, name, value string) {
	fmt.Fprintf(w, "  %-12s %s\n", name, dim(value))
}

func strOrDash(v *string) string {
	if v == nil {
		return "—"
	}
	return *v
}

func floatOrDash(v *float64, format string) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf(format, *v)
}

func intOrDash(v *int) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%d", *v)
}
