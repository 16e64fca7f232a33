package rules

import (
	"strings"

	"github.com/sellerscope/sellerscope/pkg/i18n"
	"github.com/sellerscope/sellerscope/pkg/product"
	"github.com/sellerscope/sellerscope/pkg/request"
)

// ipIndicators are the substrings that suggest the listing is covered
// by someone else's intellectual property. Matched case-insensitively.
var ipIndicators = []string{
	"patent pending",
	"patented",
	"patent",
	"trademark",
	"license required",
	"licensed",
	"copyright",
	"™",
	"®",
}

// IPRiskRule (DR-1) discards listings whose title, brand or notes carry
// a patent/trademark/license indicator.
type IPRiskRule struct{}

func (r *IPRiskRule) Key() string  { return "ip_risk" }
func (r *IPRiskRule) Name() string { return "DR-1: Patents / IP risk" }

func (r *IPRiskRule) Evaluate(sig product.Signals, ctx request.Context) Outcome {
	fields := []struct {
		name string
		text *string
	}{
		{"title", sig.Title},
		{"brand", sig.BrandName},
		{"notes", sig.Notes},
	}
	for _, f := range fields {
		if f.text == nil {
			continue
		}
		lower := strings.ToLower(*f.text)
		for _, ind := range ipIndicators {
			if strings.Contains(lower, ind) {
				reason := i18n.T(string(ctx.Language), i18n.MsgIPSignal, ind, f.name)
				return fail(r.Key(), r.Name(), reason)
			}
		}
	}
	return pass(r.Key(), r.Name())
}
