package rules

import (
	"strings"

	"github.com/sellerscope/sellerscope/pkg/i18n"
	"github.com/sellerscope/sellerscope/pkg/product"
	"github.com/sellerscope/sellerscope/pkg/request"
)

// restrictedTerms mark categories this system refuses to evaluate:
// ingestibles, medical goods and infant-safety products.
var restrictedTerms = []string{
	"food",
	"grocery",
	"supplement",
	"vitamin",
	"medical",
	"baby",
	"infant",
	"nursery",
}

// RestrictedCategoryRule (DR-2) discards listings in restricted or
// sensitive categories. A missing category is not itself a failure.
type RestrictedCategoryRule struct{}

func (r *RestrictedCategoryRule) Key() string  { return "restricted_category" }
func (r *RestrictedCategoryRule) Name() string { return "DR-2: Restricted or sensitive category" }

func (r *RestrictedCategoryRule) Evaluate(sig product.Signals, ctx request.Context) Outcome {
	if sig.Restricted {
		return fail(r.Key(), r.Name(), i18n.T(string(ctx.Language), i18n.MsgRestrictedFlag))
	}
	if sig.Category != nil {
		lower := strings.ToLower(*sig.Category)
		for _, term := range restrictedTerms {
			if strings.Contains(lower, term) {
				reason := i18n.T(string(ctx.Language), i18n.MsgRestrictedTerm, *sig.Category)
				return fail(r.Key(), r.Name(), reason)
			}
		}
	}
	return pass(r.Key(), r.Name())
}
