// Package discovery generates seed product ideas for a marketplace and
// category. The catalog is a small curated pool; it exists to feed the
// evaluation funnel with candidates, not to model real demand.
package discovery

import (
	"strings"
	"unicode"

	"github.com/sellerscope/sellerscope/pkg/request"
)

// CountMin and CountMax bound how many candidates one request may ask for.
const (
	CountMin = 5
	CountMax = 50
)

// Request asks for candidate product ideas.
type Request struct {
	Marketplace request.Marketplace `json:"marketplace"`
	Category    string              `json:"category"`
	Count       int                 `json:"count"`
	Language    request.Language    `json:"language"`
}

// Validate returns one error string per invalid field.
func (r Request) Validate() []string {
	var errs []string
	if r.Marketplace != request.MarketplaceUK && r.Marketplace != request.MarketplaceUSA {
		errs = append(errs, "marketplace must be one of: UK, USA")
	}
	if r.Category == "" {
		errs = append(errs, "category is required")
	}
	if r.Count < CountMin || r.Count > CountMax {
		errs = append(errs, "count must be an integer between 5 and 50")
	}
	if r.Language != request.LanguageEN && r.Language != request.LanguageES {
		errs = append(errs, "language must be one of: EN, ES")
	}
	return errs
}

// Candidate is one suggested product idea.
type Candidate struct {
	Product    string `json:"product"`
	Category   string `json:"category"`
	PriceRange string `json:"priceRange"`
	Signal     string `json:"signal"`
	Note       string `json:"note"`
}

// Result is the full discovery response.
type Result struct {
	Candidates  []Candidate         `json:"candidates"`
	Total       int                 `json:"total"`
	Marketplace request.Marketplace `json:"marketplace"`
	Category    string              `json:"category"`
}

var pools = map[string][]string{
	"kitchen": {
		"Silicone Sink Splash Guard",
		"Adjustable Drawer Dividers",
		"Spice Jar Labels Kit",
		"Foldable Dish Drying Mat",
	},
	"default": {
		"Stackable Storage Bins",
		"Travel Packing Cubes",
		"Reusable Lint Roller",
		"Magnetic Fridge Planner Board",
	},
}

const (
	noteEN = "Multiple small brands offer similar solutions."
	noteES = "Varias marcas pequeñas ofrecen soluciones similares."
)

// Run produces Count candidates, cycling through the pool matched to
// the category. The caller validates the request first.
func Run(req Request) Result {
	pool := pickPool(req.Category)

	priceRange := "$25–$60"
	if req.Marketplace == request.MarketplaceUK {
		priceRange = "£25–£60"
	}
	note := noteEN
	if req.Language == request.LanguageES {
		note = noteES
	}

	candidates := make([]Candidate, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		name := pool[i%len(pool)]
		if req.Language == request.LanguageES {
			name = titleCase(name)
		}
		candidates = append(candidates, Candidate{
			Product:    name,
			Category:   titleCase(req.Category),
			PriceRange: priceRange,
			Signal:     "repeated",
			Note:       note,
		})
	}
	return Result{
		Candidates:  candidates,
		Total:       len(candidates),
		Marketplace: req.Marketplace,
		Category:    titleCase(req.Category),
	}
}

func pickPool(category string) []string {
	if strings.Contains(strings.ToLower(category), "kitchen") {
		return pools["kitchen"]
	}
	return pools["default"]
}

// titleCase lowercases the string, then uppercases the first letter of
// every word.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	startOfWord := true
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if startOfWord {
				r = unicode.ToUpper(r)
			}
			startOfWord = false
		} else {
			startOfWord = true
		}
		b.WriteRune(r)
	}
	return b.String()
}
