// Package request defines the per-evaluation request context: the
// marketplace and business-profile enumerations every rule and the
// scorer branch on. A Context is created once per evaluation from the
// incoming request and never mutated.
package request

import "fmt"

type Marketplace string

const (
	MarketplaceUK  Marketplace = "UK"
	MarketplaceUSA Marketplace = "USA"
)

type CapitalProfile string

const (
	CapitalLow    CapitalProfile = "low"
	CapitalMedium CapitalProfile = "medium"
	CapitalHigh   CapitalProfile = "high"
	CapitalScale  CapitalProfile = "scale"
)

type ProductPhase string

const (
	PhaseWhiteLabel   ProductPhase = "white_label"
	PhasePrivateLabel ProductPhase = "private_label"
	PhaseBrand        ProductPhase = "brand"
)

type EntryStrategy string

const (
	StrategyConservative EntryStrategy = "conservative"
	StrategyAggressive   EntryStrategy = "aggressive"
)

type Language string

const (
	LanguageEN Language = "EN"
	LanguageES Language = "ES"
)

// Context is the immutable evaluation context passed by value to every
// rule and to the score composer.
type Context struct {
	Marketplace    Marketplace    `json:"marketplace"`
	CapitalProfile CapitalProfile `json:"capital_profile"`
	ProductPhase   ProductPhase   `json:"product_phase"`
	EntryStrategy  EntryStrategy  `json:"entry_strategy"`
	Language       Language       `json:"language"`
}

// Validate checks every field against its enumeration and returns one
// human-readable error per invalid field, empty when the context is
// well formed.
func (c Context) Validate() []string {
	var errs []string
	if !oneOf(c.Marketplace, MarketplaceUK, MarketplaceUSA) {
		errs = append(errs, enumError("marketplace", MarketplaceUK, MarketplaceUSA))
	}
	if !oneOf(c.CapitalProfile, CapitalLow, CapitalMedium, CapitalHigh, CapitalScale) {
		errs = append(errs, enumError("capital_profile", CapitalLow, CapitalMedium, CapitalHigh, CapitalScale))
	}
	if !oneOf(c.ProductPhase, PhaseWhiteLabel, PhasePrivateLabel, PhaseBrand) {
		errs = append(errs, enumError("product_phase", PhaseWhiteLabel, PhasePrivateLabel, PhaseBrand))
	}
	if !oneOf(c.EntryStrategy, StrategyConservative, StrategyAggressive) {
		errs = append(errs, enumError("entry_strategy", StrategyConservative, StrategyAggressive))
	}
	if !oneOf(c.Language, LanguageEN, LanguageES) {
		errs = append(errs, enumError("language", LanguageEN, LanguageES))
	}
	return errs
}

func oneOf[T comparable](v T, allowed ...T) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

func enumError[T ~string](field string, allowed ...T) string {
	s := ""
	for i, a := range allowed {
		if i > 0 {
			s += ", "
		}
		s += string(a)
	}
	return fmt.Sprintf("%s must be one of: %s", field, s)
}
