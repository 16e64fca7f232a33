package rules_test

import (
	"github.com/sellerscope/sellerscope/pkg/product"
	"github.com/sellerscope/sellerscope/pkg/request"
)

func sp(s string) *string   { return &s }
func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func ctxWhiteLabelConservative() request.Context {
	return request.Context{
		Marketplace:    request.MarketplaceUSA,
		CapitalProfile: request.CapitalMedium,
		ProductPhase:   request.PhaseWhiteLabel,
		EntryStrategy:  request.StrategyConservative,
		Language:       request.LanguageEN,
	}
}

func viableSignals() product.Signals {
	return product.Signals{
		Title:           sp("Adjustable Drawer Dividers"),
		BrandName:       sp("Generic"),
		Category:        sp("Home Organization"),
		Price:           fp(20),
		Rating:          fp(4.0),
		ReviewCount:     ip(120),
		BSR:             ip(5000),
		CompetitorCount: ip(5),
		WeightKg:        fp(1),
	}
}
