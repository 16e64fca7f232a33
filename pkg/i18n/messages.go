// Package i18n centralizes every user-facing string produced by the
// decision engine. Rules, the scorer and the orchestrator all render
// text through T so no language branching leaks into business logic.
// Interpolated values (brand names, numbers) are never translated.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// MsgID identifies one fixed message in the catalog.
type MsgID string

const (
	MsgSummaryInvalidURL MsgID = "summary.invalid_url"
	MsgSummaryDiscarded  MsgID = "summary.discarded_rule"
	MsgSummaryScored     MsgID = "summary.scored"

	MsgIPSignal           MsgID = "rule.ip.signal"
	MsgRestrictedTerm     MsgID = "rule.category.term"
	MsgRestrictedFlag     MsgID = "rule.category.flag"
	MsgBrandMoat          MsgID = "rule.moat.brand"
	MsgMarketMoat         MsgID = "rule.moat.market"
	MsgMarginNoPrice      MsgID = "rule.margin.no_price"
	MsgMarginBelowMinimum MsgID = "rule.margin.below_minimum"
	MsgLogisticsHazmat    MsgID = "rule.logistics.hazmat"
	MsgLogisticsFragile   MsgID = "rule.logistics.fragile"
	MsgLogisticsWeight    MsgID = "rule.logistics.weight"

	MsgScoreMeets      MsgID = "score.meets"
	MsgScoreMisses     MsgID = "score.misses"
	MsgDemandBSR       MsgID = "score.demand.bsr"
	MsgDemandNoBSR     MsgID = "score.demand.no_bsr"
	MsgCompetition     MsgID = "score.competition.offers"
	MsgProfitability   MsgID = "score.profitability.margin"
	MsgDiffPlaceholder MsgID = "score.differentiation.placeholder"
)

var supported = []language.Tag{language.English, language.Spanish}

var matcher = language.NewMatcher(supported)

// catalog maps message IDs to fmt templates, indexed by the position of
// the matched tag in supported (0 = EN, 1 = ES).
var catalog = map[MsgID][2]string{
	MsgSummaryInvalidURL: {
		"DISCARDED: invalid URL (no listing ID found).",
		"DESCARTADO: URL inválida (identificador de listado no encontrado).",
	},
	MsgSummaryDiscarded: {
		"DISCARDED: failed %s.",
		"DESCARTADO: falló %s.",
	},
	MsgSummaryScored: {
		"%s: Star Score %d/100.",
		"%s: puntuación %d/100.",
	},

	MsgIPSignal: {
		"possible IP/patent signal: %q found in %s",
		"posible señal de PI/patente: %q encontrada en %s",
	},
	MsgRestrictedTerm: {
		"restricted/sensitive category: %s",
		"categoría restringida/sensible: %s",
	},
	MsgRestrictedFlag: {
		"restricted/sensitive category: listing carries a restricted flag",
		"categoría restringida/sensible: el listado tiene una marca de restricción",
	},
	MsgBrandMoat: {
		"brand/review moat too strong: brand=%s, reviews=%d, rating=%.1f",
		"barrera de marca/reseñas demasiado fuerte: marca=%s, reseñas=%d, valoración=%.1f",
	},
	MsgMarketMoat: {
		"market too entrenched: offers=%d, reviews=%d",
		"mercado demasiado consolidado: ofertas=%d, reseñas=%d",
	},
	MsgMarginNoPrice: {
		"missing price; cannot evaluate margin",
		"falta el precio; no se puede evaluar el margen",
	},
	MsgMarginBelowMinimum: {
		"gross margin %.0f%% below required minimum %.0f%%",
		"margen bruto %.0f%% por debajo del mínimo requerido %.0f%%",
	},
	MsgLogisticsHazmat: {
		"hazmat flag on listing",
		"marca de material peligroso en el listado",
	},
	MsgLogisticsFragile: {
		"fragile indicator %q on listing",
		"indicador de fragilidad %q en el listado",
	},
	MsgLogisticsWeight: {
		"weight %.1f kg at or above the %.0f kg limit",
		"peso %.1f kg igual o superior al límite de %.0f kg",
	},

	MsgScoreMeets: {
		"Score %d/100 meets threshold %d.",
		"Puntuación %d/100 alcanza el umbral %d.",
	},
	MsgScoreMisses: {
		"Score %d/100 does not meet threshold %d.",
		"Puntuación %d/100 no alcanza el umbral %d.",
	},
	MsgDemandBSR: {
		"BSR=%d",
		"BSR=%d",
	},
	MsgDemandNoBSR: {
		"No BSR",
		"Sin BSR",
	},
	MsgCompetition: {
		"offerCount=%d",
		"offerCount=%d",
	},
	MsgProfitability: {
		"grossMargin=%.1f%%",
		"grossMargin=%.1f%%",
	},
	MsgDiffPlaceholder: {
		"Heuristic default",
		"Valor heurístico por defecto",
	},
}

// T renders the message id in the given language ("EN" or "ES"; any
// unrecognized tag falls back to English).
func T(lang string, id MsgID, args ...any) string {
	templates, ok := catalog[id]
	if !ok {
		return string(id)
	}
	tmpl := templates[index(lang)]
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

func index(lang string) int {
	tag, err := language.Parse(lang)
	if err != nil {
		return 0
	}
	_, i, _ := matcher.Match(tag)
	return i
}
