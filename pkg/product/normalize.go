package product

import (
	"math"
	"strings"
)

// Indices into Stats.Current and RawRecord.CSV. The upstream source
// keys both by series kind; only the slots below are consulted.
const (
	slotAmazonPrice = 0
	slotNewPrice    = 1
	slotSalesRank   = 3
	slotOfferCountA = 11
	slotOfferCountB = 12
	slotRating      = 16
	slotReviewCount = 17
	slotBuyBoxPrice = 18
)

// gramsCutoverKg: declared weights above this magnitude are assumed to
// be grams. Products in this system's class weigh low single-digit
// kilograms, so a declared "250" is 250 g, not 250 kg.
const gramsCutoverKg = 100

// Normalize converts a raw record into the flat signal set. It never
// fails: any missing or malformed field degrades to nil for that field
// and downstream rules treat nil as insufficient data.
func Normalize(raw *RawRecord) Signals {
	var s Signals
	if raw == nil {
		return s
	}

	s.Title = nonEmpty(raw.Title)
	s.BrandName = nonEmpty(raw.Brand)
	if s.BrandName == nil {
		s.BrandName = nonEmpty(raw.Manufacturer)
	}
	if n := len(raw.CategoryTree); n > 0 {
		s.Category = nonEmpty(raw.CategoryTree[n-1].Name)
	}

	s.Price = extractPrice(raw)
	s.Rating = extractRating(raw)
	s.ReviewCount = extractReviewCount(raw)
	s.BSR = extractBSR(raw)
	s.CompetitorCount = extractCompetitorCount(raw)
	s.WeightKg = extractWeight(raw)

	s.Notes = buildNotes(raw)
	if raw.HazardousMaterialType != nil && *raw.HazardousMaterialType > 0 {
		s.Hazmat = true
	}
	if raw.IsAdultProduct != nil && *raw.IsAdultProduct {
		s.Restricted = true
	}

	return s
}

// extractPrice tries, in order: the buy-box price, the current-stats
// price slots, then the price history arrays scanned from the end.
// Currency values are minor units and divided by 100.
func extractPrice(raw *RawRecord) *float64 {
	if raw.Stats != nil {
		if p := minorUnits(raw.Stats.BuyBoxPrice); p != nil {
			return p
		}
		for _, slot := range []int{slotAmazonPrice, slotNewPrice, slotBuyBoxPrice} {
			if p := minorUnits(currentAt(raw.Stats, slot)); p != nil {
				return p
			}
		}
	}
	for _, slot := range []int{slotBuyBoxPrice, slotAmazonPrice, slotNewPrice} {
		if v, ok := lastValidCSV(raw, slot, validPositive); ok {
			p := v / 100
			return &p
		}
	}
	return nil
}

// extractRating prefers the aggregate rating. The source encodes
// ratings in tenths of a star (0-50); values above 5 are divided by 10
// to land on the 0-5 scale.
func extractRating(raw *RawRecord) *float64 {
	if raw.Stats != nil && raw.Stats.Rating != nil && validNonNegative(*raw.Stats.Rating) {
		r := *raw.Stats.Rating / 10
		return &r
	}
	if raw.Rating != nil && validNonNegative(*raw.Rating) {
		r := *raw.Rating
		if r > 5 {
			r /= 10
		}
		return &r
	}
	if v, ok := lastValidCSV(raw, slotRating, validNonNegative); ok {
		r := v / 10
		return &r
	}
	return nil
}

func extractReviewCount(raw *RawRecord) *int {
	if raw.Stats != nil {
		if n := toCount(raw.Stats.ReviewCount); n != nil {
			return n
		}
	}
	if n := toCount(raw.ReviewCount); n != nil {
		return n
	}
	if v, ok := lastValidCSV(raw, slotReviewCount, validNonNegative); ok {
		n := int(v)
		return &n
	}
	return nil
}

// extractBSR requires a strictly positive rank; zero and negative
// entries are placeholders for "no rank" and treated as absent.
func extractBSR(raw *RawRecord) *int {
	if raw.Stats != nil {
		if v := currentAt(raw.Stats, slotSalesRank); v != nil && validPositive(*v) {
			n := int(*v)
			return &n
		}
		if raw.Stats.SalesRank != nil && validPositive(*raw.Stats.SalesRank) {
			n := int(*raw.Stats.SalesRank)
			return &n
		}
	}
	if v, ok := lastValidCSV(raw, slotSalesRank, validPositive); ok {
		n := int(v)
		return &n
	}
	return nil
}

func extractCompetitorCount(raw *RawRecord) *int {
	if raw.Stats != nil {
		if n := toCount(raw.Stats.OfferCount); n != nil {
			return n
		}
	}
	if n := toCount(raw.OfferCount); n != nil {
		return n
	}
	if raw.Stats != nil {
		for _, slot := range []int{slotOfferCountA, slotOfferCountB} {
			if n := toCount(currentAt(raw.Stats, slot)); n != nil {
				return n
			}
		}
	}
	return nil
}

func extractWeight(raw *RawRecord) *float64 {
	if raw.PackageWeight == nil {
		return nil
	}
	w := *raw.PackageWeight
	if !validPositive(w) {
		return nil
	}
	if w > gramsCutoverKg {
		w /= 1000
	}
	return &w
}

func buildNotes(raw *RawRecord) *string {
	parts := make([]string, 0, 1+len(raw.Features))
	if strings.TrimSpace(raw.Description) != "" {
		parts = append(parts, raw.Description)
	}
	for _, f := range raw.Features {
		if strings.TrimSpace(f) != "" {
			parts = append(parts, f)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	joined := strings.Join(parts, "\n")
	return &joined
}

func lastValidCSV(raw *RawRecord, slot int, valid func(float64) bool) (float64, bool) {
	if slot >= len(raw.CSV) || raw.CSV[slot] == nil {
		return 0, false
	}
	return ParseSeries(raw.CSV[slot]).LastValid(valid)
}

func currentAt(st *Stats, slot int) *float64 {
	if slot >= len(st.Current) {
		return nil
	}
	return st.Current[slot]
}

// minorUnits converts a minor-unit currency value to major units.
// Non-positive values are absent: the source uses -1 for "no data" and
// 0 for an empty price slot, so both fall through to the next source.
func minorUnits(v *float64) *float64 {
	if v == nil || !validPositive(*v) {
		return nil
	}
	p := *v / 100
	return &p
}

func toCount(v *float64) *int {
	if v == nil || !validNonNegative(*v) {
		return nil
	}
	n := int(*v)
	return &n
}

func validNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func validPositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func nonEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
