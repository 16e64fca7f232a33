// Package product models third-party marketplace product records and
// normalizes them into the flat signal set the decision engine consumes.
package product

// RawRecord is the loosely-typed payload returned by the product-data
// source. Fields are partially populated and vary by marketplace and
// category; the normalizer owns this type and nothing downstream of
// Normalize ever sees it.
type RawRecord struct {
	ASIN         string `json:"asin,omitempty"`
	Title        string `json:"title,omitempty"`
	Brand        string `json:"brand,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`

	CategoryTree []CategoryNode `json:"categoryTree,omitempty"`

	Stats *Stats `json:"stats,omitempty"`

	// CSV holds historical time series as flat alternating
	// timestamp/value arrays, indexed by series kind. Entries may be
	// nil or shorter than expected.
	CSV [][]float64 `json:"csv,omitempty"`

	// Top-level aggregates that some responses carry instead of stats.
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount *float64 `json:"reviewCount,omitempty"`
	OfferCount  *float64 `json:"offerCount,omitempty"`

	PackageWeight *float64 `json:"packageWeight,omitempty"`

	Description string   `json:"description,omitempty"`
	Features    []string `json:"features,omitempty"`

	// HazardousMaterialType is a positive code when the listing is
	// classified as hazardous for transport.
	HazardousMaterialType *float64 `json:"hazardousMaterialType,omitempty"`
	IsAdultProduct        *bool    `json:"isAdultProduct,omitempty"`
}

// CategoryNode is one level of the marketplace category hierarchy.
type CategoryNode struct {
	CatID int64  `json:"catId"`
	Name  string `json:"name"`
}

// Stats carries the "current stats" aggregates of a raw record.
// Currency values are minor-unit integers (cents/pence).
type Stats struct {
	BuyBoxPrice *float64   `json:"buyBoxPrice,omitempty"`
	Current     []*float64 `json:"current,omitempty"`
	Rating      *float64   `json:"rating,omitempty"`
	ReviewCount *float64   `json:"reviewCount,omitempty"`
	SalesRank   *float64   `json:"salesRank,omitempty"`
	OfferCount  *float64   `json:"offerCount,omitempty"`
}

// Signals is the engine's canonical, flat view of a product. Every
// pointer field is independently nullable: absence means "insufficient
// data", never zero. Produced once per evaluation and immutable after.
type Signals struct {
	Title     *string `json:"title"`
	BrandName *string `json:"brandName"`
	Category  *string `json:"category"`

	Price           *float64 `json:"price"`
	Rating          *float64 `json:"rating"`
	ReviewCount     *int     `json:"reviewCount"`
	BSR             *int     `json:"bsr"`
	CompetitorCount *int     `json:"competitorCount"`
	WeightKg        *float64 `json:"weightKg"`

	// Notes is free text (description + feature bullets) scanned by the
	// IP-risk rule; it is not a scored signal.
	Notes *string `json:"notes,omitempty"`

	// Hazmat and Restricted are listing-level flags. Absence in the raw
	// record means false, not unknown.
	Hazmat     bool `json:"hazmat"`
	Restricted bool `json:"restricted"`
}
