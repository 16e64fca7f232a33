package product

import (
	"regexp"
	"strings"
)

// Listing URL shapes that carry an ASIN. Checked in order.
var asinPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)/dp/([A-Z0-9]{10})`),
	regexp.MustCompile(`(?i)/gp/product/([A-Z0-9]{10})`),
	regexp.MustCompile(`(?i)asin=([A-Z0-9]{10})`),
}

// ASINFromURL extracts the marketplace listing identifier from a
// product URL. It returns "" when no pattern matches; callers treat
// that as an unresolvable listing, not an error.
func ASINFromURL(url string) string {
	u := strings.TrimSpace(url)
	if u == "" {
		return ""
	}
	for _, re := range asinPatterns {
		if m := re.FindStringSubmatch(u); m != nil {
			return strings.ToUpper(m[1])
		}
	}
	return ""
}
