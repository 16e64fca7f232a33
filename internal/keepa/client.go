// Package keepa is a thin client for the Keepa product API, the
// engine's upstream source of raw listing records.
package keepa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sellerscope/sellerscope/pkg/product"
	"github.com/sellerscope/sellerscope/pkg/request"
)

// ErrNotFound marks an ASIN the upstream has no record for.
var ErrNotFound = errors.New("keepa: product not found")

// DefaultBaseURL is the production Keepa endpoint.
const DefaultBaseURL = "https://api.keepa.com"

// domainIDs maps marketplaces to Keepa domain identifiers.
var domainIDs = map[request.Marketplace]int{
	request.MarketplaceUSA: 1,
	request.MarketplaceUK:  2,
}

// Client calls the Keepa product endpoint. Safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	statsDays  int
	httpClient *http.Client
}

// NewClient creates a Client for the production endpoint.
func NewClient(apiKey string) *Client {
	return &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		statsDays:  90,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// WithBaseURL points the client at a different endpoint. Used in tests.
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = base
	return c
}

// WithStatsDays changes the stats window requested from the upstream.
// Non-positive values keep the default.
func (c *Client) WithStatsDays(days int) *Client {
	if days > 0 {
		c.statsDays = days
	}
	return c
}

type productResponse struct {
	Products []*product.RawRecord `json:"products"`
}

// FetchProduct retrieves the raw record for one ASIN. History and
// rating data are always requested; the normalizer's fallback chains
// need the csv series.
func (c *Client) FetchProduct(ctx context.Context, marketplace request.Marketplace, asin string) (*product.RawRecord, error) {
	domain, ok := domainIDs[marketplace]
	if !ok {
		return nil, fmt.Errorf("unsupported marketplace %q", marketplace)
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("domain", fmt.Sprintf("%d", domain))
	params.Set("asin", asin)
	params.Set("stats", fmt.Sprintf("%d", c.statsDays))
	params.Set("history", "1")
	params.Set("rating", "1")

	endpoint := c.baseURL + "/product?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch product: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("keepa API error %d: %s", resp.StatusCode, string(body))
	}

	var decoded productResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Products) == 0 || decoded.Products[0] == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, asin)
	}
	return decoded.Products[0], nil
}
