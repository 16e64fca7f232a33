package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/sellerscope/sellerscope/internal/keepa"
	"github.com/sellerscope/sellerscope/internal/runlog"
	"github.com/sellerscope/sellerscope/pkg/decision"
	"github.com/sellerscope/sellerscope/pkg/request"
)

type fakeEngine struct {
	result *decision.Result
	err    error
}

func (e *fakeEngine) Decide(_ context.Context, req decision.Request) (*decision.Result, error) {
	return e.result, e.err
}

type memRunLog struct {
	records []runlog.Record
}

func (m *memRunLog) Append(_ context.Context, rec runlog.Record) error {
	m.records = append(m.records, rec)
	return nil
}

func (m *memRunLog) Recent(_ context.Context, limit int) ([]runlog.Record, error) {
	if len(m.records) > limit {
		return m.records[:limit], nil
	}
	return m.records, nil
}

func newTestServer(engine Engine, runs runlog.Store) *httptest.Server {
	h := NewHandler(engine, runs)
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return httptest.NewServer(CORS(mux))
}

func validDecisionBody() string {
	return `{
		"url": "https://www.amazon.co.uk/dp/B0EXAMPLE1",
		"marketplace": "UK",
		"capital_profile": "medium",
		"product_phase": "white_label",
		"entry_strategy": "aggressive",
		"language": "EN"
	}`
}

func approvedResult() *decision.Result {
	return &decision.Result{
		Verdict: decision.VerdictApproved,
		Summary: "APPROVED: Star Score 72/100.",
		Request: decision.RequestInfo{
			Context:      request.Context{Marketplace: request.MarketplaceUK},
			URL:          "https://www.amazon.co.uk/dp/B0EXAMPLE1",
			ASIN:         "B0EXAMPLE1",
			EvaluationID: uuid.New(),
		},
	}
}

func TestDecisionEndpoint(t *testing.T) {
	runs := &memRunLog{}
	srv := newTestServer(&fakeEngine{result: approvedResult()}, runs)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/decision", "application/json", strings.NewReader(validDecisionBody()))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var res decision.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.Verdict != decision.VerdictApproved {
		t.Errorf("verdict = %s", res.Verdict)
	}
	if len(runs.records) != 1 || runs.records[0].ASIN != "B0EXAMPLE1" {
		t.Errorf("run log records = %+v", runs.records)
	}
}

func TestDecisionValidation(t *testing.T) {
	srv := newTestServer(&fakeEngine{result: approvedResult()}, nil)
	defer srv.Close()

	body := strings.Replace(validDecisionBody(), `"UK"`, `"DE"`, 1)
	resp, err := http.Post(srv.URL+"/api/decision", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var payload struct {
		OK     bool     `json:"ok"`
		Errors []string `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatal(err)
	}
	if payload.OK || len(payload.Errors) != 1 || !strings.Contains(payload.Errors[0], "marketplace") {
		t.Errorf("payload = %+v", payload)
	}
}

func TestDecisionUpstreamErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("fetch UK/B0EXAMPLE1: %w", keepa.ErrNotFound), http.StatusNotFound},
		{"upstream down", fmt.Errorf("fetch UK/B0EXAMPLE1: connection refused"), http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newTestServer(&fakeEngine{err: tc.err}, nil)
			defer srv.Close()

			resp, err := http.Post(srv.URL+"/api/decision", "application/json", strings.NewReader(validDecisionBody()))
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()
			if resp.StatusCode != tc.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tc.want)
			}
		})
	}
}

func TestDiscoveryEndpoint(t *testing.T) {
	srv := newTestServer(&fakeEngine{}, nil)
	defer srv.Close()

	body := `{"marketplace":"UK","category":"kitchen","count":5,"language":"EN"}`
	resp, err := http.Post(srv.URL+"/api/discovery", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var res struct {
		Total      int `json:"total"`
		Candidates []struct {
			PriceRange string `json:"priceRange"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.Total != 5 || len(res.Candidates) != 5 {
		t.Fatalf("total = %d, candidates = %d", res.Total, len(res.Candidates))
	}
	if res.Candidates[0].PriceRange != "£25–£60" {
		t.Errorf("price range = %q", res.Candidates[0].PriceRange)
	}
}

func TestDiscoveryValidation(t *testing.T) {
	srv := newTestServer(&fakeEngine{}, nil)
	defer srv.Close()

	body := `{"marketplace":"UK","category":"kitchen","count":100,"language":"EN"}`
	resp, err := http.Post(srv.URL+"/api/discovery", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestListRuns(t *testing.T) {
	runs := &memRunLog{records: []runlog.Record{
		{ID: uuid.New(), ASIN: "B0EXAMPLE1", Marketplace: "UK", Verdict: "APPROVED", Result: json.RawMessage(`{}`)},
	}}
	srv := newTestServer(&fakeEngine{}, runs)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/runs")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var recs []runlog.Record
	if err := json.NewDecoder(resp.Body).Decode(&recs); err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].ASIN != "B0EXAMPLE1" {
		t.Errorf("records = %+v", recs)
	}
}

func TestHealthAndCORS(t *testing.T) {
	srv := newTestServer(&fakeEngine{}, nil)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS header = %q", got)
	}
}
