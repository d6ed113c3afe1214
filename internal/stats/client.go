// Package stats fetches COVID-19 statistics from the disease.sh API.
// Fetches are single-attempt and return a tagged Result instead of
// overloading the error path: an unknown country is a normal outcome
// carrying the provider's message, not a failure.
package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const maxResponseBytes = 1 << 20

// Client fetches statistics from a disease.sh-compatible endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a stats client for the given API base URL
// (e.g. "https://disease.sh/v3/covid-19").
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// payload mirrors the provider response for both /all and /countries/{c}.
// Cases is a pointer so that an error payload (message field, no counters)
// is distinguishable from a record with zero cases.
type payload struct {
	Message             string  `json:"message,omitempty"`
	Country             string  `json:"country,omitempty"`
	Updated             int64   `json:"updated"`
	Cases               *int64  `json:"cases"`
	TodayCases          int64   `json:"todayCases"`
	Deaths              int64   `json:"deaths"`
	TodayDeaths         int64   `json:"todayDeaths"`
	Recovered           int64   `json:"recovered"`
	Active              int64   `json:"active"`
	Critical            int64   `json:"critical"`
	Tests               int64   `json:"tests"`
	TestsPerOneMillion  float64 `json:"testsPerOneMillion"`
	CasesPerOneMillion  float64 `json:"casesPerOneMillion"`
	DeathsPerOneMillion float64 `json:"deathsPerOneMillion"`
	AffectedCountries   int64   `json:"affectedCountries"`
}

// FetchGlobal fetches worldwide statistics.
func (c *Client) FetchGlobal(ctx context.Context) Result {
	return c.fetch(ctx, c.baseURL+"/all")
}

// FetchCountry fetches statistics for a single country. The code may be
// a country name, ISO code, or the provider's canonical key.
func (c *Client) FetchCountry(ctx context.Context, code string) Result {
	return c.fetch(ctx, c.baseURL+"/countries/"+url.PathEscape(code))
}

func (c *Client) fetch(ctx context.Context, u string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return transient(fmt.Errorf("stats: create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return transient(fmt.Errorf("stats: request failed: %w", err))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	_ = resp.Body.Close()
	if err != nil {
		return transient(fmt.Errorf("stats: read response: %w", err))
	}

	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return transient(fmt.Errorf("stats: %s from upstream, body not parseable: %w", resp.Status, err))
	}

	// The provider reports unknown countries as an error payload, often
	// with a 404 status. That is a NotFound outcome, not a failure.
	if p.Cases == nil {
		if p.Message != "" {
			return notFound(p.Message)
		}
		return transient(fmt.Errorf("stats: %s from upstream, payload has neither counters nor message", resp.Status))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return transient(fmt.Errorf("stats: unexpected status %s", resp.Status))
	}

	return found(&Record{
		Country:             p.Country,
		Cases:               *p.Cases,
		TodayCases:          p.TodayCases,
		Deaths:              p.Deaths,
		TodayDeaths:         p.TodayDeaths,
		Recovered:           p.Recovered,
		Active:              p.Active,
		Critical:            p.Critical,
		Tests:               p.Tests,
		TestsPerOneMillion:  p.TestsPerOneMillion,
		CasesPerOneMillion:  p.CasesPerOneMillion,
		DeathsPerOneMillion: p.DeathsPerOneMillion,
		AffectedCountries:   p.AffectedCountries,
		Updated:             p.Updated,
	})
}
