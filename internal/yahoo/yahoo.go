// Package yahoo provides a client for the Yahoo Finance chart API, the
// upstream quote provider. It owns the HTTP contract: endpoint shapes, the
// browser User-Agent the provider requires, and tolerant response parsing.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the interface consumed by quote resolution. It is satisfied by
// FinanceClient and by test doubles.
type Client interface {
	// QueryLatestPrice fetches the most recent trading day for a symbol,
	// used to read the latest traded price from the response metadata.
	QueryLatestPrice(ctx context.Context, symbol string) (Response, error)

	// QueryMonthlyHistory fetches five years of monthly-interval price
	// data for a symbol.
	QueryMonthlyHistory(ctx context.Context, symbol string) (Response, error)
}

// FinanceClient is the production Client backed by the Yahoo Finance chart
// endpoint.
type FinanceClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewFinanceClient creates a Yahoo Finance client. baseURL is the chart
// endpoint without a trailing slash (overridable for tests); timeout bounds
// each request.
func NewFinanceClient(baseURL string, timeout time.Duration) *FinanceClient {
	return &FinanceClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// QueryLatestPrice fetches the current trading day's data for a symbol.
func (c *FinanceClient) QueryLatestPrice(ctx context.Context, symbol string) (Response, error) {
	url := fmt.Sprintf("%s/%s?interval=1d&range=1d", c.baseURL, symbol)
	return c.queryChart(ctx, url)
}

// QueryMonthlyHistory fetches 5 years of monthly price data for a symbol.
func (c *FinanceClient) QueryMonthlyHistory(ctx context.Context, symbol string) (Response, error) {
	url := fmt.Sprintf("%s/%s?interval=1mo&range=5y", c.baseURL, symbol)
	return c.queryChart(ctx, url)
}

// queryChart executes a chart request and decodes the response. The provider
// rejects unidentified clients, so every request carries a browser
// User-Agent.
func (c *FinanceClient) queryChart(ctx context.Context, url string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Response{}, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Response{}, fmt.Errorf("yahoo status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return Response{}, err
	}

	if response.Chart.Error != nil {
		return response, fmt.Errorf("yahoo error: %s", *response.Chart.Error)
	}

	return response, nil
}
