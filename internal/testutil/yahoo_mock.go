// Package testutil provides shared helpers for tests: a mock upstream quote
// client and HTTP request builders.
package testutil

import (
	"context"
	"sync"

	"github.com/invested-dashboard/backend/internal/model"
	"github.com/invested-dashboard/backend/internal/yahoo"
)

// MockYahooClient is a mock implementation of yahoo.Client for testing.
// It returns predefined responses instead of making actual API calls and
// counts the queries it receives. Safe for concurrent use.
type MockYahooClient struct {
	mu sync.Mutex

	// PriceResponse is returned from QueryLatestPrice
	PriceResponse yahoo.Response
	// HistoryResponse is returned from QueryMonthlyHistory
	HistoryResponse yahoo.Response
	// PriceErr and HistoryErr, when set, are returned instead
	PriceErr   error
	HistoryErr error

	// PriceCalls and HistoryCalls track how many queries were made
	PriceCalls   int
	HistoryCalls int
}

// NewMockYahooClient creates a mock with live-looking default data: a
// current price of 200 and two years of monthly history starting at 150.
func NewMockYahooClient() *MockYahooClient {
	return &MockYahooClient{
		PriceResponse:   CreatePriceResponse("TEST", 200),
		HistoryResponse: CreateHistoryResponse("TEST", model.Month{Year: 2023, Mon: 1}, 24, 150),
	}
}

// QueryLatestPrice returns the configured price response or error.
func (m *MockYahooClient) QueryLatestPrice(_ context.Context, _ string) (yahoo.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PriceCalls++
	if m.PriceErr != nil {
		return yahoo.Response{}, m.PriceErr
	}
	return m.PriceResponse, nil
}

// QueryMonthlyHistory returns the configured history response or error.
func (m *MockYahooClient) QueryMonthlyHistory(_ context.Context, _ string) (yahoo.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HistoryCalls++
	if m.HistoryErr != nil {
		return yahoo.Response{}, m.HistoryErr
	}
	return m.HistoryResponse, nil
}

// Calls returns the total number of queries received.
func (m *MockYahooClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.PriceCalls + m.HistoryCalls
}

// WithErrors configures both queries to fail with err.
func (m *MockYahooClient) WithErrors(err error) *MockYahooClient {
	m.PriceErr = err
	m.HistoryErr = err
	return m
}

// WithEmptyResponses configures both queries to return payloads with no
// result data, exercising the missing-nested-field path.
func (m *MockYahooClient) WithEmptyResponses() *MockYahooClient {
	m.PriceResponse = yahoo.Response{}
	m.HistoryResponse = yahoo.Response{}
	return m
}

// CreatePriceResponse builds a latest-price payload whose metadata carries
// the given market price.
func CreatePriceResponse(symbol string, price float64) yahoo.Response {
	return yahoo.Response{
		Chart: yahoo.Chart{
			Result: []yahoo.Result{
				{
					Meta: yahoo.Meta{
						Symbol:             symbol,
						Currency:           "USD",
						RegularMarketPrice: price,
					},
				},
			},
		},
	}
}

// CreateHistoryResponse builds a monthly-history payload with months
// consecutive samples starting at startPrice and rising by one per month.
func CreateHistoryResponse(symbol string, start model.Month, months int, startPrice float64) yahoo.Response {
	timestamps := make([]int64, months)
	closes := make([]*float64, months)
	for i := 0; i < months; i++ {
		timestamps[i] = start.AddMonths(i).Time().Unix()
		price := startPrice + float64(i)
		closes[i] = &price
	}
	return yahoo.Response{
		Chart: yahoo.Chart{
			Result: []yahoo.Result{
				{
					Meta: yahoo.Meta{
						Symbol:   symbol,
						Currency: "USD",
					},
					Timestamp: timestamps,
					Indicators: yahoo.IndicatorsContainer{
						Quote: []yahoo.Quote{{Close: closes}},
					},
				},
			},
		},
	}
}
