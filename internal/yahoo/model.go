package yahoo

import "time"

// Response represents the raw JSON response structure from the Yahoo Finance
// chart API. Price arrays use pointers because Yahoo emits JSON null for
// months without a traded close.
type Response struct {
	Chart Chart `json:"chart"`
}

// Chart is the top-level payload: a result array (typically one element)
// plus an optional API-level error message.
type Chart struct {
	Result []Result `json:"result"`
	Error  *string  `json:"error"`
}

// Result holds one symbol's metadata, timestamps, and price indicators.
type Result struct {
	Meta       Meta                `json:"meta"`
	Timestamp  []int64             `json:"timestamp"`
	Indicators IndicatorsContainer `json:"indicators"`
}

// Meta carries symbol metadata and the latest traded price.
type Meta struct {
	Currency           string  `json:"currency"`
	Symbol             string  `json:"symbol"`
	ExchangeName       string  `json:"exchangeName"`
	LongName           string  `json:"longName"`
	Shortname          string  `json:"shortName"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
}

// IndicatorsContainer wraps the quote array.
type IndicatorsContainer struct {
	Quote []Quote `json:"quote"`
}

// Quote holds the parallel price arrays for one symbol.
type Quote struct {
	Open   []*float64 `json:"open"`
	Close  []*float64 `json:"close"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Volume []*int64   `json:"volume"`
}

// MonthlyClose is one timestamped closing price extracted from a Response.
type MonthlyClose struct {
	Timestamp time.Time
	Close     float64
}

// MarketPrice extracts the latest traded price from the response metadata.
// It returns false when the nested field is absent or non-positive, which
// callers treat as "no data" rather than a parse error.
func (r Response) MarketPrice() (float64, bool) {
	if len(r.Chart.Result) == 0 {
		return 0, false
	}
	price := r.Chart.Result[0].Meta.RegularMarketPrice
	if price <= 0 {
		return 0, false
	}
	return price, true
}

// MonthlyCloses extracts the timestamp/close pairs from the response,
// skipping null and non-positive closes. A missing timestamp array, missing
// quote block, or mismatched array lengths all yield an empty result.
func (r Response) MonthlyCloses() []MonthlyClose {
	if len(r.Chart.Result) == 0 {
		return nil
	}
	result := r.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return nil
	}
	closes := result.Indicators.Quote[0].Close
	if len(closes) != len(result.Timestamp) {
		return nil
	}

	out := make([]MonthlyClose, 0, len(closes))
	for i, ts := range result.Timestamp {
		if closes[i] == nil || *closes[i] <= 0 {
			continue
		}
		out = append(out, MonthlyClose{
			Timestamp: time.Unix(ts, 0).UTC(),
			Close:     *closes[i],
		})
	}
	return out
}
