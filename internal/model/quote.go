package model

import "time"

// Provenance records which source produced a QuoteRecord, so degraded states
// stay observable to operators and tests. It is deliberately kept off the
// wire: the UI contract only carries the quote fields themselves.
type Provenance string

// Quote provenance values, ordered from best to worst.
const (
	// ProvenanceLive marks a record built from upstream market data.
	ProvenanceLive Provenance = "live"

	// ProvenanceReference marks a record built from the compiled-in
	// reference table after the upstream fetch failed.
	ProvenanceReference Provenance = "reference"

	// ProvenanceSynthetic marks a placeholder record for a symbol with
	// neither upstream nor reference data.
	ProvenanceSynthetic Provenance = "synthetic"
)

// PricePoint is one monthly closing-price sample in a quote's history.
type PricePoint struct {
	Date  Month   `json:"date"`
	Price float64 `json:"price"`
}

// QuoteRecord is the resolved quote data for one symbol: the latest traded
// price plus a monthly history densified to one point per month.
//
// PriceHistory is never empty: resolution degrades through reference data
// down to a single synthetic point, so consumers never branch on "no data".
// The JSON field names are the contract with the UI layer.
type QuoteRecord struct {
	Symbol       string       `json:"symbol"`
	Name         string       `json:"name"`
	CurrentPrice float64      `json:"currentPrice"`
	PriceHistory []PricePoint `json:"priceHistory"`
	LastUpdated  time.Time    `json:"lastUpdated"`
	Provenance   Provenance   `json:"-"`
}
