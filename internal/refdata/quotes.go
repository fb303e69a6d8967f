// Package refdata holds the compiled-in reference tables: fallback quote data
// for the known ticker universe and the static product catalog. Both are
// immutable for the lifetime of the process.
package refdata

import (
	"fmt"
	"sort"

	"github.com/invested-dashboard/backend/internal/model"
)

// Quote is one entry in the fallback quote table. CurrentPrice is a
// placeholder last-known price, not a live value; the history is sparse
// (roughly yearly) and is densified before use.
type Quote struct {
	Name         string
	CurrentPrice float64
	History      []model.PricePoint
}

var referenceQuotes = map[string]Quote{
	"AAPL": {
		Name:         "Apple Inc.",
		CurrentPrice: 175.43,
		History: []model.PricePoint{
			{Date: model.Month{Year: 2020, Mon: 1}, Price: 77.38},
			{Date: model.Month{Year: 2021, Mon: 1}, Price: 132.05},
			{Date: model.Month{Year: 2022, Mon: 1}, Price: 174.78},
			{Date: model.Month{Year: 2023, Mon: 1}, Price: 144.29},
			{Date: model.Month{Year: 2024, Mon: 1}, Price: 185.64},
			{Date: model.Month{Year: 2024, Mon: 12}, Price: 175.43},
		},
	},
	"NKE": {
		Name:         "Nike Inc.",
		CurrentPrice: 75.12,
		History: []model.PricePoint{
			{Date: model.Month{Year: 2020, Mon: 1}, Price: 101.31},
			{Date: model.Month{Year: 2021, Mon: 1}, Price: 141.47},
			{Date: model.Month{Year: 2022, Mon: 1}, Price: 166.72},
			{Date: model.Month{Year: 2023, Mon: 1}, Price: 117.66},
			{Date: model.Month{Year: 2024, Mon: 1}, Price: 103.91},
			{Date: model.Month{Year: 2024, Mon: 12}, Price: 75.12},
		},
	},
	"MSFT": {
		Name:         "Microsoft Corp.",
		CurrentPrice: 415.26,
		History: []model.PricePoint{
			{Date: model.Month{Year: 2020, Mon: 1}, Price: 160.62},
			{Date: model.Month{Year: 2021, Mon: 1}, Price: 231.96},
			{Date: model.Month{Year: 2022, Mon: 1}, Price: 309.42},
			{Date: model.Month{Year: 2023, Mon: 1}, Price: 239.82},
			{Date: model.Month{Year: 2024, Mon: 1}, Price: 384.30},
			{Date: model.Month{Year: 2024, Mon: 12}, Price: 415.26},
		},
	},
	"BBY": {
		Name:         "Best Buy Co.",
		CurrentPrice: 88.45,
		History: []model.PricePoint{
			{Date: model.Month{Year: 2020, Mon: 1}, Price: 87.65},
			{Date: model.Month{Year: 2021, Mon: 1}, Price: 109.58},
			{Date: model.Month{Year: 2022, Mon: 1}, Price: 104.66},
			{Date: model.Month{Year: 2023, Mon: 1}, Price: 81.59},
			{Date: model.Month{Year: 2024, Mon: 1}, Price: 78.11},
			{Date: model.Month{Year: 2024, Mon: 12}, Price: 88.45},
		},
	},
	"TSLA": {
		Name:         "Tesla Inc.",
		CurrentPrice: 248.98,
		History: []model.PricePoint{
			{Date: model.Month{Year: 2020, Mon: 1}, Price: 88.60},
			{Date: model.Month{Year: 2021, Mon: 1}, Price: 793.61},
			{Date: model.Month{Year: 2022, Mon: 1}, Price: 1056.78},
			{Date: model.Month{Year: 2023, Mon: 1}, Price: 123.18},
			{Date: model.Month{Year: 2024, Mon: 1}, Price: 238.45},
			{Date: model.Month{Year: 2024, Mon: 12}, Price: 248.98},
		},
	},
}

// LookupQuote returns the fallback quote for a symbol, if one exists.
// The returned history is a copy; callers may modify it freely.
func LookupQuote(symbol string) (Quote, bool) {
	q, ok := referenceQuotes[symbol]
	if !ok {
		return Quote{}, false
	}
	history := make([]model.PricePoint, len(q.History))
	copy(history, q.History)
	q.History = history
	return q, true
}

// Symbols returns the known ticker universe in sorted order.
func Symbols() []string {
	symbols := make([]string, 0, len(referenceQuotes))
	for symbol := range referenceQuotes {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// CompanyName returns the display name for a symbol, or "<SYMBOL> Inc." for
// symbols outside the reference table.
func CompanyName(symbol string) string {
	if q, ok := referenceQuotes[symbol]; ok {
		return q.Name
	}
	return fmt.Sprintf("%s Inc.", symbol)
}
