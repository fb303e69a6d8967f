package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimelinePoint is the value of the hypothetical investment at one moment.
type TimelinePoint struct {
	Date  time.Time
	Value decimal.Decimal
}

// InvestmentResult is the outcome of the "what if you'd invested instead"
// calculation for one product. All monetary figures are kept at full decimal
// precision; rounding to two places happens at the presentation boundary.
type InvestmentResult struct {
	Product         Product
	CompanyName     string
	HistoricalPrice decimal.Decimal
	CurrentPrice    decimal.Decimal
	Shares          decimal.Decimal
	CurrentValue    decimal.Decimal
	Gain            decimal.Decimal
	GainPercent     decimal.Decimal

	// Timeline covers the release date through the newest history sample,
	// in chronological order. The first entry restates the retail price as
	// investment value at time of purchase.
	Timeline []TimelinePoint
}
