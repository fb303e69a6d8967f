package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invested-dashboard/backend/internal/apperrors"
	"github.com/invested-dashboard/backend/internal/model"
)

var oneHundred = decimal.NewFromInt(100)

// InvestmentService computes what a product's retail price would be worth
// had it been invested in the maker's stock on the release date.
type InvestmentService struct{}

// NewInvestmentService creates a new InvestmentService.
func NewInvestmentService() *InvestmentService {
	return &InvestmentService{}
}

// Compute derives the investment result for a product from its maker's
// resolved quote data.
//
// The purchase price is the last history sample at or before the release
// date (the earliest sample if the release predates all history). Shares,
// valuation, and the timeline are computed in decimal arithmetic at full
// precision.
//
// Returns apperrors.ErrQuoteMissing for an empty quote record and
// apperrors.ErrZeroHistoricalPrice when the purchase price resolves to zero;
// quote resolution guarantees neither happens in normal operation.
func (s *InvestmentService) Compute(product model.Product, quote model.QuoteRecord) (model.InvestmentResult, error) {
	if quote.Symbol == "" || len(quote.PriceHistory) == 0 {
		return model.InvestmentResult{}, fmt.Errorf("%w: product %s", apperrors.ErrQuoteMissing, product.Name)
	}

	historicalPrice := priceAtOrBefore(quote.PriceHistory, product.ReleaseDate)
	if historicalPrice == 0 {
		return model.InvestmentResult{}, fmt.Errorf("%w: %s at %s",
			apperrors.ErrZeroHistoricalPrice, quote.Symbol, product.ReleaseDate.Format("2006-01-02"))
	}

	retail := decimal.NewFromFloat(product.RetailPrice)
	purchasePrice := decimal.NewFromFloat(historicalPrice)
	currentPrice := decimal.NewFromFloat(quote.CurrentPrice)

	shares := retail.Div(purchasePrice)
	currentValue := shares.Mul(currentPrice)
	gain := currentValue.Sub(retail)
	gainPercent := gain.Div(retail).Mul(oneHundred)

	timeline := buildTimeline(product, quote.PriceHistory, shares, purchasePrice)

	return model.InvestmentResult{
		Product:         product,
		CompanyName:     quote.Name,
		HistoricalPrice: purchasePrice,
		CurrentPrice:    currentPrice,
		Shares:          shares,
		CurrentValue:    currentValue,
		Gain:            gain,
		GainPercent:     gainPercent,
		Timeline:        timeline,
	}, nil
}

// priceAtOrBefore returns the price of the latest history sample whose month
// starts at or before the given date. This is a last-known-price lookup, not
// an exact match: gaps resolve to the nearest prior sample. If every sample
// postdates the date, the earliest sample is used.
func priceAtOrBefore(history []model.PricePoint, date time.Time) float64 {
	price := history[0].Price
	for _, point := range history {
		if point.Date.Time().After(date) {
			break
		}
		price = point.Price
	}
	return price
}

// buildTimeline produces the value-over-time series for charting: a
// synthetic point at the release date worth exactly the retail price, then
// one point per history sample from the release date onward, sorted
// ascending. The sort is defensive; the release-date point can interleave
// when the release falls mid-month.
func buildTimeline(product model.Product, history []model.PricePoint, shares, purchasePrice decimal.Decimal) []model.TimelinePoint {
	timeline := []model.TimelinePoint{
		{Date: product.ReleaseDate, Value: shares.Mul(purchasePrice)},
	}
	for _, point := range history {
		if point.Date.Time().Before(product.ReleaseDate) {
			continue
		}
		timeline = append(timeline, model.TimelinePoint{
			Date:  point.Date.Time(),
			Value: shares.Mul(decimal.NewFromFloat(point.Price)),
		})
	}

	sort.Slice(timeline, func(i, j int) bool {
		return timeline[i].Date.Before(timeline[j].Date)
	})
	return timeline
}
