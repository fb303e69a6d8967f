package service

import (
	"context"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/invested-dashboard/backend/internal/model"
	"github.com/invested-dashboard/backend/internal/refdata"
	"github.com/invested-dashboard/backend/internal/yahoo"
)

// syntheticPrice is the placeholder price for symbols with neither upstream
// nor reference data.
const syntheticPrice = 100

// QuoteResolver resolves quote data for a symbol. Resolution never fails:
// every failure mode degrades to a best-effort record with non-empty history.
type QuoteResolver interface {
	Resolve(ctx context.Context, symbol string) model.QuoteRecord
}

// QuoteService resolves quotes from the upstream provider, degrading through
// the reference table down to a synthetic record. Each fallback step is
// logged and stamped on the record's Provenance.
type QuoteService struct {
	client yahoo.Client
}

// NewQuoteService creates a QuoteService backed by the given upstream client.
func NewQuoteService(client yahoo.Client) *QuoteService {
	return &QuoteService{client: client}
}

// Resolve fetches the latest price and five-year monthly history for a
// symbol concurrently and joins the results. If either piece is missing the
// record is built from the reference table, and for unknown symbols from a
// single synthetic point, so the returned history is never empty.
func (s *QuoteService) Resolve(ctx context.Context, symbol string) model.QuoteRecord {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	now := time.Now().UTC()

	var (
		currentPrice float64
		history      []model.PricePoint
	)

	// The two fetches race in parallel; each one swallows its own failure
	// so a dead upstream degrades instead of cancelling the sibling.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := s.client.QueryLatestPrice(gctx, symbol)
		if err != nil {
			log.Printf("quote: latest price fetch failed for %s: %v", symbol, err)
			return nil
		}
		if price, ok := resp.MarketPrice(); ok {
			currentPrice = price
		}
		return nil
	})
	g.Go(func() error {
		resp, err := s.client.QueryMonthlyHistory(gctx, symbol)
		if err != nil {
			log.Printf("quote: history fetch failed for %s: %v", symbol, err)
			return nil
		}
		history = monthlyPricePoints(resp.MonthlyCloses())
		return nil
	})
	_ = g.Wait()

	if currentPrice > 0 && len(history) > 0 {
		return model.QuoteRecord{
			Symbol:       symbol,
			Name:         refdata.CompanyName(symbol),
			CurrentPrice: currentPrice,
			PriceHistory: Densify(history),
			LastUpdated:  now,
			Provenance:   model.ProvenanceLive,
		}
	}

	if ref, ok := refdata.LookupQuote(symbol); ok {
		log.Printf("quote: falling back to reference data for %s", symbol)
		return model.QuoteRecord{
			Symbol:       symbol,
			Name:         ref.Name,
			CurrentPrice: ref.CurrentPrice,
			PriceHistory: Densify(ref.History),
			LastUpdated:  now,
			Provenance:   model.ProvenanceReference,
		}
	}

	log.Printf("quote: no data for %s, synthesizing placeholder record", symbol)
	return model.QuoteRecord{
		Symbol:       symbol,
		Name:         refdata.CompanyName(symbol),
		CurrentPrice: syntheticPrice,
		PriceHistory: []model.PricePoint{
			{Date: model.MonthOf(now), Price: syntheticPrice},
		},
		LastUpdated: now,
		Provenance:  model.ProvenanceSynthetic,
	}
}

// monthlyPricePoints converts upstream closes to monthly price points,
// rounded to two decimals. Yahoo occasionally emits two samples in the
// current month (month open plus latest trade); the later one wins so the
// series stays unique per month and sorted.
func monthlyPricePoints(closes []yahoo.MonthlyClose) []model.PricePoint {
	points := make([]model.PricePoint, 0, len(closes))
	for _, c := range closes {
		point := model.PricePoint{
			Date:  model.MonthOf(c.Timestamp),
			Price: roundPrice(c.Close),
		}
		if n := len(points); n > 0 && points[n-1].Date == point.Date {
			points[n-1] = point
			continue
		}
		points = append(points, point)
	}
	return points
}
