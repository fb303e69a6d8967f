package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/invested-dashboard/backend/internal/model"
)

// stubResolver counts resolutions and hands out records stamped with a
// unique sequence number, so tests can tell cached copies from fresh ones.
type stubResolver struct {
	mu      sync.Mutex
	calls   int
	symbols []string
}

func (r *stubResolver) Resolve(_ context.Context, symbol string) model.QuoteRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return model.QuoteRecord{
		Symbol:       symbol,
		Name:         symbol + " Inc.",
		CurrentPrice: float64(r.calls),
		PriceHistory: []model.PricePoint{
			{Date: model.Month{Year: 2024, Mon: 1}, Price: 100},
		},
		LastUpdated: time.Now().UTC(),
		Provenance:  model.ProvenanceSynthetic,
	}
}

func (r *stubResolver) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func TestQuoteCache_Get_HitWithinFreshnessWindow(t *testing.T) {
	resolver := &stubResolver{}
	cache := NewQuoteCache(resolver, 5*time.Minute)
	ctx := context.Background()

	first := cache.Get(ctx, "AAPL")
	second := cache.Get(ctx, "AAPL")

	assert.Equal(t, 1, resolver.callCount())
	assert.Equal(t, first, second)
}

func TestQuoteCache_Get_StaleEntryTriggersOneResolution(t *testing.T) {
	resolver := &stubResolver{}
	cache := NewQuoteCache(resolver, 20*time.Millisecond)
	ctx := context.Background()

	first := cache.Get(ctx, "AAPL")
	time.Sleep(30 * time.Millisecond)
	second := cache.Get(ctx, "AAPL")

	assert.Equal(t, 2, resolver.callCount())
	assert.NotEqual(t, first.CurrentPrice, second.CurrentPrice)
}

func TestQuoteCache_Get_SymbolsCachedIndependently(t *testing.T) {
	resolver := &stubResolver{}
	cache := NewQuoteCache(resolver, 5*time.Minute)
	ctx := context.Background()

	cache.Get(ctx, "AAPL")
	cache.Get(ctx, "MSFT")
	cache.Get(ctx, "AAPL")

	assert.Equal(t, 2, resolver.callCount())
}

func TestQuoteCache_InvalidateAll_ForcesResolution(t *testing.T) {
	resolver := &stubResolver{}
	cache := NewQuoteCache(resolver, 5*time.Minute)
	ctx := context.Background()

	cache.Get(ctx, "AAPL")
	cache.InvalidateAll()
	cache.Get(ctx, "AAPL")

	assert.Equal(t, 2, resolver.callCount())
}

func TestQuoteCache_RefreshAll_ResolvesEverySymbolOnce(t *testing.T) {
	resolver := &stubResolver{}
	cache := NewQuoteCache(resolver, 5*time.Minute)
	ctx := context.Background()

	// Populate, then refresh: cached entries must not satisfy the refresh.
	cache.Get(ctx, "AAPL")

	symbols := []string{"AAPL", "BBY", "MSFT", "NKE", "TSLA"}
	records := cache.RefreshAll(ctx, symbols)

	assert.Equal(t, 1+len(symbols), resolver.callCount())
	assert.Len(t, records, len(symbols))
	for i, symbol := range symbols {
		assert.Equal(t, symbol, records[i].Symbol)
	}
}
