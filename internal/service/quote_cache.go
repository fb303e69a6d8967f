package service

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/invested-dashboard/backend/internal/model"
)

// cacheEntry pairs a resolved record with its fetch time. Entries are
// superseded by overwrite, never mutated in place.
type cacheEntry struct {
	record    model.QuoteRecord
	fetchedAt time.Time
}

// QuoteCache memoizes quote resolution per symbol within a freshness window.
// The key set is unbounded but the ticker universe is small and static, so
// overwrite-on-refresh is the only eviction.
type QuoteCache struct {
	resolver QuoteResolver
	ttl      time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry
}

// NewQuoteCache creates a cache in front of resolver with the given
// freshness window.
func NewQuoteCache(resolver QuoteResolver, ttl time.Duration) *QuoteCache {
	return &QuoteCache{
		resolver: resolver,
		ttl:      ttl,
		entries:  make(map[string]cacheEntry),
	}
}

// Get returns the cached record for a symbol if it is younger than the
// freshness window, otherwise resolves synchronously and stores the result.
// Concurrent misses for the same symbol may resolve twice; the later write
// wins, which is harmless for idempotent quote data.
func (c *QuoteCache) Get(ctx context.Context, symbol string) model.QuoteRecord {
	c.mu.Lock()
	if entry, ok := c.entries[symbol]; ok && time.Since(entry.fetchedAt) < c.ttl {
		c.mu.Unlock()
		return entry.record
	}
	c.mu.Unlock()

	record := c.resolver.Resolve(ctx, symbol)

	c.mu.Lock()
	c.entries[symbol] = cacheEntry{record: record, fetchedAt: time.Now()}
	c.mu.Unlock()

	return record
}

// InvalidateAll drops every cached entry, forcing the next Get per symbol to
// re-resolve. Used by the manual refresh action and by tests.
func (c *QuoteCache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}

// RefreshAll invalidates the cache and re-resolves the given symbols
// concurrently. Records are returned in the order of symbols.
func (c *QuoteCache) RefreshAll(ctx context.Context, symbols []string) []model.QuoteRecord {
	c.InvalidateAll()

	records := make([]model.QuoteRecord, len(symbols))
	g, gctx := errgroup.WithContext(ctx)
	for i, symbol := range symbols {
		i, symbol := i, symbol
		g.Go(func() error {
			records[i] = c.Get(gctx, symbol)
			return nil
		})
	}
	_ = g.Wait()

	return records
}
