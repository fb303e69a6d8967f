package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/invested-dashboard/backend/internal/refdata"
	"github.com/invested-dashboard/backend/internal/service"
	"github.com/invested-dashboard/backend/internal/validation"
)

// StockHandler handles stock quote HTTP requests.
type StockHandler struct {
	quotes *service.QuoteCache
}

// NewStockHandler creates a new StockHandler backed by the quote cache.
func NewStockHandler(quotes *service.QuoteCache) *StockHandler {
	return &StockHandler{quotes: quotes}
}

// ListSymbols handles GET requests for the known ticker universe.
func (h *StockHandler) ListSymbols(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, refdata.Symbols())
}

// GetStock handles GET requests for one symbol's quote record. The record
// always has a non-empty history; the 500 branch below is defensive, kept
// for the wire contract with the UI.
func (h *StockHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(chi.URLParam(r, "symbol"))
	if err := validation.ValidateSymbol(symbol); err != nil {
		respondError(w, http.StatusBadRequest, "invalid symbol")
		return
	}

	record := h.quotes.Get(r.Context(), symbol)
	if len(record.PriceHistory) == 0 {
		respondError(w, http.StatusInternalServerError, "unable to fetch stock data")
		return
	}

	respondJSON(w, http.StatusOK, record)
}

// RefreshResponse represents the outcome of a forced refresh.
type RefreshResponse struct {
	Status   string   `json:"status"`
	Symbols  []string `json:"symbols"`
	Resolved int      `json:"resolved"`
}

// Refresh handles POST requests that invalidate the cache and re-resolve
// every reference ticker.
func (h *StockHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	symbols := refdata.Symbols()
	records := h.quotes.RefreshAll(r.Context(), symbols)

	respondJSON(w, http.StatusOK, RefreshResponse{
		Status:   "refreshed",
		Symbols:  symbols,
		Resolved: len(records),
	})
}
