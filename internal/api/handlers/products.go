package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invested-dashboard/backend/internal/apperrors"
	"github.com/invested-dashboard/backend/internal/model"
	"github.com/invested-dashboard/backend/internal/service"
)

// ProductHandler handles product catalog and investment calculation requests.
type ProductHandler struct {
	products    *service.ProductService
	investments *service.InvestmentService
	quotes      *service.QuoteCache
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(products *service.ProductService, investments *service.InvestmentService, quotes *service.QuoteCache) *ProductHandler {
	return &ProductHandler{
		products:    products,
		investments: investments,
		quotes:      quotes,
	}
}

// ListProducts handles GET requests for the full product catalog.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.products.List())
}

// SearchProducts handles GET requests filtering the catalog by the q query
// parameter.
func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.products.Search(r.URL.Query().Get("q")))
}

// GetProduct handles GET requests for a single product by ID.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := h.lookupProduct(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// InvestmentResponse is the wire shape of an investment calculation. All
// monetary figures are rounded here, at the presentation boundary; shares
// keep four decimals.
type InvestmentResponse struct {
	ProductID          string          `json:"productId"`
	ProductName        string          `json:"productName"`
	Company            string          `json:"company"`
	Symbol             string          `json:"symbol"`
	ReleaseDate        string          `json:"releaseDate"`
	OriginalInvestment float64         `json:"originalInvestment"`
	Shares             float64         `json:"shares"`
	HistoricalPrice    float64         `json:"historicalPrice"`
	CurrentPrice       float64         `json:"currentPrice"`
	CurrentValue       float64         `json:"currentValue"`
	Gain               float64         `json:"gain"`
	GainPercent        float64         `json:"gainPercent"`
	Timeline           []TimelineEntry `json:"timeline"`
}

// TimelineEntry is one charting point of investment value over time.
type TimelineEntry struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// GetInvestment handles GET requests computing the investment result for a
// product. Calculation precondition violations surface as 500; quote
// resolution itself cannot fail.
func (h *ProductHandler) GetInvestment(w http.ResponseWriter, r *http.Request) {
	product, ok := h.lookupProduct(w, r)
	if !ok {
		return
	}

	quote := h.quotes.Get(r.Context(), product.Symbol)
	result, err := h.investments.Compute(product, quote)
	if err != nil {
		if errors.Is(err, apperrors.ErrZeroHistoricalPrice) || errors.Is(err, apperrors.ErrQuoteMissing) {
			respondError(w, http.StatusInternalServerError, "unable to compute investment")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, newInvestmentResponse(result))
}

// lookupProduct resolves the uuid URL parameter to a catalog product,
// writing the error response itself when resolution fails.
func (h *ProductHandler) lookupProduct(w http.ResponseWriter, r *http.Request) (model.Product, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "uuid"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid UUID format")
		return model.Product{}, false
	}

	product, err := h.products.Get(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "product not found")
		return model.Product{}, false
	}
	return product, true
}

func newInvestmentResponse(result model.InvestmentResult) InvestmentResponse {
	timeline := make([]TimelineEntry, len(result.Timeline))
	for i, point := range result.Timeline {
		timeline[i] = TimelineEntry{
			Date:  point.Date.Format("2006-01-02"),
			Value: round2(point.Value),
		}
	}

	return InvestmentResponse{
		ProductID:          result.Product.ID.String(),
		ProductName:        result.Product.Name,
		Company:            result.CompanyName,
		Symbol:             result.Product.Symbol,
		ReleaseDate:        result.Product.ReleaseDate.Format("2006-01-02"),
		OriginalInvestment: result.Product.RetailPrice,
		Shares:             round4(result.Shares),
		HistoricalPrice:    round2(result.HistoricalPrice),
		CurrentPrice:       round2(result.CurrentPrice),
		CurrentValue:       round2(result.CurrentValue),
		Gain:               round2(result.Gain),
		GainPercent:        round2(result.GainPercent),
		Timeline:           timeline,
	}
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func round4(d decimal.Decimal) float64 {
	return d.Round(4).InexactFloat64()
}
