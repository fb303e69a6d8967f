package handlers_test

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/invested-dashboard/backend/internal/api/handlers"
	"github.com/invested-dashboard/backend/internal/model"
	"github.com/invested-dashboard/backend/internal/service"
	"github.com/invested-dashboard/backend/internal/testutil"
)

func newProductHandler(mock *testutil.MockYahooClient) *handlers.ProductHandler {
	return handlers.NewProductHandler(
		service.NewProductService(),
		service.NewInvestmentService(),
		newTestQuoteCache(mock),
	)
}

func findProduct(t *testing.T, name string) model.Product {
	t.Helper()
	for _, p := range service.NewProductService().List() {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("Product %q not in catalog", name)
	return model.Product{}
}

func TestProductHandler_ListProducts(t *testing.T) {
	handler := newProductHandler(testutil.NewMockYahooClient())

	req := httptest.NewRequest(http.MethodGet, "/api/products/", nil)
	w := httptest.NewRecorder()

	handler.ListProducts(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var products []model.Product
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(products) != 23 {
		t.Errorf("Expected 23 products, got %d", len(products))
	}
}

func TestProductHandler_SearchProducts(t *testing.T) {
	handler := newProductHandler(testutil.NewMockYahooClient())

	req := testutil.NewRequestWithQueryParams(
		http.MethodGet,
		"/api/products/search",
		map[string]string{"q": "xbox"},
	)
	w := httptest.NewRecorder()

	handler.SearchProducts(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var products []model.Product
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Xbox Series X" {
		t.Errorf("Expected exactly the Xbox Series X, got %+v", products)
	}
}

func TestProductHandler_GetProduct(t *testing.T) {
	t.Run("returns a catalog product", func(t *testing.T) {
		handler := newProductHandler(testutil.NewMockYahooClient())
		product := findProduct(t, "iPhone 15 Pro")

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/products/"+product.ID.String(),
			map[string]string{"uuid": product.ID.String()},
		)
		w := httptest.NewRecorder()

		handler.GetProduct(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var got model.Product
		if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if got.ID != product.ID || got.Name != product.Name {
			t.Errorf("Expected %s, got %+v", product.Name, got)
		}
	})

	t.Run("returns 404 for an unknown ID", func(t *testing.T) {
		handler := newProductHandler(testutil.NewMockYahooClient())
		id := uuid.NewString()

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/products/"+id,
			map[string]string{"uuid": id},
		)
		w := httptest.NewRecorder()

		handler.GetProduct(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})

	t.Run("returns 400 for a malformed ID", func(t *testing.T) {
		handler := newProductHandler(testutil.NewMockYahooClient())

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/products/not-a-uuid",
			map[string]string{"uuid": "not-a-uuid"},
		)
		w := httptest.NewRecorder()

		handler.GetProduct(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

func TestProductHandler_GetInvestment(t *testing.T) {
	t.Run("computes the investment result from live data", func(t *testing.T) {
		// Mock history: 150 in 2023-01 rising by 1 per month, so the
		// purchase price at the September 2023 release is 158.
		mock := testutil.NewMockYahooClient()
		handler := newProductHandler(mock)
		product := findProduct(t, "iPhone 15 Pro")

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/products/"+product.ID.String()+"/investment",
			map[string]string{"uuid": product.ID.String()},
		)
		w := httptest.NewRecorder()

		handler.GetInvestment(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var response handlers.InvestmentResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if response.Symbol != "AAPL" || response.Company != "Apple Inc." {
			t.Errorf("Unexpected company fields: %+v", response)
		}
		if response.OriginalInvestment != 999 {
			t.Errorf("Expected originalInvestment 999, got %v", response.OriginalInvestment)
		}
		if response.HistoricalPrice != 158 {
			t.Errorf("Expected historicalPrice 158, got %v", response.HistoricalPrice)
		}
		if response.CurrentPrice != 200 {
			t.Errorf("Expected currentPrice 200, got %v", response.CurrentPrice)
		}

		wantShares := math.Round(999.0/158.0*10000) / 10000
		if response.Shares != wantShares {
			t.Errorf("Expected shares %v, got %v", wantShares, response.Shares)
		}

		if len(response.Timeline) == 0 {
			t.Fatal("Expected non-empty timeline")
		}
		first := response.Timeline[0]
		if first.Date != "2023-09-22" {
			t.Errorf("Expected timeline to start at the release date, got %s", first.Date)
		}
		if first.Value != 999 {
			t.Errorf("Expected first timeline value 999, got %v", first.Value)
		}
		for i := 1; i < len(response.Timeline); i++ {
			if response.Timeline[i-1].Date >= response.Timeline[i].Date {
				t.Errorf("Timeline not ascending at index %d: %s >= %s",
					i, response.Timeline[i-1].Date, response.Timeline[i].Date)
			}
		}
	})

	t.Run("works for products outside the live data window via fallback", func(t *testing.T) {
		// Upstream down: the quote degrades to reference data and the
		// calculation still succeeds.
		mock := testutil.NewMockYahooClient().WithEmptyResponses()
		handler := newProductHandler(mock)
		product := findProduct(t, "Xbox Series X")

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/products/"+product.ID.String()+"/investment",
			map[string]string{"uuid": product.ID.String()},
		)
		w := httptest.NewRecorder()

		handler.GetInvestment(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var response handlers.InvestmentResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.Company != "Microsoft Corp." {
			t.Errorf("Expected Microsoft Corp., got %s", response.Company)
		}
		if response.CurrentValue <= 0 {
			t.Errorf("Expected positive current value, got %v", response.CurrentValue)
		}
	})
}
