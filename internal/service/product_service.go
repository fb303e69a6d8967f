package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/invested-dashboard/backend/internal/apperrors"
	"github.com/invested-dashboard/backend/internal/model"
	"github.com/invested-dashboard/backend/internal/refdata"
)

// ProductService serves the static product catalog.
type ProductService struct {
	products []model.Product
	byID     map[uuid.UUID]model.Product
}

// NewProductService creates a ProductService over the compiled-in catalog.
func NewProductService() *ProductService {
	products := refdata.Products()
	byID := make(map[uuid.UUID]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &ProductService{products: products, byID: byID}
}

// List returns the full catalog in its canonical order.
func (s *ProductService) List() []model.Product {
	return s.products
}

// Get returns the product with the given ID, or apperrors.ErrProductNotFound.
func (s *ProductService) Get(id uuid.UUID) (model.Product, error) {
	product, ok := s.byID[id]
	if !ok {
		return model.Product{}, fmt.Errorf("%w: %s", apperrors.ErrProductNotFound, id)
	}
	return product, nil
}

// Search filters the catalog by a case-insensitive substring match against
// product name, category, and the maker's company name. An empty query
// returns the full catalog.
func (s *ProductService) Search(query string) []model.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.List()
	}

	matches := make([]model.Product, 0)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Category), query) ||
			strings.Contains(strings.ToLower(refdata.CompanyName(p.Symbol)), query) {
			matches = append(matches, p)
		}
	}
	return matches
}
