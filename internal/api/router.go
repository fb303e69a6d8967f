package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/invested-dashboard/backend/internal/api/handlers"
	custommiddleware "github.com/invested-dashboard/backend/internal/api/middleware"
	"github.com/invested-dashboard/backend/internal/config"
	"github.com/invested-dashboard/backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(quotes *service.QuoteCache, products *service.ProductService, investments *service.InvestmentService, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler()
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/stocks", func(r chi.Router) {
			stockHandler := handlers.NewStockHandler(quotes)
			r.Get("/", stockHandler.ListSymbols)
			r.Post("/refresh", stockHandler.Refresh)
			r.Get("/{symbol}", stockHandler.GetStock)
		})

		r.Route("/products", func(r chi.Router) {
			productHandler := handlers.NewProductHandler(products, investments, quotes)
			r.Get("/", productHandler.ListProducts)
			r.Get("/search", productHandler.SearchProducts)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", productHandler.GetProduct)
				r.Get("/investment", productHandler.GetInvestment)
			})
		})
	})

	return r
}
