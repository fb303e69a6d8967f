package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/invested-dashboard/backend/internal/api"
	"github.com/invested-dashboard/backend/internal/config"
	"github.com/invested-dashboard/backend/internal/service"
	"github.com/invested-dashboard/backend/internal/yahoo"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create the quote pipeline: upstream client -> resolver -> cache
	yahooClient := yahoo.NewFinanceClient(cfg.Quote.BaseURL, cfg.Quote.Timeout)
	quoteService := service.NewQuoteService(yahooClient)
	quoteCache := service.NewQuoteCache(quoteService, cfg.Quote.CacheTTL)

	// Create catalog and calculator services
	productService := service.NewProductService()
	investmentService := service.NewInvestmentService()

	// Create router
	router := api.NewRouter(quoteCache, productService, investmentService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
