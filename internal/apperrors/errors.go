package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrProductNotFound indicates that a product with the given ID is not
	// in the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrSymbolNotFound indicates that a symbol lookup returned no results.
	ErrSymbolNotFound = errors.New("symbol not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrInvalidSymbol indicates that a ticker symbol is empty or malformed.
	ErrInvalidSymbol = errors.New("invalid ticker symbol")
)

// Calculation errors represent precondition violations in the investment
// computation. Unlike quote resolution, which always degrades to some record,
// these propagate to the caller: silently producing Inf or NaN would corrupt
// every figure downstream.
var (
	// ErrQuoteMissing indicates that the calculator was handed an empty
	// quote record. Quote resolution never produces one, so this guards
	// against callers that bypass it.
	ErrQuoteMissing = errors.New("quote data missing")

	// ErrZeroHistoricalPrice indicates that the price at the purchase date
	// resolved to zero, making the share count undefined.
	ErrZeroHistoricalPrice = errors.New("historical price is zero")
)
