// Package validation provides shared input validation for HTTP parameters.
package validation

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/invested-dashboard/backend/internal/apperrors"
)

// Ticker symbols: 1-10 characters, uppercase letters possibly followed by
// digits, dots, or dashes (e.g. "AAPL", "BRK.B").
var symbolPattern = regexp.MustCompile(`^[A-Z][A-Z0-9.\-]{0,9}$`)

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidUUID, id)
	}
	return nil
}

// ValidateSymbol checks that a ticker symbol is plausible. The symbol must
// already be upper-cased by the caller.
func ValidateSymbol(symbol string) error {
	if !symbolPattern.MatchString(symbol) {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidSymbol, symbol)
	}
	return nil
}
