package model

import (
	"time"

	"github.com/google/uuid"
)

// Product is one entry in the static product catalog. The catalog is
// compiled in and immutable for the lifetime of the process; IDs are fixed
// UUIDs so they stay stable across restarts.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Symbol      string    `json:"symbol"`
	Name        string    `json:"name"`
	RetailPrice float64   `json:"retailPrice"`
	ReleaseDate time.Time `json:"releaseDate"`
	Category    string    `json:"category"`
}
