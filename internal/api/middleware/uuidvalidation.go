package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/invested-dashboard/backend/internal/api/response"
	"github.com/invested-dashboard/backend/internal/validation"
)

// ValidateUUIDMiddleware validates that the uuid URL parameter is present
// and well-formed, returning 400 Bad Request otherwise. Applied to routes
// that address a product by ID.
func ValidateUUIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "uuid")

		if id == "" {
			response.RespondError(w, http.StatusBadRequest, "valid UUID is required", "")
			return
		}

		if err := validation.ValidateUUID(id); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid UUID format", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
