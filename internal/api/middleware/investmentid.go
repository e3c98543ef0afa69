package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/investdash/investment-dashboard-backend/internal/api/response"
	"github.com/investdash/investment-dashboard-backend/internal/validation"
)

// ValidateInvestmentIDMiddleware validates that the investmentId URL
// parameter is present and is a valid UUID before the handler runs.
// Returns 400 Bad Request otherwise.
func ValidateInvestmentIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		investmentID := chi.URLParam(r, "investmentId")

		if investmentID == "" {
			response.RespondError(w, http.StatusBadRequest, "valid investment ID is required", "")
			return
		}

		if err := validation.ValidateUUID(investmentID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid investment ID format", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
