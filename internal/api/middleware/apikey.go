// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/investdash/investment-dashboard-backend/internal/api/response"
)

// APIKey guards privileged internal endpoints with a shared key checked
// against the X-API-Key header. When no key is configured the endpoint is
// disabled rather than left open.
func APIKey(configuredKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if configuredKey == "" {
				response.RespondError(w, http.StatusServiceUnavailable, "endpoint disabled", "No API key configured")
				return
			}

			provided := r.Header.Get("X-API-Key")
			if provided == "" {
				response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing API key")
				return
			}
			if subtle.ConstantTimeCompare([]byte(provided), []byte(configuredKey)) != 1 {
				response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
