// Package handlers contains HTTP handlers for the investment dashboard API.
package handlers

import (
	"errors"
	"net/http"

	"github.com/investdash/investment-dashboard-backend/internal/apperrors"
	"github.com/investdash/investment-dashboard-backend/internal/api/response"
	"github.com/investdash/investment-dashboard-backend/internal/validation"
)

// handleServiceError maps service-layer errors onto HTTP status codes and
// writes a structured error response.
func handleServiceError(w http.ResponseWriter, err error) {
	var validationErr *validation.Error
	if errors.As(err, &validationErr) {
		response.RespondError(w, http.StatusBadRequest, "validation failed", validationErr.Fields)
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrFundNotFound),
		errors.Is(err, apperrors.ErrInvestmentNotFound),
		errors.Is(err, apperrors.ErrOverlapNotFound),
		errors.Is(err, apperrors.ErrNAVPointNotFound):
		response.RespondError(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, apperrors.ErrInvalidPeriod),
		errors.Is(err, apperrors.ErrInvalidDimension),
		errors.Is(err, apperrors.ErrInvalidUUID),
		errors.Is(err, apperrors.ErrInvalidID),
		errors.Is(err, apperrors.ErrInvalidDateRange),
		errors.Is(err, apperrors.ErrNegativeAmount),
		errors.Is(err, apperrors.ErrInvalidNAV),
		errors.Is(err, apperrors.ErrMissingRequiredField):
		response.RespondError(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, apperrors.ErrDuplicateEntry):
		response.RespondError(w, http.StatusConflict, err.Error(), nil)
	default:
		response.RespondError(w, http.StatusInternalServerError, "internal server error", nil)
	}
}
