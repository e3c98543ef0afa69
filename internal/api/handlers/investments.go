package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/investdash/investment-dashboard-backend/internal/api/request"
	"github.com/investdash/investment-dashboard-backend/internal/api/response"
	"github.com/investdash/investment-dashboard-backend/internal/service"
	"github.com/investdash/investment-dashboard-backend/internal/validation"
)

// InvestmentHandler handles investment (lot) endpoints.
type InvestmentHandler struct {
	investmentService *service.InvestmentService
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService *service.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// CreateInvestment handles POST /api/investments
func (h *InvestmentHandler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	var req request.InvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateInvestmentBody(req); err != nil {
		handleServiceError(w, err)
		return
	}

	date, err := validation.ParseDate(req.InvestmentDate)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid date format", err.Error())
		return
	}

	investment, err := h.investmentService.CreateInvestment(req.UserID, req.FundID, date, req.Amount, req.NavAtInvestment)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, investment)
}

// GetInvestment handles GET /api/investments/{investmentId}
func (h *InvestmentHandler) GetInvestment(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "investmentId")

	investment, err := h.investmentService.GetInvestment(investmentID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, investment)
}

// GetUserInvestments handles GET /api/users/{userId}/investments
func (h *InvestmentHandler) GetUserInvestments(w http.ResponseWriter, r *http.Request) {
	userID, err := validation.ParseID(chi.URLParam(r, "userId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	investments, err := h.investmentService.GetUserInvestments(userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, investments)
}

// UpdateInvestment handles PUT /api/investments/{investmentId}
func (h *InvestmentHandler) UpdateInvestment(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "investmentId")

	var req request.InvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateInvestmentBody(req); err != nil {
		handleServiceError(w, err)
		return
	}

	date, err := validation.ParseDate(req.InvestmentDate)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid date format", err.Error())
		return
	}

	investment, err := h.investmentService.UpdateInvestment(investmentID, req.UserID, req.FundID, date, req.Amount, req.NavAtInvestment)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, investment)
}

// DeleteInvestment handles DELETE /api/investments/{investmentId}
func (h *InvestmentHandler) DeleteInvestment(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "investmentId")

	if err := h.investmentService.DeleteInvestment(investmentID); err != nil {
		handleServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
