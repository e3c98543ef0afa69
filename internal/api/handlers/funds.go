package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/investdash/investment-dashboard-backend/internal/api/request"
	"github.com/investdash/investment-dashboard-backend/internal/api/response"
	"github.com/investdash/investment-dashboard-backend/internal/service"
	"github.com/investdash/investment-dashboard-backend/internal/validation"
)

const (
	defaultFundsLimit = 100
	maxFundsLimit     = 500
)

// FundHandler handles fund endpoints, including NAV history ingestion.
type FundHandler struct {
	fundService *service.FundService
}

// NewFundHandler creates a new FundHandler.
func NewFundHandler(fundService *service.FundService) *FundHandler {
	return &FundHandler{fundService: fundService}
}

// CreateFund handles POST /api/funds
func (h *FundHandler) CreateFund(w http.ResponseWriter, r *http.Request) {
	var req request.FundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateFundBody(req); err != nil {
		handleServiceError(w, err)
		return
	}

	fund, err := h.fundService.CreateFund(req.Name, req.FundType, req.Isin, req.Nav)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, fund)
}

// GetFund handles GET /api/funds/{fundId}
func (h *FundHandler) GetFund(w http.ResponseWriter, r *http.Request) {
	fundID, err := validation.ParseID(chi.URLParam(r, "fundId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	fund, err := h.fundService.GetFund(fundID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, fund)
}

// GetFunds handles GET /api/funds?offset=&limit=
func (h *FundHandler) GetFunds(w http.ResponseWriter, r *http.Request) {
	offset := parseQueryInt(r, "offset", 0)
	limit := parseQueryInt(r, "limit", defaultFundsLimit)
	if limit > maxFundsLimit {
		limit = maxFundsLimit
	}

	funds, err := h.fundService.GetFunds(offset, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, funds)
}

// UpdateFund handles PUT /api/funds/{fundId}
func (h *FundHandler) UpdateFund(w http.ResponseWriter, r *http.Request) {
	fundID, err := validation.ParseID(chi.URLParam(r, "fundId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	var req request.FundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateFundBody(req); err != nil {
		handleServiceError(w, err)
		return
	}

	fund, err := h.fundService.UpdateFund(fundID, req.Name, req.FundType, req.Isin, req.Nav)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, fund)
}

// DeleteFund handles DELETE /api/funds/{fundId}
func (h *FundHandler) DeleteFund(w http.ResponseWriter, r *http.Request) {
	fundID, err := validation.ParseID(chi.URLParam(r, "fundId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if err := h.fundService.DeleteFund(fundID); err != nil {
		handleServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// AddNAVPoint handles POST /api/funds/{fundId}/nav
func (h *FundHandler) AddNAVPoint(w http.ResponseWriter, r *http.Request) {
	fundID, err := validation.ParseID(chi.URLParam(r, "fundId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	var req request.NAVPointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateNAVPoint(req); err != nil {
		handleServiceError(w, err)
		return
	}

	date, err := validation.ParseDate(req.Date)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid date format", err.Error())
		return
	}

	if err := h.fundService.AddNAVPoint(fundID, date, req.Nav); err != nil {
		handleServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, map[string]string{"status": "recorded"})
}

// GetFundHistory handles GET /api/funds/{fundId}/nav?start_date=&end_date=
func (h *FundHandler) GetFundHistory(w http.ResponseWriter, r *http.Request) {
	fundID, err := validation.ParseID(chi.URLParam(r, "fundId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	startDate, endDate, err := parseDateRange(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid date range", err.Error())
		return
	}

	points, err := h.fundService.GetFundHistory(fundID, startDate, endDate)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, points)
}

// parseDateRange reads optional start_date/end_date query parameters,
// defaulting to the last year when absent.
func parseDateRange(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	startDate := now.AddDate(-1, 0, 0)
	endDate := now

	if s := r.URL.Query().Get("start_date"); s != "" {
		parsed, err := validation.ParseDate(s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		startDate = parsed
	}
	if s := r.URL.Query().Get("end_date"); s != "" {
		parsed, err := validation.ParseDate(s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		endDate = parsed
	}
	return startDate, endDate, nil
}

func parseQueryInt(r *http.Request, key string, fallback int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
