package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/investdash/investment-dashboard-backend/internal/api/response"
	"github.com/investdash/investment-dashboard-backend/internal/model"
	"github.com/investdash/investment-dashboard-backend/internal/service"
	"github.com/investdash/investment-dashboard-backend/internal/validation"
)

// AnalysisHandler handles portfolio-analysis endpoints: the aggregated
// dashboard plus the individual performance, allocation and overlap views.
type AnalysisHandler struct {
	dashboardService   *service.DashboardService
	performanceService *service.PerformanceService
	allocationService  *service.AllocationService
	overlapService     *service.OverlapService
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(
	dashboardService *service.DashboardService,
	performanceService *service.PerformanceService,
	allocationService *service.AllocationService,
	overlapService *service.OverlapService,
) *AnalysisHandler {
	return &AnalysisHandler{
		dashboardService:   dashboardService,
		performanceService: performanceService,
		allocationService:  allocationService,
		overlapService:     overlapService,
	}
}

// GetDashboard handles GET /api/analysis/dashboard/{userId}
func (h *AnalysisHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := validation.ParseID(chi.URLParam(r, "userId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	dashboard, err := h.dashboardService.GetDashboard(userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, dashboard)
}

// GetPerformance handles GET /api/analysis/performance/{userId}?period=
func (h *AnalysisHandler) GetPerformance(w http.ResponseWriter, r *http.Request) {
	userID, err := validation.ParseID(chi.URLParam(r, "userId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	period, err := service.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	points, err := h.performanceService.HistoricalPerformance(userID, period)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, points)
}

// GetAllocation handles GET /api/analysis/allocation/{userId}?dimension=
func (h *AnalysisHandler) GetAllocation(w http.ResponseWriter, r *http.Request) {
	userID, err := validation.ParseID(chi.URLParam(r, "userId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	dimension := model.AllocationDimension(r.URL.Query().Get("dimension"))
	if dimension == "" {
		dimension = model.DimensionSector
	}

	allocations, err := h.allocationService.Aggregate(userID, dimension)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, allocations)
}

// GetOverlap handles GET /api/analysis/overlap/{userId}.
// With fund1_id and fund2_id query parameters it returns the single recorded
// pair (in either order) as a one-element list; without them it returns all
// overlaps among the user's invested funds.
func (h *AnalysisHandler) GetOverlap(w http.ResponseWriter, r *http.Request) {
	userID, err := validation.ParseID(chi.URLParam(r, "userId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	fund1 := r.URL.Query().Get("fund1_id")
	fund2 := r.URL.Query().Get("fund2_id")

	if fund1 != "" || fund2 != "" {
		fundID1, err := validation.ParseID(fund1)
		if err != nil {
			handleServiceError(w, err)
			return
		}
		fundID2, err := validation.ParseID(fund2)
		if err != nil {
			handleServiceError(w, err)
			return
		}

		detail, err := h.overlapService.PairOverlap(fundID1, fundID2)
		if err != nil {
			handleServiceError(w, err)
			return
		}

		response.RespondJSON(w, http.StatusOK, []model.OverlapDetail{detail})
		return
	}

	overlaps, err := h.overlapService.OverlapsForUser(userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, overlaps)
}
