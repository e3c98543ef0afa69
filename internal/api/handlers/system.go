package handlers

import (
	"net/http"

	"github.com/investdash/investment-dashboard-backend/internal/api/response"
	"github.com/investdash/investment-dashboard-backend/internal/service"
)

// SystemHandler handles operational endpoints: health, version and the
// internal NAV sync trigger.
type SystemHandler struct {
	systemService  *service.SystemService
	navSyncService *service.NavSyncService
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(systemService *service.SystemService, navSyncService *service.NavSyncService) *SystemHandler {
	return &SystemHandler{
		systemService:  systemService,
		navSyncService: navSyncService,
	}
}

// Health handles GET /api/system/health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.systemService.Health(); err != nil {
		response.RespondError(w, http.StatusServiceUnavailable, "unhealthy", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Version handles GET /api/system/version
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	info, err := h.systemService.Version()
	if err != nil {
		handleServiceError(w, err)
		return
	}
	response.RespondJSON(w, http.StatusOK, info)
}

// TriggerNavSync handles POST /api/system/nav-sync. The route is guarded by
// the API key middleware; the sync itself runs synchronously and reports how
// many funds were refreshed.
func (h *SystemHandler) TriggerNavSync(w http.ResponseWriter, r *http.Request) {
	updated, err := h.navSyncService.Sync()
	if err != nil {
		handleServiceError(w, err)
		return
	}
	response.RespondJSON(w, http.StatusOK, map[string]int{"funds_updated": updated})
}
