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

// UserHandler handles user endpoints.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateUser(req); err != nil {
		handleServiceError(w, err)
		return
	}

	user, err := h.userService.CreateUser(req.Name, req.Email)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, user)
}

// GetUser handles GET /api/users/{userId}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := validation.ParseID(chi.URLParam(r, "userId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	user, err := h.userService.GetUser(userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, user)
}

// GetUsers handles GET /api/users
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.GetUsers()
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, users)
}
