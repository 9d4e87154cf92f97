package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jayeshafre/jwt-auth-app/internal/service"
	"github.com/jayeshafre/jwt-auth-app/pkg/pagination"
	"github.com/jayeshafre/jwt-auth-app/pkg/validator"
)

// AdminHandler handles HTTP requests for administrative user management.
type AdminHandler struct {
	service *service.AuthService
}

// NewAdminHandler creates a new admin HTTP handler.
func NewAdminHandler(svc *service.AuthService) *AdminHandler {
	return &AdminHandler{service: svc}
}

// SetRoleRequest is the JSON request body for changing a user's role.
type SetRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin moderator"`
}

// SetStatusRequest is the JSON request body for activating or deactivating
// a user account.
type SetStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// SetVerifiedRequest is the JSON request body for marking a user's email
// address as verified.
type SetVerifiedRequest struct {
	IsVerified *bool `json:"is_verified" validate:"required"`
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromRequest(r)

	result, err := h.service.ListUsers(r.Context(), params)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: result})
}

// SetUserRole handles PUT /api/admin/users/{id}/role
func (h *AdminHandler) SetUserRole(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "user id is required"},
		})
		return
	}

	var req SetRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		writeValidationError(w, err)
		return
	}

	user, err := h.service.SetUserRole(r.Context(), userID, req.Role)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: user})
}

// SetUserStatus handles PUT /api/admin/users/{id}/status
func (h *AdminHandler) SetUserStatus(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "user id is required"},
		})
		return
	}

	var req SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		writeValidationError(w, err)
		return
	}

	user, err := h.service.SetUserStatus(r.Context(), userID, *req.IsActive)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: user})
}

// SetUserVerified handles PUT /api/admin/users/{id}/verified
func (h *AdminHandler) SetUserVerified(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "user id is required"},
		})
		return
	}

	var req SetVerifiedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		writeValidationError(w, err)
		return
	}

	user, err := h.service.SetUserVerified(r.Context(), userID, *req.IsVerified)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: user})
}
