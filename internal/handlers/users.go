package handlers

import (
	"net/http"

	"github.com/benx421/banking/internal/service"
)

// CreateUser handles POST /api/v1/users
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var input service.UserInput
	if !h.decodeBody(w, r, &input) {
		return
	}

	result := h.userService.CreateUser(r.Context(), input)
	if !result.Ok() {
		h.writeError(w, result.Err())
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]any{"userId": result.Value()})
}

// GetUser handles GET /api/v1/users/{userId}
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	result := h.userService.GetUser(r.Context(), r.PathValue("userId"))
	if !result.Ok() {
		h.writeError(w, result.Err())
		return
	}

	h.writeJSON(w, http.StatusOK, toUserResponse(result.Value()))
}

// DeleteUser handles DELETE /api/v1/users/{userId}
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	result := h.userService.DeleteUser(r.Context(), r.PathValue("userId"))
	if !result.Ok() {
		h.writeError(w, result.Err())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"userId": result.Value()})
}
