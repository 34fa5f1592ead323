package handlers

import (
	"net/http"

	"github.com/benx421/banking/internal/service"
)

// UpsertAccount handles PUT /api/v1/users/{userId}/accounts
func (h *Handler) UpsertAccount(w http.ResponseWriter, r *http.Request) {
	var input service.AccountInput
	if !h.decodeBody(w, r, &input) {
		return
	}

	result := h.accountService.CreateAccount(r.Context(), r.PathValue("userId"), input)
	if !result.Ok() {
		h.writeError(w, result.Err())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"accountId": result.Value()})
}

// DeleteAccount handles DELETE /api/v1/accounts/{accountId}
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	result := h.accountService.DeleteAccount(r.Context(), r.PathValue("accountId"))
	if !result.Ok() {
		h.writeError(w, result.Err())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"accountId": result.Value()})
}
