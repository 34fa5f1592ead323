package handlers

import (
	"net/http"

	"github.com/benx421/banking/internal/service"
)

// CreateTransaction handles POST /api/v1/transactions
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var input service.TransactionInput
	if !h.decodeBody(w, r, &input) {
		return
	}

	result := h.transactionService.CreateTransaction(r.Context(), input)
	if !result.Ok() {
		h.writeError(w, result.Err())
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]any{"transactionId": result.Value()})
}

// GetTransaction handles GET /api/v1/transactions/{transactionId}
func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	result := h.transactionService.GetTransaction(r.Context(), r.PathValue("transactionId"))
	if !result.Ok() {
		h.writeError(w, result.Err())
		return
	}

	h.writeJSON(w, http.StatusOK, toTransactionResponse(result.Value()))
}

// ListTransactions handles GET /api/v1/accounts/{accountId}/transactions
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	result := h.transactionService.ListTransactions(r.Context(), r.PathValue("accountId"))
	if !result.Ok() {
		h.writeError(w, result.Err())
		return
	}

	transactions := result.Value()
	body := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		body = append(body, toTransactionResponse(&transactions[i]))
	}

	h.writeJSON(w, http.StatusOK, body)
}
