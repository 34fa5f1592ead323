package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/benx421/banking/internal/service"
)

const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   service.ErrorCode `json:"error"`
	Message string            `json:"message"`
}

func statusForCode(code service.ErrorCode) int {
	switch code {
	case service.ErrCodeMapping, service.ErrCodePassword:
		return http.StatusBadRequest
	case service.ErrCodeUserNotFound, service.ErrCodeAccountNotFound, service.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case service.ErrCodeAccountAlreadyExists, service.ErrCodeTransactionAlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, svcErr *service.ServiceError) {
	h.writeJSON(w, statusForCode(svcErr.Code), ErrorResponse{
		Error:   svcErr.Code,
		Message: svcErr.Message,
	})
}

// decodeBody reads a JSON request body into dst. Malformed bodies are reported
// as mapping errors.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	err := decoder.Decode(dst)
	if err == nil && decoder.More() {
		err = errors.New("body must contain a single JSON object")
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("request body is empty")
		}
		h.writeError(w, &service.ServiceError{
			Code:    service.ErrCodeMapping,
			Message: fmt.Sprintf("invalid request body: %v", err),
		})
		return false
	}
	return true
}
