// Package handlers implements HTTP handlers for the bank API.
package handlers

import (
	"log/slog"

	"github.com/benx421/banking/internal/service"
)

// Handler serves every endpoint of the bank API on top of the services
type Handler struct {
	userService        service.UserManager
	accountService     service.AccountManager
	transactionService service.TransactionManager
	healthChecker      service.HealthChecker
	logger             *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	userService service.UserManager,
	accountService service.AccountManager,
	transactionService service.TransactionManager,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		userService:        userService,
		accountService:     accountService,
		transactionService: transactionService,
		healthChecker:      healthChecker,
		logger:             logger,
	}
}
