package handlers

import (
	"log/slog"
	"net/http"

	"github.com/benx421/banking/internal/config"
	"github.com/benx421/banking/internal/db"
	"github.com/benx421/banking/internal/middleware"
	"github.com/benx421/banking/internal/service"
	"github.com/benx421/banking/internal/store"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	database *db.DB,
	cfg *config.Config,
	logger *slog.Logger,
) http.Handler {
	userService := service.NewUserService(store.NewUserStore(database), cfg.App.BcryptCost, logger)
	accountService := service.NewAccountService(store.NewAccountStore(database), logger)
	transactionService := service.NewTransactionService(store.NewTransactionStore(database), logger)

	handler := NewHandler(userService, accountService, transactionService, database, logger)

	var finalHandler http.Handler = handler.Routes()

	finalHandler = middleware.Recoverer(logger)(finalHandler)
	finalHandler = middleware.RequestLogger(logger)(finalHandler)

	return finalHandler
}

// Routes registers every endpoint on a new ServeMux
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.GetHealth)

	mux.HandleFunc("POST /api/v1/users", h.CreateUser)
	mux.HandleFunc("GET /api/v1/users/{userId}", h.GetUser)
	mux.HandleFunc("DELETE /api/v1/users/{userId}", h.DeleteUser)
	mux.HandleFunc("PUT /api/v1/users/{userId}/accounts", h.UpsertAccount)

	mux.HandleFunc("DELETE /api/v1/accounts/{accountId}", h.DeleteAccount)
	mux.HandleFunc("GET /api/v1/accounts/{accountId}/transactions", h.ListTransactions)

	mux.HandleFunc("POST /api/v1/transactions", h.CreateTransaction)
	mux.HandleFunc("GET /api/v1/transactions/{transactionId}", h.GetTransaction)

	return mux
}
