package service

import (
	"context"

	"github.com/benx421/banking/internal/models"
	"github.com/benx421/banking/internal/store"
	"github.com/google/uuid"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// UserStore persists users
type UserStore interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// AccountStore upserts and detaches accounts
type AccountStore interface {
	Upsert(ctx context.Context, userID uuid.UUID, account *models.Account) (*models.Account, error)
	Detach(ctx context.Context, accountID uuid.UUID) error
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*models.Account, error)
}

// TransactionStore records and lists transactions
type TransactionStore interface {
	Create(ctx context.Context, txn *models.Transaction) (*models.Transaction, error)
	FindAllByAccount(ctx context.Context, accountID uuid.UUID) ([]models.Transaction, error)
	FindByTransactionID(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error)
}

// UserManager handles user operations
type UserManager interface {
	CreateUser(ctx context.Context, input UserInput) Result[uuid.UUID]
	GetUser(ctx context.Context, userID string) Result[*models.User]
	DeleteUser(ctx context.Context, userID string) Result[uuid.UUID]
}

// AccountManager handles account operations
type AccountManager interface {
	CreateAccount(ctx context.Context, userID string, input AccountInput) Result[uuid.UUID]
	DeleteAccount(ctx context.Context, accountID string) Result[uuid.UUID]
}

// TransactionManager handles transaction operations
type TransactionManager interface {
	CreateTransaction(ctx context.Context, input TransactionInput) Result[uuid.UUID]
	GetTransaction(ctx context.Context, transactionID string) Result[*models.Transaction]
	ListTransactions(ctx context.Context, accountID string) Result[[]models.Transaction]
}

// Ensure concrete types implement interfaces
var (
	_ UserStore        = (*store.UserStore)(nil)
	_ AccountStore     = (*store.AccountStore)(nil)
	_ TransactionStore = (*store.TransactionStore)(nil)

	_ UserManager        = (*UserService)(nil)
	_ AccountManager     = (*AccountService)(nil)
	_ TransactionManager = (*TransactionService)(nil)
)
