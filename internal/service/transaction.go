package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/benx421/banking/internal/models"
	"github.com/google/uuid"
)

// TransactionService records transactions and lists them per account
type TransactionService struct {
	transactions TransactionStore
	logger       *slog.Logger
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactions TransactionStore, logger *slog.Logger) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		logger:       logger,
	}
}

// CreateTransaction records a transaction between two persisted accounts
func (s *TransactionService) CreateTransaction(ctx context.Context, input TransactionInput) Result[uuid.UUID] {
	s.logger.Info("creating transaction",
		"transaction_id", input.TransactionID,
		"origin_account_id", input.OriginAccountID,
		"target_account_id", input.TargetAccountID,
		"amount", input.Amount.String(),
	)

	txn, err := toTransaction(input)
	if err != nil {
		s.logger.Error("unable to map transaction input", "error", err)
		return invalidInputFailure[uuid.UUID](err)
	}

	stored, err := s.transactions.Create(ctx, txn)
	switch {
	case errors.Is(err, models.ErrDuplicate):
		s.logger.Error("transaction already exists", "transaction_id", txn.TransactionID)
		return Failure[uuid.UUID](ErrCodeTransactionAlreadyExists,
			fmt.Sprintf("transaction with transactionId '%s' already exists", txn.TransactionID), err)
	case errors.Is(err, models.ErrReferenceNotFound):
		s.logger.Error("account not found", "transaction_id", txn.TransactionID, "error", err)
		return Failure[uuid.UUID](ErrCodeAccountNotFound, "", err)
	case err != nil:
		s.logger.Error("unable to create transaction", "transaction_id", txn.TransactionID, "error", err)
		return databaseFailure[uuid.UUID](err)
	}

	s.logger.Info("transaction created", "transaction_id", stored.TransactionID)
	return Success(stored.TransactionID)
}

func toTransaction(input TransactionInput) (*models.Transaction, error) {
	transactionID, err := parseOptionalID("transactionId", input.TransactionID)
	if err != nil {
		return nil, err
	}

	origin, err := ParseExternalID("originAccountId", input.OriginAccountID)
	if err != nil {
		return nil, err
	}

	target, err := ParseExternalID("targetAccountId", input.TargetAccountID)
	if err != nil {
		return nil, err
	}

	var createdAt time.Time
	if input.CreatedAt != nil {
		createdAt = input.CreatedAt.UTC()
	}

	return models.NewTransaction(transactionID, origin, target, input.Amount, createdAt)
}

// GetTransaction retrieves a transaction by its external id
func (s *TransactionService) GetTransaction(ctx context.Context, transactionID string) Result[*models.Transaction] {
	id, err := ParseExternalID("transactionId", transactionID)
	if err != nil {
		return invalidInputFailure[*models.Transaction](err)
	}

	txn, err := s.transactions.FindByTransactionID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return Failure[*models.Transaction](ErrCodeTransactionNotFound,
			fmt.Sprintf("transaction with transactionId '%s' not found", id), err)
	}
	if err != nil {
		s.logger.Error("unable to find transaction", "transaction_id", id, "error", err)
		return databaseFailure[*models.Transaction](err)
	}

	return Success(txn)
}

// ListTransactions lists every transaction touching the account in creation order
func (s *TransactionService) ListTransactions(ctx context.Context, accountID string) Result[[]models.Transaction] {
	id, err := ParseExternalID("accountId", accountID)
	if err != nil {
		return invalidInputFailure[[]models.Transaction](err)
	}

	transactions, err := s.transactions.FindAllByAccount(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return Failure[[]models.Transaction](ErrCodeAccountNotFound,
			fmt.Sprintf("account with accountId '%s' not found", id), err)
	}
	if err != nil {
		s.logger.Error("unable to list transactions", "account_id", id, "error", err)
		return databaseFailure[[]models.Transaction](err)
	}

	return Success(transactions)
}
