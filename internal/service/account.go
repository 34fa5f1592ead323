package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/benx421/banking/internal/models"
	"github.com/google/uuid"
)

// AccountService upserts accounts for users and detaches them
type AccountService struct {
	accounts AccountStore
	logger   *slog.Logger
}

// NewAccountService creates a new AccountService
func NewAccountService(accounts AccountStore, logger *slog.Logger) *AccountService {
	return &AccountService{
		accounts: accounts,
		logger:   logger,
	}
}

// CreateAccount creates the account for the user, or overwrites it when the
// account id is already known
func (s *AccountService) CreateAccount(ctx context.Context, userID string, input AccountInput) Result[uuid.UUID] {
	s.logger.Info("upserting account", "user_id", userID, "account_id", input.AccountID, "name", input.Name)

	ownerID, err := ParseExternalID("userId", userID)
	if err != nil {
		s.logger.Error("invalid user id", "user_id", userID, "error", err)
		return invalidInputFailure[uuid.UUID](err)
	}

	account, err := toAccount(input)
	if err != nil {
		s.logger.Error("unable to map account input", "user_id", ownerID, "error", err)
		return invalidInputFailure[uuid.UUID](err)
	}

	stored, err := s.accounts.Upsert(ctx, ownerID, account)
	switch {
	case errors.Is(err, models.ErrReferenceNotFound):
		s.logger.Error("user not found", "user_id", ownerID)
		return Failure[uuid.UUID](ErrCodeUserNotFound, fmt.Sprintf("user with userId '%s' not found", ownerID), err)
	case errors.Is(err, models.ErrAccountAlreadyExists):
		s.logger.Error("account name already taken", "user_id", ownerID, "name", account.Name)
		return Failure[uuid.UUID](ErrCodeAccountAlreadyExists,
			fmt.Sprintf("user '%s' already has an account named '%s'", ownerID, account.Name), err)
	case err != nil:
		s.logger.Error("unable to upsert account", "user_id", ownerID, "account_id", account.AccountID, "error", err)
		return databaseFailure[uuid.UUID](err)
	}

	s.logger.Info("account upserted", "user_id", ownerID, "account_id", stored.AccountID)
	return Success(stored.AccountID)
}

func toAccount(input AccountInput) (*models.Account, error) {
	accountID, err := parseOptionalID("accountId", input.AccountID)
	if err != nil {
		return nil, err
	}

	return models.NewAccount(accountID, input.Name, input.Balance, input.Dispo, input.Limit)
}

// DeleteAccount detaches the account from its owner. The account and its
// transactions are kept.
func (s *AccountService) DeleteAccount(ctx context.Context, accountID string) Result[uuid.UUID] {
	s.logger.Info("detaching account", "account_id", accountID)

	id, err := ParseExternalID("accountId", accountID)
	if err != nil {
		s.logger.Error("invalid account id", "account_id", accountID, "error", err)
		return invalidInputFailure[uuid.UUID](err)
	}

	err = s.accounts.Detach(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		s.logger.Error("account not found", "account_id", id)
		return Failure[uuid.UUID](ErrCodeAccountNotFound, fmt.Sprintf("account with accountId '%s' not found", id), err)
	}
	if err != nil {
		s.logger.Error("unable to detach account", "account_id", id, "error", err)
		return databaseFailure[uuid.UUID](err)
	}

	s.logger.Info("account detached", "account_id", id)
	return Success(id)
}
