package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benx421/banking/internal/db"
	"github.com/benx421/banking/internal/models"
	"github.com/benx421/banking/internal/repository"
	"github.com/google/uuid"
)

// AccountStore upserts accounts for users and detaches them on deletion
type AccountStore struct {
	db  *db.DB
	now func() time.Time
}

// NewAccountStore creates a new AccountStore
func NewAccountStore(database *db.DB) *AccountStore {
	return &AccountStore{
		db:  database,
		now: utcNow,
	}
}

// Upsert creates the account for the user, or overwrites it when an account with
// the same external id already exists. The user must already be persisted.
func (s *AccountStore) Upsert(ctx context.Context, userID uuid.UUID, account *models.Account) (*models.Account, error) {
	tx, err := begin(ctx, s.db, writeTxOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	stored, err := s.performUpsert(ctx, repository.NewUserRepository(tx), repository.NewAccountRepository(tx), userID, account)
	if err != nil {
		return nil, err
	}

	if err := commit(tx); err != nil {
		return nil, err
	}

	return stored, nil
}

// performUpsert contains the upsert logic
func (s *AccountStore) performUpsert(
	ctx context.Context,
	userRepo repository.UserRepository,
	accountRepo repository.AccountRepository,
	userID uuid.UUID,
	draft *models.Account,
) (*models.Account, error) {
	// The owner row stays locked so a concurrent user delete cannot slip in
	// between the lookup and the write.
	user, err := userRepo.FindByUserIDForUpdate(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("user '%s' not persisted yet: %w", userID, models.ErrReferenceNotFound)
	}
	if err != nil {
		return nil, err
	}

	// There may be no row to lock yet, so creators of the same account id are
	// serialized on an advisory lock instead.
	if err := accountRepo.LockAccountID(ctx, draft.AccountID); err != nil {
		return nil, err
	}

	now := s.now()
	stored := *draft
	stored.UserID = &user.ID

	existing, err := accountRepo.FindByAccountIDForUpdate(ctx, draft.AccountID)
	switch {
	case errors.Is(err, models.ErrNotFound):
		stored.ID = 0
		stored.CreatedAt = now
		stored.UpdatedAt = now
		if err := accountRepo.Insert(ctx, &stored); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		stored.ID = existing.ID
		stored.CreatedAt = existing.CreatedAt
		stored.UpdatedAt = now
		if err := accountRepo.Update(ctx, &stored); err != nil {
			return nil, err
		}
	}

	return &stored, nil
}

// Detach clears the owning user of the account. The account row and the
// transactions referencing it are kept.
func (s *AccountStore) Detach(ctx context.Context, accountID uuid.UUID) error {
	tx, err := begin(ctx, s.db, writeTxOptions)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	if err := performDetach(ctx, repository.NewAccountRepository(tx), accountID); err != nil {
		return err
	}

	return commit(tx)
}

func performDetach(ctx context.Context, accountRepo repository.AccountRepository, accountID uuid.UUID) error {
	account, err := accountRepo.FindByAccountIDForUpdate(ctx, accountID)
	if err != nil {
		return err
	}

	return accountRepo.ClearOwner(ctx, account.ID)
}

// FindByAccountID retrieves an account by its external id
func (s *AccountStore) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	return repository.NewAccountRepository(s.db).FindByAccountID(ctx, accountID)
}
