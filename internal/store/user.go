package store

import (
	"context"
	"time"

	"github.com/benx421/banking/internal/db"
	"github.com/benx421/banking/internal/models"
	"github.com/benx421/banking/internal/repository"
	"github.com/google/uuid"
)

// UserStore persists users and removes them without touching account history
type UserStore struct {
	db  *db.DB
	now func() time.Time
}

// NewUserStore creates a new UserStore
func NewUserStore(database *db.DB) *UserStore {
	return &UserStore{
		db:  database,
		now: utcNow,
	}
}

// Create stores a new user, stamping both timestamps
func (s *UserStore) Create(ctx context.Context, user *models.User) (*models.User, error) {
	stored := *user
	stored.Accounts = nil
	stored.CreatedAt = s.now()
	stored.UpdatedAt = stored.CreatedAt

	if err := repository.NewUserRepository(s.db).Create(ctx, &stored); err != nil {
		return nil, err
	}

	return &stored, nil
}

// FindByUserID retrieves a user together with the accounts it currently owns
func (s *UserStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	tx, err := begin(ctx, s.db, readTxOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	user, err := performFindUser(ctx, repository.NewUserRepository(tx), repository.NewAccountRepository(tx), userID)
	if err != nil {
		return nil, err
	}

	if err := commit(tx); err != nil {
		return nil, err
	}

	return user, nil
}

func performFindUser(
	ctx context.Context,
	userRepo repository.UserRepository,
	accountRepo repository.AccountRepository,
	userID uuid.UUID,
) (*models.User, error) {
	user, err := userRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	accounts, err := accountRepo.FindAllByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Accounts = accounts

	return user, nil
}

// Delete detaches every account of the user and removes the user row
func (s *UserStore) Delete(ctx context.Context, userID uuid.UUID) error {
	tx, err := begin(ctx, s.db, writeTxOptions)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	if err := performDeleteUser(ctx, repository.NewUserRepository(tx), repository.NewAccountRepository(tx), userID); err != nil {
		return err
	}

	return commit(tx)
}

func performDeleteUser(
	ctx context.Context,
	userRepo repository.UserRepository,
	accountRepo repository.AccountRepository,
	userID uuid.UUID,
) error {
	user, err := userRepo.FindByUserIDForUpdate(ctx, userID)
	if err != nil {
		return err
	}

	if _, err := accountRepo.ClearOwnerForUser(ctx, user.ID); err != nil {
		return err
	}

	return userRepo.Delete(ctx, user.ID)
}
