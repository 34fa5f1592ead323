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

// TransactionStore records transactions between persisted accounts and answers
// which transactions touch an account
type TransactionStore struct {
	db  *db.DB
	now func() time.Time
}

// NewTransactionStore creates a new TransactionStore
func NewTransactionStore(database *db.DB) *TransactionStore {
	return &TransactionStore{
		db:  database,
		now: utcNow,
	}
}

// Create records the transaction. Checks run in a fixed order: duplicate external
// id, then origin account, then target account.
func (s *TransactionStore) Create(ctx context.Context, txn *models.Transaction) (*models.Transaction, error) {
	tx, err := begin(ctx, s.db, writeTxOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	stored, err := s.performCreate(ctx, repository.NewAccountRepository(tx), repository.NewTransactionRepository(tx), txn)
	if err != nil {
		return nil, err
	}

	if err := commit(tx); err != nil {
		return nil, err
	}

	return stored, nil
}

// performCreate contains the transaction creation rules
func (s *TransactionStore) performCreate(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	transactionRepo repository.TransactionRepository,
	txn *models.Transaction,
) (*models.Transaction, error) {
	exists, err := transactionRepo.ExistsByTransactionID(ctx, txn.TransactionID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("transaction '%s' already exists: %w", txn.TransactionID, models.ErrDuplicate)
	}

	origin, err := resolveAccount(ctx, accountRepo, "origin", txn.OriginAccountID)
	if err != nil {
		return nil, err
	}

	target, err := resolveAccount(ctx, accountRepo, "target", txn.TargetAccountID)
	if err != nil {
		return nil, err
	}

	stored := *txn
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = s.now()
	}

	if err := transactionRepo.Create(ctx, &stored, origin.ID, target.ID); err != nil {
		return nil, err
	}

	return &stored, nil
}

func resolveAccount(ctx context.Context, accountRepo repository.AccountRepository, role string, accountID uuid.UUID) (*models.Account, error) {
	account, err := accountRepo.FindByAccountID(ctx, accountID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("%s account '%s' not persisted yet: %w", role, accountID, models.ErrReferenceNotFound)
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

// FindAllByAccount lists every transaction where the account is origin or target,
// in creation order. Unknown accounts yield models.ErrNotFound.
func (s *TransactionStore) FindAllByAccount(ctx context.Context, accountID uuid.UUID) ([]models.Transaction, error) {
	tx, err := begin(ctx, s.db, readTxOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	transactions, err := performFindAllByAccount(ctx, repository.NewAccountRepository(tx), repository.NewTransactionRepository(tx), accountID)
	if err != nil {
		return nil, err
	}

	if err := commit(tx); err != nil {
		return nil, err
	}

	return transactions, nil
}

func performFindAllByAccount(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	transactionRepo repository.TransactionRepository,
	accountID uuid.UUID,
) ([]models.Transaction, error) {
	account, err := accountRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return transactionRepo.FindAllByAccount(ctx, account.ID)
}

// FindByTransactionID retrieves a transaction by its external id
func (s *TransactionStore) FindByTransactionID(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error) {
	return repository.NewTransactionRepository(s.db).FindByTransactionID(ctx, transactionID)
}
