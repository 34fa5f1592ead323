package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/benx421/banking/internal/db"
	"github.com/benx421/banking/internal/models"
	"github.com/google/uuid"
)

const accountNameUserConstraint = "accounts_name_user_key"

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	LockAccountID(ctx context.Context, accountID uuid.UUID) error
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*models.Account, error)
	FindByAccountIDForUpdate(ctx context.Context, accountID uuid.UUID) (*models.Account, error)
	FindAllByUser(ctx context.Context, userID int64) ([]models.Account, error)
	Insert(ctx context.Context, account *models.Account) error
	Update(ctx context.Context, account *models.Account) error
	ClearOwner(ctx context.Context, id int64) error
	ClearOwnerForUser(ctx context.Context, userID int64) (int64, error)
}

// accountRepository implements AccountRepository
type accountRepository struct {
	db db.DBTX
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(database db.DBTX) AccountRepository {
	return &accountRepository{db: database}
}

const selectAccount = `
	SELECT id, account_id, name, balance, dispo, credit_limit, user_id, created_at, updated_at
	FROM accounts
`

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(row scanner) (*models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.AccountID,
		&account.Name,
		&account.Balance,
		&account.Dispo,
		&account.Limit,
		&account.UserID,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByAccountID retrieves an account by its external id
func (r *accountRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	return r.findByAccountID(ctx, accountID, "")
}

// FindByAccountIDForUpdate retrieves an account and locks its row until the transaction ends
func (r *accountRepository) FindByAccountIDForUpdate(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	return r.findByAccountID(ctx, accountID, "FOR UPDATE")
}

func (r *accountRepository) findByAccountID(ctx context.Context, accountID uuid.UUID, lock string) (*models.Account, error) {
	query := selectAccount + ` WHERE account_id = $1 ` + lock

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, accountID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account '%s': %w", accountID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account by account id: %w", err)
	}

	return account, nil
}

// FindAllByUser lists the accounts currently owned by the user, oldest first
func (r *accountRepository) FindAllByUser(ctx context.Context, userID int64) ([]models.Account, error) {
	query := selectAccount + ` WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by user: %w", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, *account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}

// Insert creates the account with CreatedAt as both timestamps. When another
// writer inserted the same account id first, that row is updated instead and its
// creation time is kept.
func (r *accountRepository) Insert(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (account_id, name, balance, dispo, credit_limit, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (account_id) DO UPDATE
		SET name = EXCLUDED.name,
		    balance = EXCLUDED.balance,
		    dispo = EXCLUDED.dispo,
		    credit_limit = EXCLUDED.credit_limit,
		    user_id = EXCLUDED.user_id,
		    updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		account.AccountID,
		account.Name,
		account.Balance,
		account.Dispo,
		account.Limit,
		account.UserID,
		account.CreatedAt,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return accountWriteError(account, "insert", err)
	}

	return nil
}

// Update overwrites the mutable fields and the owner of the account identified by
// its internal id, stamping UpdatedAt only.
func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	query := `
		UPDATE accounts
		SET name = $2,
		    balance = $3,
		    dispo = $4,
		    credit_limit = $5,
		    user_id = $6,
		    updated_at = $7
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		account.ID,
		account.Name,
		account.Balance,
		account.Dispo,
		account.Limit,
		account.UserID,
		account.UpdatedAt,
	).Scan(&account.CreatedAt, &account.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("account %d: %w", account.ID, models.ErrNotFound)
	}
	if err != nil {
		return accountWriteError(account, "update", err)
	}

	return nil
}

// ClearOwner detaches the account from its user
func (r *accountRepository) ClearOwner(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `UPDATE accounts SET user_id = NULL, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to detach account: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("account %d: %w", id, models.ErrNotFound)
	}

	return nil
}

// ClearOwnerForUser detaches every account of the user and returns how many were detached
func (r *accountRepository) ClearOwnerForUser(ctx context.Context, userID int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE accounts SET user_id = NULL, updated_at = NOW() WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to detach accounts of user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}

// LockAccountID takes a transaction-scoped advisory lock on the external id, so
// writers of an account that has no row yet are serialized. It must run inside a
// transaction.
func (r *accountRepository) LockAccountID(ctx context.Context, accountID uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`, accountID); err != nil {
		return fmt.Errorf("failed to lock account id: %w", err)
	}
	return nil
}

func accountWriteError(account *models.Account, op string, err error) error {
	if constraint, ok := uniqueConstraint(err); ok && constraint == accountNameUserConstraint {
		return fmt.Errorf("account name '%s': %w", account.Name, models.ErrAccountAlreadyExists)
	}
	return fmt.Errorf("failed to %s account: %w", op, err)
}
