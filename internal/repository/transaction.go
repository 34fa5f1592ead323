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

// TransactionRepository defines the interface for transaction data access
type TransactionRepository interface {
	ExistsByTransactionID(ctx context.Context, transactionID uuid.UUID) (bool, error)
	Create(ctx context.Context, txn *models.Transaction, originID, targetID int64) error
	FindByTransactionID(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error)
	FindAllByAccount(ctx context.Context, accountID int64) ([]models.Transaction, error)
}

type transactionRepository struct {
	db db.DBTX
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(database db.DBTX) TransactionRepository {
	return &transactionRepository{db: database}
}

// Origin and target are joined back to their external ids.
const selectTransaction = `
	SELECT t.id, t.transaction_id, o.account_id, g.account_id, t.amount, t.created_at
	FROM transactions t
	JOIN accounts o ON o.id = t.origin_account_id
	JOIN accounts g ON g.id = t.target_account_id
`

func scanTransaction(row scanner) (*models.Transaction, error) {
	var txn models.Transaction
	err := row.Scan(
		&txn.ID,
		&txn.TransactionID,
		&txn.OriginAccountID,
		&txn.TargetAccountID,
		&txn.Amount,
		&txn.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// ExistsByTransactionID reports whether a transaction with the external id is stored
func (r *transactionRepository) ExistsByTransactionID(ctx context.Context, transactionID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM transactions WHERE transaction_id = $1)`,
		transactionID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check transaction existence: %w", err)
	}
	return exists, nil
}

// Create inserts the transaction referencing the internal ids of its accounts
func (r *transactionRepository) Create(ctx context.Context, txn *models.Transaction, originID, targetID int64) error {
	query := `
		INSERT INTO transactions (transaction_id, origin_account_id, target_account_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		txn.TransactionID,
		originID,
		targetID,
		txn.Amount,
		txn.CreatedAt,
	).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		if _, ok := uniqueConstraint(err); ok {
			return fmt.Errorf("transaction '%s': %w", txn.TransactionID, models.ErrDuplicate)
		}
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// FindByTransactionID retrieves a transaction by its external id
func (r *transactionRepository) FindByTransactionID(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error) {
	query := selectTransaction + ` WHERE t.transaction_id = $1`

	txn, err := scanTransaction(r.db.QueryRowContext(ctx, query, transactionID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction '%s': %w", transactionID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction by transaction id: %w", err)
	}

	return txn, nil
}

// FindAllByAccount lists every transaction where the account is origin or target,
// in insertion order
func (r *transactionRepository) FindAllByAccount(ctx context.Context, accountID int64) ([]models.Transaction, error) {
	query := selectTransaction + `
		WHERE t.origin_account_id = $1 OR t.target_account_id = $1
		ORDER BY t.id
	`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by account: %w", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}
