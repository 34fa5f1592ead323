// Package store implements the account, transaction and user stores. Every store
// operation runs as a single database transaction and reports domain failures
// with the sentinel errors of the models package.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/benx421/banking/internal/db"
)

var (
	writeTxOptions = &sql.TxOptions{Isolation: sql.LevelReadCommitted}
	readTxOptions  = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
)

func begin(ctx context.Context, database *db.DB, opts *sql.TxOptions) (*sql.Tx, error) {
	tx, err := database.BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	return tx, nil
}

func commit(tx *sql.Tx) error {
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
