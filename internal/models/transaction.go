package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction records money moving from the origin account to the target account.
// Positive amounts move money from origin to target by convention only.
type Transaction struct {
	CreatedAt       time.Time       `db:"created_at"`
	Amount          decimal.Decimal `db:"amount"`
	ID              int64           `db:"id"`
	TransactionID   uuid.UUID       `db:"transaction_id"`
	OriginAccountID uuid.UUID       `db:"origin_account_id"`
	TargetAccountID uuid.UUID       `db:"target_account_id"`
}

// NewTransaction builds a transaction draft. A nil transactionID is replaced by a
// freshly generated one; a zero createdAt is stamped when the row is stored.
func NewTransaction(transactionID, origin, target uuid.UUID, amount decimal.Decimal, createdAt time.Time) (*Transaction, error) {
	if origin == uuid.Nil {
		return nil, invalidInput("origin", "origin account id must be set")
	}
	if target == uuid.Nil {
		return nil, invalidInput("target", "target account id must be set")
	}

	if transactionID == uuid.Nil {
		transactionID = uuid.New()
	}

	return &Transaction{
		TransactionID:   transactionID,
		OriginAccountID: origin,
		TargetAccountID: target,
		Amount:          amount,
		CreatedAt:       createdAt,
	}, nil
}
