package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is a named balance owned by at most one user. Detached accounts keep
// their rows so the transactions referencing them stay intact.
type Account struct {
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
	UserID    *int64          `db:"user_id"`
	Name      string          `db:"name"`
	Balance   decimal.Decimal `db:"balance"`
	Dispo     decimal.Decimal `db:"dispo"`
	Limit     decimal.Decimal `db:"credit_limit"`
	ID        int64           `db:"id"`
	AccountID uuid.UUID       `db:"account_id"`
}

// NewAccount builds an account draft ready for upsert. A nil accountID is
// replaced by a freshly generated one.
func NewAccount(accountID uuid.UUID, name string, balance, dispo, limit decimal.Decimal) (*Account, error) {
	if err := ValidateName("name", name); err != nil {
		return nil, err
	}

	if accountID == uuid.Nil {
		accountID = uuid.New()
	}

	return &Account{
		AccountID: accountID,
		Name:      name,
		Balance:   balance,
		Dispo:     dispo,
		Limit:     limit,
	}, nil
}

// IsDetached reports whether the account has no owning user
func (a *Account) IsDetached() bool {
	return a.UserID == nil
}
