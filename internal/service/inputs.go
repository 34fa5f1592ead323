package service

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
)

// UserInput is the external representation of a user to create
type UserInput struct {
	UserID    string `json:"userId,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Birthdate string `json:"birthdate"`
	Password  string `json:"password"`
}

// LogValue keeps the password out of the logs
func (in UserInput) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("user_id", in.UserID),
		slog.String("first_name", in.FirstName),
		slog.String("last_name", in.LastName),
		slog.String("birthdate", in.Birthdate),
	)
}

// AccountInput is the external representation of an account to upsert
type AccountInput struct {
	AccountID string          `json:"accountId,omitempty"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	Dispo     decimal.Decimal `json:"dispo"`
	Limit     decimal.Decimal `json:"limit"`
}

// TransactionInput is the external representation of a transaction to record
type TransactionInput struct {
	CreatedAt       *time.Time      `json:"createdAt,omitempty"`
	TransactionID   string          `json:"transactionId,omitempty"`
	OriginAccountID string          `json:"originAccountId"`
	TargetAccountID string          `json:"targetAccountId"`
	Amount          decimal.Decimal `json:"amount"`
}
