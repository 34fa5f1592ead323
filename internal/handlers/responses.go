package handlers

import (
	"time"

	"github.com/benx421/banking/internal/models"
	"github.com/benx421/banking/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserResponse is the external representation of a user. The password hash is
// never returned.
type UserResponse struct {
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Birthdate string            `json:"birthdate"`
	Accounts  []AccountResponse `json:"accounts"`
	UserID    uuid.UUID         `json:"userId"`
}

// AccountResponse is the external representation of an account
type AccountResponse struct {
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	Dispo     decimal.Decimal `json:"dispo"`
	Limit     decimal.Decimal `json:"limit"`
	AccountID uuid.UUID       `json:"accountId"`
}

// TransactionResponse is the external representation of a transaction
type TransactionResponse struct {
	CreatedAt       time.Time       `json:"createdAt"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionID   uuid.UUID       `json:"transactionId"`
	OriginAccountID uuid.UUID       `json:"originAccountId"`
	TargetAccountID uuid.UUID       `json:"targetAccountId"`
}

func toUserResponse(user *models.User) UserResponse {
	accounts := make([]AccountResponse, 0, len(user.Accounts))
	for i := range user.Accounts {
		accounts = append(accounts, toAccountResponse(&user.Accounts[i]))
	}

	return UserResponse{
		UserID:    user.UserID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Birthdate: user.Birthdate.Format(service.BirthdateLayout),
		Accounts:  accounts,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toAccountResponse(account *models.Account) AccountResponse {
	return AccountResponse{
		AccountID: account.AccountID,
		Name:      account.Name,
		Balance:   account.Balance,
		Dispo:     account.Dispo,
		Limit:     account.Limit,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

func toTransactionResponse(txn *models.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		OriginAccountID: txn.OriginAccountID,
		TargetAccountID: txn.TargetAccountID,
		Amount:          txn.Amount,
		CreatedAt:       txn.CreatedAt,
	}
}
