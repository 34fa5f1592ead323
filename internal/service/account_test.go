package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/benx421/banking/internal/models"
	"github.com/benx421/banking/internal/service"
	"github.com/benx421/banking/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validAccountInput() service.AccountInput {
	return service.AccountInput{
		AccountID: uuid.NewString(),
		Name:      "Checking",
		Balance:   decimal.NewFromInt(120),
		Dispo:     decimal.NewFromInt(-100),
		Limit:     decimal.NewFromInt(100),
	}
}

func TestAccountService_CreateAccount(t *testing.T) {
	t.Run("successful upsert", func(t *testing.T) {
		mockAccounts := mocks.NewMockAccountStore(t)
		svc := service.NewAccountService(mockAccounts, testLogger())
		ctx := context.Background()
		userID := uuid.New()
		input := validAccountInput()
		accountID := uuid.MustParse(input.AccountID)

		mockAccounts.On("Upsert", ctx, userID, mock.MatchedBy(func(a *models.Account) bool {
			return a.AccountID == accountID && a.Name == "Checking" && a.Balance.Equal(decimal.NewFromInt(120))
		})).Return(&models.Account{AccountID: accountID}, nil)

		result := svc.CreateAccount(ctx, userID.String(), input)

		require.True(t, result.Ok(), "unexpected failure: %v", result.Err())
		assert.Equal(t, accountID, result.Value())
	})

	storeErrors := []struct {
		name         string
		storeErr     error
		expectedCode service.ErrorCode
	}{
		{"user not persisted", models.ErrReferenceNotFound, service.ErrCodeUserNotFound},
		{"name taken", models.ErrAccountAlreadyExists, service.ErrCodeAccountAlreadyExists},
		{"database failure", errors.New("connection reset"), service.ErrCodeDatabase},
	}

	for _, tt := range storeErrors {
		t.Run(tt.name, func(t *testing.T) {
			mockAccounts := mocks.NewMockAccountStore(t)
			svc := service.NewAccountService(mockAccounts, testLogger())
			ctx := context.Background()
			userID := uuid.New()

			mockAccounts.On("Upsert", ctx, userID, mock.AnythingOfType("*models.Account")).
				Return(nil, tt.storeErr)

			result := svc.CreateAccount(ctx, userID.String(), validAccountInput())

			require.False(t, result.Ok())
			assert.Equal(t, tt.expectedCode, result.Err().Code)
			assert.ErrorIs(t, result.Err(), tt.storeErr)
		})
	}

	mappingErrors := []struct {
		name   string
		userID string
		mutate func(*service.AccountInput)
	}{
		{"malformed user id", "xyz", func(*service.AccountInput) {}},
		{"malformed account id", uuid.NewString(), func(in *service.AccountInput) { in.AccountID = "xyz" }},
		{"blank name", uuid.NewString(), func(in *service.AccountInput) { in.Name = "" }},
	}

	for _, tt := range mappingErrors {
		t.Run(tt.name, func(t *testing.T) {
			mockAccounts := mocks.NewMockAccountStore(t)
			svc := service.NewAccountService(mockAccounts, testLogger())
			input := validAccountInput()
			tt.mutate(&input)

			result := svc.CreateAccount(context.Background(), tt.userID, input)

			require.False(t, result.Ok())
			assert.Equal(t, service.ErrCodeMapping, result.Err().Code)
			mockAccounts.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAccountService_DeleteAccount(t *testing.T) {
	t.Run("detaches", func(t *testing.T) {
		mockAccounts := mocks.NewMockAccountStore(t)
		svc := service.NewAccountService(mockAccounts, testLogger())
		ctx := context.Background()
		accountID := uuid.New()

		mockAccounts.On("Detach", ctx, accountID).Return(nil)

		result := svc.DeleteAccount(ctx, accountID.String())

		require.True(t, result.Ok())
		assert.Equal(t, accountID, result.Value())
	})

	t.Run("unknown account", func(t *testing.T) {
		mockAccounts := mocks.NewMockAccountStore(t)
		svc := service.NewAccountService(mockAccounts, testLogger())
		ctx := context.Background()
		accountID := uuid.New()

		mockAccounts.On("Detach", ctx, accountID).Return(models.ErrNotFound)

		result := svc.DeleteAccount(ctx, accountID.String())

		require.False(t, result.Ok())
		assert.Equal(t, service.ErrCodeAccountNotFound, result.Err().Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := service.NewAccountService(mocks.NewMockAccountStore(t), testLogger())

		result := svc.DeleteAccount(context.Background(), "1234")

		require.False(t, result.Ok())
		assert.Equal(t, service.ErrCodeMapping, result.Err().Code)
	})
}
