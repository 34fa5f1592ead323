package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benx421/banking/internal/models"
	"github.com/benx421/banking/internal/repository/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTransactionStore_PerformCreate(t *testing.T) {
	now := time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)
	origin := &models.Account{ID: 11, AccountID: uuid.New(), Name: "Checking"}
	target := &models.Account{ID: 12, AccountID: uuid.New(), Name: "Savings"}

	newDraft := func() *models.Transaction {
		return &models.Transaction{
			TransactionID:   uuid.New(),
			OriginAccountID: origin.AccountID,
			TargetAccountID: target.AccountID,
			Amount:          decimal.NewFromInt(60),
		}
	}

	t.Run("successful creation", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		store := &TransactionStore{now: fixedClock(now)}
		ctx := context.Background()
		draft := newDraft()

		mockTxRepo.On("ExistsByTransactionID", ctx, draft.TransactionID).Return(false, nil)
		mockAccountRepo.On("FindByAccountID", ctx, origin.AccountID).Return(origin, nil)
		mockAccountRepo.On("FindByAccountID", ctx, target.AccountID).Return(target, nil)
		mockTxRepo.On("Create", ctx, mock.AnythingOfType("*models.Transaction"), int64(11), int64(12)).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.Transaction).ID = 99
			}).
			Return(nil)

		result, err := store.performCreate(ctx, mockAccountRepo, mockTxRepo, draft)

		require.NoError(t, err)
		assert.Equal(t, int64(99), result.ID)
		assert.Equal(t, draft.TransactionID, result.TransactionID)
		assert.Equal(t, now, result.CreatedAt, "missing creation time should be stamped")
		assert.True(t, draft.CreatedAt.IsZero(), "the draft must not be mutated")
	})

	t.Run("supplied creation time is kept", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		store := &TransactionStore{now: fixedClock(now)}
		ctx := context.Background()
		draft := newDraft()
		draft.CreatedAt = now.Add(-time.Hour)

		mockTxRepo.On("ExistsByTransactionID", ctx, draft.TransactionID).Return(false, nil)
		mockAccountRepo.On("FindByAccountID", ctx, origin.AccountID).Return(origin, nil)
		mockAccountRepo.On("FindByAccountID", ctx, target.AccountID).Return(target, nil)
		mockTxRepo.On("Create", ctx, mock.AnythingOfType("*models.Transaction"), int64(11), int64(12)).Return(nil)

		result, err := store.performCreate(ctx, mockAccountRepo, mockTxRepo, draft)

		require.NoError(t, err)
		assert.Equal(t, now.Add(-time.Hour), result.CreatedAt)
	})

	t.Run("duplicate is reported before any account lookup", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		store := &TransactionStore{now: fixedClock(now)}
		ctx := context.Background()
		draft := newDraft()
		draft.OriginAccountID = uuid.New()

		mockTxRepo.On("ExistsByTransactionID", ctx, draft.TransactionID).Return(true, nil)

		result, err := store.performCreate(ctx, mockAccountRepo, mockTxRepo, draft)

		assert.Nil(t, result)
		assert.True(t, errors.Is(err, models.ErrDuplicate), "expected duplicate, got %v", err)
		mockAccountRepo.AssertNotCalled(t, "FindByAccountID", mock.Anything, mock.Anything)
	})

	t.Run("missing origin is reported before target", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		store := &TransactionStore{now: fixedClock(now)}
		ctx := context.Background()
		draft := newDraft()
		draft.OriginAccountID = uuid.New()
		draft.TargetAccountID = uuid.New()

		mockTxRepo.On("ExistsByTransactionID", ctx, draft.TransactionID).Return(false, nil)
		mockAccountRepo.On("FindByAccountID", ctx, draft.OriginAccountID).
			Return(nil, models.ErrNotFound)

		result, err := store.performCreate(ctx, mockAccountRepo, mockTxRepo, draft)

		assert.Nil(t, result)
		require.True(t, errors.Is(err, models.ErrReferenceNotFound), "expected reference not found, got %v", err)
		assert.Contains(t, err.Error(), "origin account")
		assert.Contains(t, err.Error(), draft.OriginAccountID.String())
		mockTxRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing target", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		store := &TransactionStore{now: fixedClock(now)}
		ctx := context.Background()
		draft := newDraft()
		draft.TargetAccountID = uuid.New()

		mockTxRepo.On("ExistsByTransactionID", ctx, draft.TransactionID).Return(false, nil)
		mockAccountRepo.On("FindByAccountID", ctx, origin.AccountID).Return(origin, nil)
		mockAccountRepo.On("FindByAccountID", ctx, draft.TargetAccountID).
			Return(nil, models.ErrNotFound)

		result, err := store.performCreate(ctx, mockAccountRepo, mockTxRepo, draft)

		assert.Nil(t, result)
		require.True(t, errors.Is(err, models.ErrReferenceNotFound))
		assert.Contains(t, err.Error(), "target account")
	})

	t.Run("lookup failure is passed through", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		store := &TransactionStore{now: fixedClock(now)}
		ctx := context.Background()
		draft := newDraft()
		dbErr := errors.New("connection reset")

		mockTxRepo.On("ExistsByTransactionID", ctx, draft.TransactionID).Return(false, dbErr)

		_, err := store.performCreate(ctx, mockAccountRepo, mockTxRepo, draft)

		assert.ErrorIs(t, err, dbErr)
		assert.False(t, errors.Is(err, models.ErrDuplicate))
	})
}

func TestPerformFindAllByAccount(t *testing.T) {
	t.Run("returns transactions of the resolved account", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		ctx := context.Background()
		account := &models.Account{ID: 5, AccountID: uuid.New()}
		want := []models.Transaction{{ID: 1}, {ID: 2}}

		mockAccountRepo.On("FindByAccountID", ctx, account.AccountID).Return(account, nil)
		mockTxRepo.On("FindAllByAccount", ctx, int64(5)).Return(want, nil)

		got, err := performFindAllByAccount(ctx, mockAccountRepo, mockTxRepo, account.AccountID)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("unknown account", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockTxRepo := mocks.NewMockTransactionRepository(t)
		ctx := context.Background()
		accountID := uuid.New()

		mockAccountRepo.On("FindByAccountID", ctx, accountID).Return(nil, models.ErrNotFound)

		got, err := performFindAllByAccount(ctx, mockAccountRepo, mockTxRepo, accountID)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}
