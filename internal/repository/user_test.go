package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/benx421/banking/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)

	repo := NewUserRepository(database)
	user := createTestUser(t, database)

	assert.NotZero(t, user.ID, "internal id should be assigned")

	tests := []struct {
		name    string
		userID  uuid.UUID
		wantErr error
	}{
		{
			name:   "existing user",
			userID: user.UserID,
		},
		{
			name:    "unknown user",
			userID:  uuid.New(),
			wantErr: models.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.FindByUserID(context.Background(), tt.userID)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
				assert.Nil(t, found)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.ID, found.ID)
			assert.Equal(t, user.LastName, found.LastName)
			assert.True(t, user.Birthdate.Equal(found.Birthdate.UTC()), "birthdate mismatch")
		})
	}
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)

	repo := NewUserRepository(database)
	user := createTestUser(t, database)

	again := *user
	again.ID = 0
	err := repo.Create(context.Background(), &again)

	assert.True(t, errors.Is(err, models.ErrDuplicate), "expected duplicate, got %v", err)
}

func TestUserRepository_Delete(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)

	repo := NewUserRepository(database)
	user := createTestUser(t, database)

	require.NoError(t, repo.Delete(context.Background(), user.ID))

	_, err := repo.FindByUserID(context.Background(), user.UserID)
	assert.True(t, errors.Is(err, models.ErrNotFound))

	err = repo.Delete(context.Background(), user.ID)
	assert.True(t, errors.Is(err, models.ErrNotFound), "deleting twice should report not found")
}
