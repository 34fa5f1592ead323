package repository

import (
	"context"
	"io"
	"log"
	"log/slog"
	"testing"
	"time"

	"github.com/benx421/banking/internal/config"
	"github.com/benx421/banking/internal/db"
	"github.com/benx421/banking/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	database, err := db.Connect(context.Background(), &cfg.Database, logger)
	if err != nil {
		t.Skipf("postgres not reachable, skipping integration test: %v", err)
	}

	if err := db.Migrate(context.Background(), database); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return database
}

func cleanupTestDB(t *testing.T, database *db.DB) {
	t.Helper()
	if err := database.Close(); err != nil {
		log.Printf("failed to close test database: %v", err)
	}
}

// createTestUser stores a user with a unique natural key so tests never collide.
func createTestUser(t *testing.T, database *db.DB) *models.User {
	t.Helper()

	now := time.Now().UTC()
	user := &models.User{
		UserID:    uuid.New(),
		FirstName: "Alice",
		LastName:  "Test-" + uuid.NewString(),
		Birthdate: time.Date(1996, time.March, 1, 0, 0, 0, 0, time.UTC),
		Password:  "hashed",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, NewUserRepository(database).Create(context.Background(), user), "failed to create user")
	return user
}

func createTestAccount(t *testing.T, database *db.DB, owner *models.User, name string) *models.Account {
	t.Helper()

	account := newAccountDraft(owner, name)
	require.NoError(t, NewAccountRepository(database).Insert(context.Background(), account), "failed to create account")
	return account
}

func newAccountDraft(owner *models.User, name string) *models.Account {
	account := &models.Account{
		AccountID: uuid.New(),
		Name:      name,
		Balance:   decimal.NewFromFloat(120),
		Dispo:     decimal.NewFromFloat(-100),
		Limit:     decimal.NewFromFloat(100),
		CreatedAt: time.Now().UTC(),
	}
	if owner != nil {
		account.UserID = &owner.ID
	}
	return account
}
