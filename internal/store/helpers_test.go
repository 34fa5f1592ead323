package store

import (
	"context"
	"database/sql"
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

// closedTestDB returns a DB whose pool is already closed, so every BeginTx fails.
func closedTestDB(t *testing.T) *db.DB {
	t.Helper()

	sqlDB, err := sql.Open("postgres", "host=localhost dbname=unused sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	return db.NewTestDB(sqlDB)
}

func createStoredUser(t *testing.T, users *UserStore) *models.User {
	t.Helper()

	user, err := users.Create(context.Background(), &models.User{
		UserID:    uuid.New(),
		FirstName: "Alice",
		LastName:  "Store-" + uuid.NewString(),
		Birthdate: time.Date(1996, time.March, 1, 0, 0, 0, 0, time.UTC),
		Password:  "hashed",
	})
	require.NoError(t, err, "failed to create user")
	return user
}

func accountDraft(name string) *models.Account {
	return &models.Account{
		AccountID: uuid.New(),
		Name:      name,
		Balance:   decimal.NewFromInt(120),
		Dispo:     decimal.NewFromInt(-100),
		Limit:     decimal.NewFromInt(100),
	}
}
