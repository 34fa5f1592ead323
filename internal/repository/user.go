package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/benx421/banking/internal/db"
	"github.com/benx421/banking/internal/models"
	"github.com/google/uuid"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	FindByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

type userRepository struct {
	db db.DBTX
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(database db.DBTX) UserRepository {
	return &userRepository{db: database}
}

// Create inserts the user and fills in its internal id
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (user_id, first_name, last_name, birthdate, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		user.UserID,
		user.FirstName,
		user.LastName,
		user.Birthdate,
		user.Password,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if constraint, ok := uniqueConstraint(err); ok {
			return fmt.Errorf("user '%s' violates %s: %w", user.UserID, constraint, models.ErrDuplicate)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// FindByUserID retrieves a user by its external id
func (r *userRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return r.findByUserID(ctx, userID, "")
}

// FindByUserIDForUpdate retrieves a user and locks its row until the transaction ends
func (r *userRepository) FindByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return r.findByUserID(ctx, userID, "FOR UPDATE")
}

func (r *userRepository) findByUserID(ctx context.Context, userID uuid.UUID, lock string) (*models.User, error) {
	query := `
		SELECT id, user_id, first_name, last_name, birthdate, password, created_at, updated_at
		FROM users
		WHERE user_id = $1
	` + lock

	var user models.User
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.UserID,
		&user.FirstName,
		&user.LastName,
		&user.Birthdate,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user '%s': %w", userID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by user id: %w", err)
	}

	return &user, nil
}

// Delete removes the user row. Accounts must be detached beforehand.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("user %d: %w", id, models.ErrNotFound)
	}

	return nil
}
