package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/benx421/banking/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserService creates, reads and deletes users
type UserService struct {
	users      UserStore
	bcryptCost int
	logger     *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(users UserStore, bcryptCost int, logger *slog.Logger) *UserService {
	return &UserService{
		users:      users,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// CreateUser validates the input, hashes the password and stores the user
func (s *UserService) CreateUser(ctx context.Context, input UserInput) Result[uuid.UUID] {
	s.logger.Info("creating user", "user", input)

	user, err := s.toUser(input)
	if err != nil {
		s.logger.Error("unable to map user input", "user", input, "error", err)
		return invalidInputFailure[uuid.UUID](err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		s.logger.Error("password cannot be hashed", "user_id", user.UserID, "error", err)
		return Failure[uuid.UUID](ErrCodePassword, "password must not be longer than 72 bytes", err)
	}
	if err != nil {
		s.logger.Error("failed to hash password", "user_id", user.UserID, "error", err)
		return databaseFailure[uuid.UUID](err)
	}
	user.Password = string(hash)

	stored, err := s.users.Create(ctx, user)
	if err != nil {
		s.logger.Error("unable to create user", "user_id", user.UserID, "error", err)
		return databaseFailure[uuid.UUID](err)
	}

	s.logger.Info("user created", "user_id", stored.UserID)
	return Success(stored.UserID)
}

func (s *UserService) toUser(input UserInput) (*models.User, error) {
	userID, err := parseOptionalID("userId", input.UserID)
	if err != nil {
		return nil, err
	}

	birthdate, err := ParseBirthdate(input.Birthdate)
	if err != nil {
		return nil, err
	}

	return models.NewUser(userID, input.FirstName, input.LastName, birthdate, input.Password)
}

// GetUser retrieves a user with the accounts it owns
func (s *UserService) GetUser(ctx context.Context, userID string) Result[*models.User] {
	id, err := ParseExternalID("userId", userID)
	if err != nil {
		return invalidInputFailure[*models.User](err)
	}

	user, err := s.users.FindByUserID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return Failure[*models.User](ErrCodeUserNotFound, fmt.Sprintf("user with userId '%s' not found", id), err)
	}
	if err != nil {
		s.logger.Error("unable to find user", "user_id", id, "error", err)
		return databaseFailure[*models.User](err)
	}

	return Success(user)
}

// DeleteUser removes the user. Its accounts are detached and keep their history.
func (s *UserService) DeleteUser(ctx context.Context, userID string) Result[uuid.UUID] {
	s.logger.Info("deleting user", "user_id", userID)

	id, err := ParseExternalID("userId", userID)
	if err != nil {
		s.logger.Error("invalid user id", "user_id", userID, "error", err)
		return invalidInputFailure[uuid.UUID](err)
	}

	err = s.users.Delete(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		s.logger.Error("user not found", "user_id", id)
		return Failure[uuid.UUID](ErrCodeUserNotFound, fmt.Sprintf("user with userId '%s' not found", id), err)
	}
	if err != nil {
		s.logger.Error("unable to delete user", "user_id", id, "error", err)
		return databaseFailure[uuid.UUID](err)
	}

	s.logger.Info("user deleted", "user_id", id)
	return Success(id)
}
