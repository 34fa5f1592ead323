package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a bank customer owning zero or more accounts
type User struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	Birthdate time.Time `db:"birthdate"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Password  string    `db:"password"`
	Accounts  []Account
	ID        int64     `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
}

// NewUser builds a user after checking the age and password rules. A nil userID
// is replaced by a freshly generated one.
func NewUser(userID uuid.UUID, firstName, lastName string, birthdate time.Time, password string) (*User, error) {
	if err := ValidateName("first_name", firstName); err != nil {
		return nil, err
	}
	if err := ValidateName("last_name", lastName); err != nil {
		return nil, err
	}
	if err := ValidateBirthdate(birthdate, time.Now()); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	if userID == uuid.Nil {
		userID = uuid.New()
	}

	now := time.Now()
	return &User{
		UserID:    userID,
		FirstName: firstName,
		LastName:  lastName,
		Birthdate: truncateToDate(birthdate),
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
