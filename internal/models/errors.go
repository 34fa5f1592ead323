package models

import (
	"errors"
	"fmt"
)

// Domain errors that can be returned by repositories and stores
var (
	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates an entity with the same external id already exists
	ErrDuplicate = errors.New("duplicate")

	// ErrReferenceNotFound indicates an entity referenced by external id is not persisted
	ErrReferenceNotFound = errors.New("reference not found")

	// ErrAccountAlreadyExists indicates the owning user already has an account with that name
	ErrAccountAlreadyExists = errors.New("account already exists")
)

// InvalidInputError reports a value that cannot become part of a domain object,
// either because it is malformed or because it violates an invariant.
type InvalidInputError struct {
	Err     error
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

func invalidInput(field, format string, args ...any) *InvalidInputError {
	return &InvalidInputError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
