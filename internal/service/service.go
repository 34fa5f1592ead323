// Package service maps external input onto the domain model, runs the store
// operations and reports every outcome as a Result tagged with an ErrorCode.
package service

import (
	"errors"

	"github.com/benx421/banking/internal/models"
)

// invalidInputFailure turns a mapping or construction failure into a result.
// Password rule violations get their own code.
func invalidInputFailure[T any](err error) Result[T] {
	var invalid *models.InvalidInputError
	if !errors.As(err, &invalid) {
		return Failure[T](ErrCodeMapping, "", err)
	}
	if invalid.Field == "password" {
		return Failure[T](ErrCodePassword, invalid.Message, err)
	}
	return Failure[T](ErrCodeMapping, invalid.Message, err)
}

// databaseFailure downgrades any unexpected store error
func databaseFailure[T any](err error) Result[T] {
	return Failure[T](ErrCodeDatabase, "", err)
}
