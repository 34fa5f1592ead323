package service

import "fmt"

// ErrorCode tags every failed service result
type ErrorCode string

// Error codes reported to callers
const (
	ErrCodeDatabase                 ErrorCode = "DATABASE_ERROR"
	ErrCodeMapping                  ErrorCode = "MAPPING_ERROR"
	ErrCodeUserNotFound             ErrorCode = "USER_NOT_FOUND"
	ErrCodePassword                 ErrorCode = "PASSWORD_ERROR"
	ErrCodeAccountAlreadyExists     ErrorCode = "ACCOUNT_ALREADY_EXIST"
	ErrCodeAccountNotFound          ErrorCode = "ACCOUNT_NOT_FOUND"
	ErrCodeTransactionAlreadyExists ErrorCode = "TRANSACTION_ALREADY_EXIST"
	ErrCodeTransactionNotFound      ErrorCode = "TRANSACTION_NOT_FOUND"
)

// UnexpectedErrorMessage is reported when a failure carries no message of its own
const UnexpectedErrorMessage = "Unexpected error occurred."

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    ErrorCode
}

func (e *ServiceError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// errorMessage returns the message of err, falling back to the generic one
func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return UnexpectedErrorMessage
	}
	return err.Error()
}
