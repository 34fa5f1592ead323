package service

// Result is the outcome of a service operation: either a value or a *ServiceError,
// never both.
type Result[T any] struct {
	value T
	err   *ServiceError
}

// Success wraps a successful value
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure builds a failed result. An empty message falls back to the message of
// err, then to UnexpectedErrorMessage.
func Failure[T any](code ErrorCode, message string, err error) Result[T] {
	if message == "" {
		message = errorMessage(err)
	}
	return Result[T]{err: &ServiceError{Code: code, Message: message, Err: err}}
}

// Ok reports whether the operation succeeded
func (r Result[T]) Ok() bool {
	return r.err == nil
}

// Value returns the success value, or the zero value for a failure
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure, or nil on success
func (r Result[T]) Err() *ServiceError {
	return r.err
}

// Get returns the value and the failure as a regular Go error pair
func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}
