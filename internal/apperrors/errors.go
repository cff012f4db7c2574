package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrForbidden indicates the caller lacks the role required for the action.
var ErrForbidden = errors.New("permission denied")

// ErrNotRegistered indicates an action from a user id absent from the Users table.
var ErrNotRegistered = errors.New("user not registered")

// ErrStore indicates a failure talking to the tabular store (network, auth, malformed response).
var ErrStore = errors.New("tabular store failure")

// StoreError wraps a store failure so errors.Is(err, ErrStore) holds while keeping the cause.
func StoreError(op, table string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrStore, op, table, err)
}
