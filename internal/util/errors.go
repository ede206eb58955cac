// internal/util/errors.go
package util

import "errors"

// Registry errors.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input provided")
	ErrAlreadyExists   = errors.New("user with this tax id already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrAccountNotFound = errors.New("account not found")
)

// Ledger errors. Each one leaves balance, counters and ledger untouched.
var (
	ErrInvalidAmount             = errors.New("invalid amount")
	ErrInsufficientFunds         = errors.New("insufficient funds")
	ErrLimitExceeded             = errors.New("amount exceeds the withdrawal limit")
	ErrDailyWithdrawalCapReached = errors.New("daily withdrawal count reached")
	ErrDailyLimitExceeded        = errors.New("daily transaction limit reached")
)

// IsError reports whether any error in err's chain matches target.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
