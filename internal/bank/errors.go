package bank

import "errors"

// Domain errors for ledger operations. These are expected, recoverable
// outcomes of a validation check, not exceptional control flow: the
// operation performs no state change and the caller may retry with
// corrected input.
var (
	// ErrAccountNotFound means no account with the given number exists.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAmountNotPositive means the amount was zero or negative.
	ErrAmountNotPositive = errors.New("amount must be positive")

	// ErrInsufficientFunds means the amount exceeds the source account's
	// withdrawable capacity (balance, plus overdraft limit for checking).
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNotSavings means interest was requested on a non-savings account.
	ErrNotSavings = errors.New("not a savings account")
)
