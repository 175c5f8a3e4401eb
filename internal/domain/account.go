package domain

import "errors"

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInsufficientFunds indicates that the account USD balance does not cover the operation.
	ErrInsufficientFunds = errors.New("insufficient balance")
	// ErrInvalidAmount indicates invalid amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidPrice indicates invalid price.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrTxConflict indicates that the operation kept conflicting with
	// concurrent transactions after all retries.
	ErrTxConflict = errors.New("transaction conflict")
)

// Balance is a snapshot of an account's USD balance and crypto holdings.
type Balance struct {
	USD      string    `json:"usd"`
	Holdings []Holding `json:"holdings"`
}
