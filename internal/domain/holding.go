package domain

import (
	"errors"
	"time"
)

// ErrInsufficientHoldings indicates that the account does not hold enough
// of the asset to sell. A missing holding counts as zero.
var ErrInsufficientHoldings = errors.New("insufficient crypto balance")

// Holding is the quantity of one asset symbol owned by an account.
// A drained holding stays at zero rather than being deleted.
type Holding struct {
	ID        int64     `json:"-"`
	Username  string    `json:"-"`
	Symbol    string    `json:"symbol"`
	Quantity  string    `json:"quantity"`
	CreatedAt time.Time `json:"-"`
}
