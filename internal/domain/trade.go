package domain

import "time"

// Trade directions.
const (
	DirectionBuy  = "buy"
	DirectionSell = "sell"
)

// Trade is the immutable record of one committed buy or sell.
type Trade struct {
	ID        int64     `json:"id"`
	Username  string    `json:"-"`
	Direction string    `json:"direction"`
	Symbol    string    `json:"symbol"`
	Quantity  string    `json:"quantity"`
	Price     string    `json:"price"`
	Total     string    `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateTradeParams is the input data for one buy or sell operation.
// Quantity and Price are decimal strings; Total is computed by the service.
type CreateTradeParams struct {
	Username  string
	Direction string
	Symbol    string
	Quantity  string
	Price     string
	Total     string
}

// TradeTxResult is the result of a committed trade transaction.
type TradeTxResult struct {
	Trade   Trade   `json:"trade"`
	Balance Balance `json:"balance"`
}
