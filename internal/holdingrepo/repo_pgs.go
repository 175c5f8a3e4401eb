// Package holdingrepo manages repository layer of crypto holdings.
package holdingrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/proxmarket/proxmarket/internal/domain"
	"github.com/proxmarket/proxmarket/pkg/dbpkg"
	"github.com/proxmarket/proxmarket/pkg/errorspkg"
)

// RepoPGS facilitates holding repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns holding RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const getQuantityQuery = `
SELECT quantity
FROM holdings
WHERE username = $1 AND symbol = $2
`

// GetQuantity returns the owned quantity of the symbol.
// A missing holding counts as zero.
func (r *RepoPGS) GetQuantity(ctx context.Context, username, symbol string) (string, error) {
	l := zerolog.Ctx(ctx)

	var quantity string

	err := r.db.QueryRowContext(ctx, getQuantityQuery, username, symbol).Scan(&quantity)
	if err != nil {
		if err == sql.ErrNoRows {
			return "0", nil
		}

		l.Error().Err(err).Send()

		return "", errorspkg.ErrInternal
	}

	return quantity, nil
}

const addQuantityQuery = `
INSERT INTO holdings (username, symbol, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (username, symbol)
DO UPDATE SET quantity = holdings.quantity + $3
RETURNING id, username, symbol, quantity, created_at
`

// AddQuantity changes the holding of (username, symbol) by the given signed
// amount, creating the holding if absent, and returns the changed holding.
// The holdings_quantity_check constraint is the database backstop against
// a negative holding.
func (r *RepoPGS) AddQuantity(ctx context.Context, amount, username, symbol string) (domain.Holding, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, addQuantityQuery, username, symbol, amount)

	var h domain.Holding

	err := row.Scan(
		&h.ID,
		&h.Username,
		&h.Symbol,
		&h.Quantity,
		&h.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "holdings_quantity_check":
				return h, domain.ErrInsufficientHoldings
			case "holdings_username_fkey":
				return h, domain.ErrAccountNotFound
			}
		}

		if dbpkg.IsConflict(err) {
			return h, err
		}

		return h, errorspkg.ErrInternal
	}

	return h, nil
}

const listQuery = `
SELECT
	id, username, symbol, quantity, created_at
FROM holdings
WHERE username = $1
ORDER BY symbol
`

// List returns all holdings of the user ordered by symbol.
func (r *RepoPGS) List(ctx context.Context, username string) ([]domain.Holding, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, username)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Holding{}

	for rows.Next() {
		var h domain.Holding
		if err := rows.Scan(&h.ID, &h.Username, &h.Symbol, &h.Quantity, &h.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, h)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
