// Package traderepo manages the append-only trade journal.
//
// Trades are written only inside ledger transactions, so a journal row
// exists if and only if the balance mutation it records was committed.
package traderepo

import (
	"context"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/proxmarket/proxmarket/internal/domain"
	"github.com/proxmarket/proxmarket/pkg/dbpkg"
	"github.com/proxmarket/proxmarket/pkg/errorspkg"
)

// HistoryPageSize caps the number of trades returned by List.
const HistoryPageSize = 50

// RepoPGS facilitates trade repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns trade RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO
    trades (username, direction, symbol, quantity, price, total)
VALUES
    ($1, $2, $3, $4, $5, $6)
RETURNING id, username, direction, symbol, quantity, price, total, created_at
`

// Create appends the trade record and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateTradeParams) (domain.Trade, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.Username,
		arg.Direction,
		arg.Symbol,
		arg.Quantity,
		arg.Price,
		arg.Total,
	)

	var t domain.Trade

	err := row.Scan(
		&t.ID,
		&t.Username,
		&t.Direction,
		&t.Symbol,
		&t.Quantity,
		&t.Price,
		&t.Total,
		&t.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "trades_username_fkey" {
				return t, domain.ErrAccountNotFound
			}
		}

		if dbpkg.IsConflict(err) {
			return t, err
		}

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const listQuery = `
SELECT
	id, username, direction, symbol, quantity, price, total, created_at
FROM trades
WHERE username = $1
ORDER BY created_at DESC, id DESC
LIMIT $2
`

// List returns the most recent trades of the user, newest first.
func (r *RepoPGS) List(ctx context.Context, username string, limit int32) ([]domain.Trade, error) {
	l := zerolog.Ctx(ctx)

	if limit <= 0 || limit > HistoryPageSize {
		limit = HistoryPageSize
	}

	rows, err := r.db.QueryContext(ctx, listQuery, username, limit)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Trade{}

	for rows.Next() {
		var t domain.Trade
		if err := rows.Scan(
			&t.ID,
			&t.Username,
			&t.Direction,
			&t.Symbol,
			&t.Quantity,
			&t.Price,
			&t.Total,
			&t.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
