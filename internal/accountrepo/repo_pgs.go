// Package accountrepo manages repository layer of account USD balances.
//
// Balances live on the users table but are mutated exclusively through
// the ledger transaction layer, which binds this repo to its *sql.Tx.
package accountrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/proxmarket/proxmarket/internal/domain"
	"github.com/proxmarket/proxmarket/pkg/dbpkg"
	"github.com/proxmarket/proxmarket/pkg/errorspkg"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const getBalanceQuery = `
SELECT balance
FROM users
WHERE username = $1
`

// GetBalance returns the current USD balance of the account.
func (r *RepoPGS) GetBalance(ctx context.Context, username string) (string, error) {
	l := zerolog.Ctx(ctx)

	var balance string

	err := r.db.QueryRowContext(ctx, getBalanceQuery, username).Scan(&balance)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return "", domain.ErrAccountNotFound
		}

		return "", errorspkg.ErrInternal
	}

	return balance, nil
}

const getBalanceForUpdateQuery = `
SELECT balance
FROM users
WHERE username = $1
FOR UPDATE
`

// GetBalanceForUpdate locks the account row for the rest of the enclosing
// transaction and returns the current USD balance. The row lock serializes
// the check-then-mutate sequence per account.
func (r *RepoPGS) GetBalanceForUpdate(ctx context.Context, username string) (string, error) {
	l := zerolog.Ctx(ctx)

	var balance string

	err := r.db.QueryRowContext(ctx, getBalanceForUpdateQuery, username).Scan(&balance)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return "", domain.ErrAccountNotFound
		}

		if dbpkg.IsConflict(err) {
			return "", err
		}

		return "", errorspkg.ErrInternal
	}

	return balance, nil
}

const addBalanceQuery = `
UPDATE users
SET balance = balance + $1
WHERE username = $2
RETURNING balance
`

// AddBalance changes the account's USD balance by the given signed amount
// and returns the new balance. The users_balance_check constraint is the
// database backstop against overdraft.
func (r *RepoPGS) AddBalance(ctx context.Context, amount string, username string) (string, error) {
	l := zerolog.Ctx(ctx)

	var balance string

	err := r.db.QueryRowContext(ctx, addBalanceQuery, amount, username).Scan(&balance)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return "", domain.ErrAccountNotFound
		}

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "users_balance_check" {
				return "", domain.ErrInsufficientFunds
			}
		}

		if dbpkg.IsConflict(err) {
			return "", err
		}

		return "", errorspkg.ErrInternal
	}

	return balance, nil
}
