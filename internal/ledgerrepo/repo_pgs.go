// Package ledgerrepo implements the transaction layer of the ledger engine.
//
// Every operation runs as a single database transaction that first takes
// the account row lock, making the funds-check-then-mutate sequence appear
// atomic per account. Different accounts never block each other.
package ledgerrepo

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/proxmarket/proxmarket/internal/accountrepo"
	"github.com/proxmarket/proxmarket/internal/domain"
	"github.com/proxmarket/proxmarket/internal/holdingrepo"
	"github.com/proxmarket/proxmarket/internal/orderrepo"
	"github.com/proxmarket/proxmarket/internal/traderepo"
	"github.com/proxmarket/proxmarket/pkg/dbpkg"
	"github.com/proxmarket/proxmarket/pkg/errorspkg"
	"github.com/proxmarket/proxmarket/pkg/metricspkg"
)

// maxTxAttempts bounds retries of transactions aborted by serialization
// failures or deadlocks. Terminal business errors are never retried.
const maxTxAttempts = 3

// RepoPGS facilitates ledger transaction layer logic.
type RepoPGS struct {
	conn *sql.DB
}

// NewRepoPGS returns ledger RepoPGS with a connection to start transactions.
func NewRepoPGS(conn *sql.DB) *RepoPGS {
	return &RepoPGS{
		conn: conn,
	}
}

// repos binds the entity repos to one transaction.
type repos struct {
	account *accountrepo.RepoPGS
	holding *holdingrepo.RepoPGS
	trade   *traderepo.RepoPGS
	order   *orderrepo.RepoPGS
}

func newRepos(tx *sql.Tx) repos {
	return repos{
		account: accountrepo.NewRepoPGS(tx),
		holding: holdingrepo.NewRepoPGS(tx),
		trade:   traderepo.NewRepoPGS(tx),
		order:   orderrepo.NewRepoPGS(tx),
	}
}

// execTx runs fn within a database transaction, retrying the whole unit a
// bounded number of times when the database aborts it due to a conflict
// with a concurrent transaction.
func (r *RepoPGS) execTx(ctx context.Context, fn func(repos) error) error {
	l := zerolog.Ctx(ctx)

	var err error

	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		if attempt > 0 {
			metricspkg.TxRetries.Inc()
		}

		err = r.runTx(ctx, fn)
		if err == nil || !dbpkg.IsConflict(err) {
			return err
		}

		l.Warn().Err(err).Int("attempt", attempt+1).Msg("ledger transaction conflict")
	}

	return domain.ErrTxConflict
}

func (r *RepoPGS) runTx(ctx context.Context, fn func(repos) error) error {
	l := zerolog.Ctx(ctx)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if err := fn(newRepos(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			l.Error().Err(rbErr).Send()
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()

		if dbpkg.IsConflict(err) {
			return err
		}

		return errorspkg.ErrInternal
	}

	return nil
}

// checkFunds verifies under the row lock that the balance covers total.
func checkFunds(balance, total string) error {
	balanceDecimal, err := decimal.NewFromString(balance)
	if err != nil {
		return errorspkg.ErrInternal
	}

	totalDecimal, err := decimal.NewFromString(total)
	if err != nil {
		return errorspkg.ErrInternal
	}

	if balanceDecimal.LessThan(totalDecimal) {
		return domain.ErrInsufficientFunds
	}

	return nil
}

func snapshot(ctx context.Context, p repos, username, balance string) (domain.Balance, error) {
	holdings, err := p.holding.List(ctx, username)
	if err != nil {
		return domain.Balance{}, err
	}

	return domain.Balance{USD: balance, Holdings: holdings}, nil
}

// BuyTx debits USD, credits the holding, and appends the trade record
// within a single transaction.
func (r *RepoPGS) BuyTx(ctx context.Context, arg domain.CreateTradeParams) (domain.TradeTxResult, error) {
	var result domain.TradeTxResult

	err := r.execTx(ctx, func(p repos) error {
		balance, err := p.account.GetBalanceForUpdate(ctx, arg.Username)
		if err != nil {
			return err
		}

		if err := checkFunds(balance, arg.Total); err != nil {
			return err
		}

		newBalance, err := p.account.AddBalance(ctx, "-"+arg.Total, arg.Username)
		if err != nil {
			return err
		}

		if _, err := p.holding.AddQuantity(ctx, arg.Quantity, arg.Username, arg.Symbol); err != nil {
			return err
		}

		result.Trade, err = p.trade.Create(ctx, arg)
		if err != nil {
			return err
		}

		result.Balance, err = snapshot(ctx, p, arg.Username, newBalance)

		return err
	})

	if err != nil {
		return domain.TradeTxResult{}, err
	}

	return result, nil
}

// SellTx debits the holding, credits USD, and appends the trade record
// within a single transaction. A missing holding counts as zero.
func (r *RepoPGS) SellTx(ctx context.Context, arg domain.CreateTradeParams) (domain.TradeTxResult, error) {
	var result domain.TradeTxResult

	err := r.execTx(ctx, func(p repos) error {
		// Account row lock first; all ledger operations take locks in
		// the same order.
		if _, err := p.account.GetBalanceForUpdate(ctx, arg.Username); err != nil {
			return err
		}

		held, err := p.holding.GetQuantity(ctx, arg.Username, arg.Symbol)
		if err != nil {
			return err
		}

		heldDecimal, err := decimal.NewFromString(held)
		if err != nil {
			return errorspkg.ErrInternal
		}

		quantityDecimal, err := decimal.NewFromString(arg.Quantity)
		if err != nil {
			return errorspkg.ErrInternal
		}

		if heldDecimal.LessThan(quantityDecimal) {
			return domain.ErrInsufficientHoldings
		}

		if _, err := p.holding.AddQuantity(ctx, "-"+arg.Quantity, arg.Username, arg.Symbol); err != nil {
			return err
		}

		newBalance, err := p.account.AddBalance(ctx, arg.Total, arg.Username)
		if err != nil {
			return err
		}

		result.Trade, err = p.trade.Create(ctx, arg)
		if err != nil {
			return err
		}

		result.Balance, err = snapshot(ctx, p, arg.Username, newBalance)

		return err
	})

	if err != nil {
		return domain.TradeTxResult{}, err
	}

	return result, nil
}

// PurchaseTx debits USD, creates the order, and provisions one credential
// per ordered unit within a single transaction. A provisioning error
// aborts the whole unit; no partial debit, order, or credential survives.
func (r *RepoPGS) PurchaseTx(
	ctx context.Context,
	arg domain.CreateOrderParams,
	provision func(ctx context.Context) (domain.ProvisionParams, error),
) (domain.OrderTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.OrderTxResult

	err := r.execTx(ctx, func(p repos) error {
		balance, err := p.account.GetBalanceForUpdate(ctx, arg.Username)
		if err != nil {
			return err
		}

		if err := checkFunds(balance, arg.TotalPrice); err != nil {
			return err
		}

		newBalance, err := p.account.AddBalance(ctx, "-"+arg.TotalPrice, arg.Username)
		if err != nil {
			return err
		}

		result.Order, err = p.order.Create(ctx, arg)
		if err != nil {
			return err
		}

		result.Order.Credentials = []domain.Credential{}

		for i := int32(0); i < arg.Quantity; i++ {
			params, err := provision(ctx)
			if err != nil {
				l.Error().Err(err).Int32("unit", i+1).Msg("provisioning failed, aborting purchase")
				return domain.ErrProvisioningFailed
			}

			cred, err := p.order.CreateCredential(ctx, result.Order.ID, arg.Location, params)
			if err != nil {
				return err
			}

			result.Order.Credentials = append(result.Order.Credentials, cred)
		}

		result.Balance, err = snapshot(ctx, p, arg.Username, newBalance)

		return err
	})

	if err != nil {
		return domain.OrderTxResult{}, err
	}

	return result, nil
}
