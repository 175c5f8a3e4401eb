package ledgerrepo

import (
	"context"

	"github.com/proxmarket/proxmarket/internal/accountrepo"
	"github.com/proxmarket/proxmarket/internal/domain"
	"github.com/proxmarket/proxmarket/internal/holdingrepo"
	"github.com/proxmarket/proxmarket/internal/orderrepo"
	"github.com/proxmarket/proxmarket/internal/traderepo"
)

// Read-only projections over committed state. These never take locks and
// never see in-flight ledger transactions.

// GetBalance returns the current USD balance and all holdings of the account.
func (r *RepoPGS) GetBalance(ctx context.Context, username string) (domain.Balance, error) {
	balance, err := accountrepo.NewRepoPGS(r.conn).GetBalance(ctx, username)
	if err != nil {
		return domain.Balance{}, err
	}

	holdings, err := holdingrepo.NewRepoPGS(r.conn).List(ctx, username)
	if err != nil {
		return domain.Balance{}, err
	}

	return domain.Balance{USD: balance, Holdings: holdings}, nil
}

// ListTrades returns the account's most recent trades, newest first.
func (r *RepoPGS) ListTrades(ctx context.Context, username string, limit int32) ([]domain.Trade, error) {
	return traderepo.NewRepoPGS(r.conn).List(ctx, username, limit)
}

// ListOrders returns the account's orders newest first with nested credentials.
func (r *RepoPGS) ListOrders(ctx context.Context, username string) ([]domain.Order, error) {
	return orderrepo.NewRepoPGS(r.conn).List(ctx, username)
}
