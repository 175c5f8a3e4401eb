// Package ledgerservice manages business logic layer of the ledger engine.
//
// It validates requests, computes totals in exact decimal arithmetic, and
// delegates the atomic work to the transaction layer. It is the only writer
// of balances; the query methods are read-only.
package ledgerservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/proxmarket/proxmarket/internal/domain"
	"github.com/proxmarket/proxmarket/pkg/metricspkg"
)

// Order bounds from the catalog contract.
const (
	MinOrderQuantity = 1
	MaxOrderQuantity = 100
	MinOrderDuration = 1
	MaxOrderDuration = 12
)

// Repo provides data access layer interface needed by ledger service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package ledgerservice
type Repo interface {
	BuyTx(ctx context.Context, arg domain.CreateTradeParams) (domain.TradeTxResult, error)
	SellTx(ctx context.Context, arg domain.CreateTradeParams) (domain.TradeTxResult, error)
	PurchaseTx(ctx context.Context, arg domain.CreateOrderParams, provision func(ctx context.Context) (domain.ProvisionParams, error)) (domain.OrderTxResult, error)
	GetBalance(ctx context.Context, username string) (domain.Balance, error)
	ListTrades(ctx context.Context, username string, limit int32) ([]domain.Trade, error)
	ListOrders(ctx context.Context, username string) ([]domain.Order, error)
}

// PlanGetter provides plan catalog lookup needed by the purchase operation.
type PlanGetter interface {
	Get(ctx context.Context, id int32) (domain.Plan, error)
}

// Provisioner generates one opaque proxy credential per call. It must be
// side-effect-free so that an aborted purchase leaves nothing behind; a
// returned error aborts the enclosing transaction.
type Provisioner interface {
	Provision(ctx context.Context, location string) (domain.ProvisionParams, error)
}

// Service facilitates ledger service layer logic.
type Service struct {
	repo        Repo
	plans       PlanGetter
	provisioner Provisioner
}

// New returns ledger service struct to manage ledger business logic.
func New(lr Repo, pg PlanGetter, pr Provisioner) *Service {
	return &Service{
		repo:        lr,
		plans:       pg,
		provisioner: pr,
	}
}

// parsePositive parses a decimal string and requires it to be positive.
func parsePositive(s string, invalid error) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, invalid
	}

	if d.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, invalid
	}

	return d, nil
}

func (s *Service) tradeParams(ctx context.Context, username, direction, symbol, quantity, price string) (domain.CreateTradeParams, error) {
	l := zerolog.Ctx(ctx)

	quantityDecimal, err := parsePositive(quantity, domain.ErrInvalidAmount)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.CreateTradeParams{}, err
	}

	priceDecimal, err := parsePositive(price, domain.ErrInvalidPrice)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.CreateTradeParams{}, err
	}

	return domain.CreateTradeParams{
		Username:  username,
		Direction: direction,
		Symbol:    symbol,
		Quantity:  quantityDecimal.String(),
		Price:     priceDecimal.String(),
		Total:     quantityDecimal.Mul(priceDecimal).String(),
	}, nil
}

// Buy exchanges USD for the asset at the given price and returns the
// updated balance snapshot.
func (s *Service) Buy(ctx context.Context, username, symbol, quantity, price string) (domain.TradeTxResult, error) {
	arg, err := s.tradeParams(ctx, username, domain.DirectionBuy, symbol, quantity, price)
	if err != nil {
		return domain.TradeTxResult{}, err
	}

	result, err := s.repo.BuyTx(ctx, arg)
	if err != nil {
		if err == domain.ErrInsufficientFunds {
			metricspkg.LedgerRejections.WithLabelValues("funds").Inc()
		}

		return result, err
	}

	metricspkg.TradesTotal.WithLabelValues(domain.DirectionBuy).Inc()

	return result, nil
}

// Sell exchanges the asset for USD at the given price and returns the
// updated balance snapshot.
func (s *Service) Sell(ctx context.Context, username, symbol, quantity, price string) (domain.TradeTxResult, error) {
	arg, err := s.tradeParams(ctx, username, domain.DirectionSell, symbol, quantity, price)
	if err != nil {
		return domain.TradeTxResult{}, err
	}

	result, err := s.repo.SellTx(ctx, arg)
	if err != nil {
		if err == domain.ErrInsufficientHoldings {
			metricspkg.LedgerRejections.WithLabelValues("holdings").Inc()
		}

		return result, err
	}

	metricspkg.TradesTotal.WithLabelValues(domain.DirectionSell).Inc()

	return result, nil
}

// Purchase buys a proxy subscription: it debits the plan price for the
// whole duration and provisions one credential per ordered unit, all as a
// single atomic unit.
func (s *Service) Purchase(ctx context.Context, username string, planID int32, location string, quantity, durationMonths int32) (domain.OrderTxResult, error) {
	l := zerolog.Ctx(ctx)

	if quantity < MinOrderQuantity || quantity > MaxOrderQuantity {
		l.Info().Int32("quantity", quantity).Msg("rejected order quantity")
		return domain.OrderTxResult{}, domain.ErrInvalidQuantity
	}

	if durationMonths < MinOrderDuration || durationMonths > MaxOrderDuration {
		l.Info().Int32("duration_months", durationMonths).Msg("rejected order duration")
		return domain.OrderTxResult{}, domain.ErrInvalidDuration
	}

	plan, err := s.plans.Get(ctx, planID)
	if err != nil {
		return domain.OrderTxResult{}, err
	}

	price, err := decimal.NewFromString(plan.PricePerMonth)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.OrderTxResult{}, domain.ErrInvalidPrice
	}

	total := price.
		Mul(decimal.NewFromInt(int64(quantity))).
		Mul(decimal.NewFromInt(int64(durationMonths)))

	arg := domain.CreateOrderParams{
		Username:       username,
		PlanID:         plan.ID,
		Location:       location,
		Quantity:       quantity,
		DurationMonths: durationMonths,
		TotalPrice:     total.String(),
		ExpiresAt:      time.Now().AddDate(0, 0, int(30*durationMonths)),
	}

	provision := func(ctx context.Context) (domain.ProvisionParams, error) {
		return s.provisioner.Provision(ctx, location)
	}

	result, err := s.repo.PurchaseTx(ctx, arg, provision)
	if err != nil {
		if err == domain.ErrInsufficientFunds {
			metricspkg.LedgerRejections.WithLabelValues("funds").Inc()
		}

		return result, err
	}

	result.Order.PlanName = plan.Name
	result.Order.PlanType = plan.Type

	metricspkg.OrdersTotal.Inc()

	return result, nil
}

// GetBalance returns the current USD balance and holdings of the account.
func (s *Service) GetBalance(ctx context.Context, username string) (domain.Balance, error) {
	return s.repo.GetBalance(ctx, username)
}

// GetHistory returns the account's most recent trades, newest first,
// capped at the journal page size.
func (s *Service) GetHistory(ctx context.Context, username string) ([]domain.Trade, error) {
	return s.repo.ListTrades(ctx, username, 0)
}

// GetOrders returns the account's orders newest first with nested credentials.
func (s *Service) GetOrders(ctx context.Context, username string) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx, username)
}
