// Package orderrepo manages repository layer of proxy orders and their credentials.
package orderrepo

import (
	"context"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/proxmarket/proxmarket/internal/domain"
	"github.com/proxmarket/proxmarket/pkg/dbpkg"
	"github.com/proxmarket/proxmarket/pkg/errorspkg"
)

// RepoPGS facilitates order repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns order RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO
    orders (username, plan_id, location, quantity, duration_months, total_price, expires_at)
VALUES
    ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, username, plan_id, location, quantity, duration_months, total_price, status, expires_at, created_at
`

// Create creates the order and then returns it without credentials.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateOrderParams) (domain.Order, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.Username,
		arg.PlanID,
		arg.Location,
		arg.Quantity,
		arg.DurationMonths,
		arg.TotalPrice,
		arg.ExpiresAt,
	)

	var o domain.Order

	err := row.Scan(
		&o.ID,
		&o.Username,
		&o.PlanID,
		&o.Location,
		&o.Quantity,
		&o.DurationMonths,
		&o.TotalPrice,
		&o.Status,
		&o.ExpiresAt,
		&o.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "orders_username_fkey":
				return o, domain.ErrAccountNotFound
			case "orders_plan_id_fkey":
				return o, domain.ErrPlanNotFound
			}
		}

		if dbpkg.IsConflict(err) {
			return o, err
		}

		return o, errorspkg.ErrInternal
	}

	return o, nil
}

const createCredentialQuery = `
INSERT INTO
    credentials (order_id, host, port, username, password, location)
VALUES
    ($1, $2, $3, $4, $5, $6)
RETURNING id, order_id, host, port, username, password, location, status, created_at
`

// CreateCredential binds one provisioned credential to the order.
func (r *RepoPGS) CreateCredential(ctx context.Context, orderID int64, location string, arg domain.ProvisionParams) (domain.Credential, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createCredentialQuery,
		orderID,
		arg.Host,
		arg.Port,
		arg.Username,
		arg.Password,
		location,
	)

	var c domain.Credential

	err := row.Scan(
		&c.ID,
		&c.OrderID,
		&c.Host,
		&c.Port,
		&c.Username,
		&c.Password,
		&c.Location,
		&c.Status,
		&c.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if dbpkg.IsConflict(err) {
			return c, err
		}

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const listQuery = `
SELECT
	o.id, o.username, o.plan_id, p.name, p.type, o.location, o.quantity,
	o.duration_months, o.total_price, o.status, o.expires_at, o.created_at
FROM orders o
JOIN plans p ON o.plan_id = p.id
WHERE o.username = $1
ORDER BY o.created_at DESC, o.id DESC
`

const listCredentialsQuery = `
SELECT
	c.id, c.order_id, c.host, c.port, c.username, c.password, c.location, c.status, c.created_at
FROM credentials c
JOIN orders o ON c.order_id = o.id
WHERE o.username = $1
ORDER BY c.order_id, c.id
`

// List returns the user's orders newest first, each with its credentials.
func (r *RepoPGS) List(ctx context.Context, username string) ([]domain.Order, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, username)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	orders := []domain.Order{}
	index := map[int64]int{}

	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(
			&o.ID,
			&o.Username,
			&o.PlanID,
			&o.PlanName,
			&o.PlanType,
			&o.Location,
			&o.Quantity,
			&o.DurationMonths,
			&o.TotalPrice,
			&o.Status,
			&o.ExpiresAt,
			&o.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		o.Credentials = []domain.Credential{}
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	credRows, err := r.db.QueryContext(ctx, listCredentialsQuery, username)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer credRows.Close()

	for credRows.Next() {
		var c domain.Credential
		if err := credRows.Scan(
			&c.ID,
			&c.OrderID,
			&c.Host,
			&c.Port,
			&c.Username,
			&c.Password,
			&c.Location,
			&c.Status,
			&c.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		if i, ok := index[c.OrderID]; ok {
			orders[i].Credentials = append(orders[i].Credentials, c)
		}
	}

	if err := credRows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return orders, nil
}
