// Package planrepo manages repository layer of proxy plans.
package planrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/proxmarket/proxmarket/internal/domain"
	"github.com/proxmarket/proxmarket/pkg/dbpkg"
	"github.com/proxmarket/proxmarket/pkg/errorspkg"
)

// RepoPGS facilitates plan repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns plan RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const getQuery = `
SELECT
	id, name, type, description, price_per_month, max_connections, speed, locations, created_at
FROM plans
WHERE id = $1
`

// Get returns the plan with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int32) (domain.Plan, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var p domain.Plan

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Type,
		&p.Description,
		&p.PricePerMonth,
		&p.MaxConnections,
		&p.Speed,
		pq.Array(&p.Locations),
		&p.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return p, domain.ErrPlanNotFound
		}

		return p, errorspkg.ErrInternal
	}

	return p, nil
}

const listQuery = `
SELECT
	id, name, type, description, price_per_month, max_connections, speed, locations, created_at
FROM plans
ORDER BY price_per_month
`

// List returns all plans ordered by monthly price.
func (r *RepoPGS) List(ctx context.Context) ([]domain.Plan, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Plan{}

	for rows.Next() {
		var p domain.Plan
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Type,
			&p.Description,
			&p.PricePerMonth,
			&p.MaxConnections,
			&p.Speed,
			pq.Array(&p.Locations),
			&p.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, p)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
