package planrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/proxmarket/proxmarket/internal/domain"
)

// RepoCached wraps the primary plan repo with a Redis read-through cache.
// The catalog is read-mostly, so entries simply expire after the TTL.
// Cache failures fall back to the primary repo and are never surfaced.
//
// The cache is consulted only by the catalog queries; ledger transactions
// always go through the primary repo.
type RepoCached struct {
	primary *RepoPGS
	rdb     *redis.Client
	ttl     time.Duration
}

// NewRepoCached returns a cached wrapper around the primary plan repo.
func NewRepoCached(primary *RepoPGS, rdb *redis.Client, ttl time.Duration) *RepoCached {
	return &RepoCached{
		primary: primary,
		rdb:     rdb,
		ttl:     ttl,
	}
}

func planKey(id int32) string {
	return fmt.Sprintf("plan:%d", id)
}

const plansKey = "plans:all"

// Get returns the plan with the given id, from cache when possible.
func (r *RepoCached) Get(ctx context.Context, id int32) (domain.Plan, error) {
	l := zerolog.Ctx(ctx)

	cached, err := r.rdb.Get(ctx, planKey(id)).Bytes()
	if err == nil {
		var p domain.Plan
		if err := json.Unmarshal(cached, &p); err == nil {
			return p, nil
		}
	} else if err != redis.Nil {
		l.Warn().Err(err).Msg("plan cache read failed")
	}

	p, err := r.primary.Get(ctx, id)
	if err != nil {
		return p, err
	}

	if data, err := json.Marshal(p); err == nil {
		if err := r.rdb.Set(ctx, planKey(id), data, r.ttl).Err(); err != nil {
			l.Warn().Err(err).Msg("plan cache write failed")
		}
	}

	return p, nil
}

// List returns all plans ordered by monthly price, from cache when possible.
func (r *RepoCached) List(ctx context.Context) ([]domain.Plan, error) {
	l := zerolog.Ctx(ctx)

	cached, err := r.rdb.Get(ctx, plansKey).Bytes()
	if err == nil {
		var plans []domain.Plan
		if err := json.Unmarshal(cached, &plans); err == nil {
			return plans, nil
		}
	} else if err != redis.Nil {
		l.Warn().Err(err).Msg("plan cache read failed")
	}

	plans, err := r.primary.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(plans); err == nil {
		if err := r.rdb.Set(ctx, plansKey, data, r.ttl).Err(); err != nil {
			l.Warn().Err(err).Msg("plan cache write failed")
		}
	}

	return plans, nil
}
