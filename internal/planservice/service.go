// Package planservice manages business logic layer of proxy plans.
package planservice

import (
	"context"

	"github.com/proxmarket/proxmarket/internal/domain"
)

// Repo provides data access layer interface needed by plan service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package planservice
type Repo interface {
	Get(ctx context.Context, id int32) (domain.Plan, error)
	List(ctx context.Context) ([]domain.Plan, error)
}

// Service facilitates plan service layer logic.
type Service struct {
	repo Repo
}

// New returns plan service struct to manage plan business logic.
func New(pr Repo) *Service {
	return &Service{
		repo: pr,
	}
}

// Get returns the plan with the given id.
func (s *Service) Get(ctx context.Context, id int32) (domain.Plan, error) {
	return s.repo.Get(ctx, id)
}

// List returns the plan catalog ordered by monthly price.
func (s *Service) List(ctx context.Context) ([]domain.Plan, error) {
	return s.repo.List(ctx)
}
