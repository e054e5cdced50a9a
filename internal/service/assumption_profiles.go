package service

import (
	"context"
	"errors"

	"github.com/guttosm/salinity-service/internal/domain/model"
	"github.com/guttosm/salinity-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// AssumptionProfilesService provides assumption profile operations.
type AssumptionProfilesService interface {
	GetActive(ctx context.Context) (*repository.AssumptionProfile, error)
	// Effective returns the active profile's assumptions, or the built-in
	// defaults when no profile is stored or storage is unavailable.
	Effective(ctx context.Context) model.Assumptions
	Create(ctx context.Context, assumptions model.Assumptions, createdBy string) (*repository.AssumptionProfile, error)
	List(ctx context.Context, limit int) ([]repository.AssumptionProfile, error)
}

// AssumptionProfilesServiceImpl implements AssumptionProfilesService.
type AssumptionProfilesServiceImpl struct {
	repo repository.AssumptionProfilesRepositoryInterface
}

// NewAssumptionProfilesService creates a new assumption profiles service.
func NewAssumptionProfilesService(repo repository.AssumptionProfilesRepositoryInterface) AssumptionProfilesService {
	return &AssumptionProfilesServiceImpl{repo: repo}
}

func (s *AssumptionProfilesServiceImpl) GetActive(ctx context.Context) (*repository.AssumptionProfile, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.GetActive(ctx)
}

func (s *AssumptionProfilesServiceImpl) Effective(ctx context.Context) model.Assumptions {
	profile, err := s.GetActive(ctx)
	if err != nil || profile == nil {
		return model.DefaultAssumptions()
	}
	return profile.Assumptions
}

func (s *AssumptionProfilesServiceImpl) Create(ctx context.Context, assumptions model.Assumptions, createdBy string) (*repository.AssumptionProfile, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.Create(ctx, assumptions, createdBy)
}

func (s *AssumptionProfilesServiceImpl) List(ctx context.Context, limit int) ([]repository.AssumptionProfile, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx, limit)
}
