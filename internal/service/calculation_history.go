package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/salinity-service/internal/domain/model"
	"github.com/guttosm/salinity-service/internal/repository"
)

// ErrInvalidCalculationID is returned for IDs that are not valid ObjectID hex strings.
var ErrInvalidCalculationID = errors.New("invalid calculation id")

// MaxHistoryPageSize caps the number of records returned by one List call.
const MaxHistoryPageSize = 100

// CalculationHistoryService records summarised calculations and reads them back.
type CalculationHistoryService interface {
	Record(ctx context.Context, calc model.Calculation, summary model.CalculationSummary, requestID string) (*repository.CalculationRecord, error)
	Get(ctx context.Context, id string) (*repository.CalculationRecord, error)
	List(ctx context.Context, opts repository.CalculationQueryOptions) ([]repository.CalculationRecord, int64, error)
}

// CalculationHistoryServiceImpl implements CalculationHistoryService.
type CalculationHistoryServiceImpl struct {
	repo repository.CalculationsRepositoryInterface
}

// NewCalculationHistoryService creates a new calculation history service.
func NewCalculationHistoryService(repo repository.CalculationsRepositoryInterface) CalculationHistoryService {
	return &CalculationHistoryServiceImpl{repo: repo}
}

// Record stores the calculation's inputs, assumptions and summary.
func (s *CalculationHistoryServiceImpl) Record(ctx context.Context, calc model.Calculation, summary model.CalculationSummary, requestID string) (*repository.CalculationRecord, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	record := &repository.CalculationRecord{
		Fingerprint: calc.Fingerprint(),
		Inputs:      calc.Ions,
		Assumptions: calc.Assumptions,
		Summary:     summary,
		RequestID:   requestID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Get returns the record with the given hex ID.
func (s *CalculationHistoryServiceImpl) Get(ctx context.Context, id string) (*repository.CalculationRecord, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidCalculationID
	}
	return s.repo.GetByID(ctx, oid)
}

// List returns one page of records, newest first, and the total matching count.
func (s *CalculationHistoryServiceImpl) List(ctx context.Context, opts repository.CalculationQueryOptions) ([]repository.CalculationRecord, int64, error) {
	if s.repo == nil {
		return nil, 0, ErrRepositoryNotConfigured
	}

	if opts.Limit <= 0 || opts.Limit > MaxHistoryPageSize {
		opts.Limit = MaxHistoryPageSize
	}
	if opts.Skip < 0 {
		opts.Skip = 0
	}

	records, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}
