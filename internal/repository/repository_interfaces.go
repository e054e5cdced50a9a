package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/salinity-service/internal/domain/model"
)

// AssumptionProfilesRepositoryInterface stores versioned assumption profiles.
type AssumptionProfilesRepositoryInterface interface {
	GetActive(ctx context.Context) (*AssumptionProfile, error)
	Create(ctx context.Context, assumptions model.Assumptions, createdBy string) (*AssumptionProfile, error)
	List(ctx context.Context, limit int) ([]AssumptionProfile, error)
}

// CalculationsRepositoryInterface stores summarised calculations.
type CalculationsRepositoryInterface interface {
	Create(ctx context.Context, record *CalculationRecord) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*CalculationRecord, error)
	List(ctx context.Context, opts CalculationQueryOptions) ([]CalculationRecord, error)
	Count(ctx context.Context, opts CalculationQueryOptions) (int64, error)
}

// LogsRepositoryInterface stores request and audit log entries.
type LogsRepositoryInterface interface {
	InsertBatch(ctx context.Context, entries []*model.LogEntry) error
}
