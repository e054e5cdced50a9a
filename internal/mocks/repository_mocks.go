// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/salinity-service/internal/domain/model"
	"github.com/guttosm/salinity-service/internal/repository"
)

type MockAssumptionProfilesRepositoryInterface struct {
	mock.Mock
}

func (m *MockAssumptionProfilesRepositoryInterface) GetActive(ctx context.Context) (*repository.AssumptionProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.AssumptionProfile), args.Error(1)
}

func (m *MockAssumptionProfilesRepositoryInterface) Create(ctx context.Context, assumptions model.Assumptions, createdBy string) (*repository.AssumptionProfile, error) {
	args := m.Called(ctx, assumptions, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.AssumptionProfile), args.Error(1)
}

func (m *MockAssumptionProfilesRepositoryInterface) List(ctx context.Context, limit int) ([]repository.AssumptionProfile, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.AssumptionProfile), args.Error(1)
}

type MockCalculationsRepositoryInterface struct {
	mock.Mock
}

func (m *MockCalculationsRepositoryInterface) Create(ctx context.Context, record *repository.CalculationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockCalculationsRepositoryInterface) GetByID(ctx context.Context, id primitive.ObjectID) (*repository.CalculationRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CalculationRecord), args.Error(1)
}

func (m *MockCalculationsRepositoryInterface) List(ctx context.Context, opts repository.CalculationQueryOptions) ([]repository.CalculationRecord, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CalculationRecord), args.Error(1)
}

func (m *MockCalculationsRepositoryInterface) Count(ctx context.Context, opts repository.CalculationQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

type MockLogsRepositoryInterface struct {
	mock.Mock
}

func (m *MockLogsRepositoryInterface) InsertBatch(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}
