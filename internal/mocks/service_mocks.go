// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/salinity-service/internal/domain/model"
	"github.com/guttosm/salinity-service/internal/repository"
)

type MockSalinityCalculator struct {
	mock.Mock
}

// NewMockSalinityCalculator creates a mock and registers expectation checks on cleanup.
func NewMockSalinityCalculator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSalinityCalculator {
	m := &MockSalinityCalculator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSalinityCalculator) Calculate(calc model.Calculation, opts model.SolverOptions) model.SalinityResult {
	args := m.Called(calc, opts)
	return args.Get(0).(model.SalinityResult)
}

func (m *MockSalinityCalculator) Summarize(calc model.Calculation) model.CalculationSummary {
	args := m.Called(calc)
	return args.Get(0).(model.CalculationSummary)
}

func (m *MockSalinityCalculator) SpecificGravity(sp, tRef, pRef float64) float64 {
	args := m.Called(sp, tRef, pRef)
	return args.Get(0).(float64)
}

func (m *MockSalinityCalculator) DensityFromSP(sp float64, assumptions model.Assumptions) float64 {
	args := m.Called(sp, assumptions)
	return args.Get(0).(float64)
}

func (m *MockSalinityCalculator) InvalidateCache() {
	m.Called()
}

type MockAssumptionProfilesService struct {
	mock.Mock
}

func (m *MockAssumptionProfilesService) GetActive(ctx context.Context) (*repository.AssumptionProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.AssumptionProfile), args.Error(1)
}

func (m *MockAssumptionProfilesService) Effective(ctx context.Context) model.Assumptions {
	args := m.Called(ctx)
	return args.Get(0).(model.Assumptions)
}

func (m *MockAssumptionProfilesService) Create(ctx context.Context, assumptions model.Assumptions, createdBy string) (*repository.AssumptionProfile, error) {
	args := m.Called(ctx, assumptions, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.AssumptionProfile), args.Error(1)
}

func (m *MockAssumptionProfilesService) List(ctx context.Context, limit int) ([]repository.AssumptionProfile, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.AssumptionProfile), args.Error(1)
}

type MockCalculationHistoryService struct {
	mock.Mock
}

func (m *MockCalculationHistoryService) Record(ctx context.Context, calc model.Calculation, summary model.CalculationSummary, requestID string) (*repository.CalculationRecord, error) {
	args := m.Called(ctx, calc, summary, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CalculationRecord), args.Error(1)
}

func (m *MockCalculationHistoryService) Get(ctx context.Context, id string) (*repository.CalculationRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CalculationRecord), args.Error(1)
}

func (m *MockCalculationHistoryService) List(ctx context.Context, opts repository.CalculationQueryOptions) ([]repository.CalculationRecord, int64, error) {
	args := m.Called(ctx, opts)
	records, _ := args.Get(0).([]repository.CalculationRecord)
	total, _ := args.Get(1).(int64)
	return records, total, args.Error(2)
}
