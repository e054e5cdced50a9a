//go:build !integration

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/salinity-service/internal/domain/model"
	"github.com/guttosm/salinity-service/internal/mocks"
	"github.com/guttosm/salinity-service/internal/repository"
	"github.com/guttosm/salinity-service/internal/service"
)

func sampleCalculation() model.Calculation {
	return model.NewCalculation(model.IonMeasurement{
		Na: 11980, Ca: 357, Mg: 1246, K: 464, Sr: 6.96, Br: 73.2,
		Cl: model.Float(19570), S: 814, B: 5.57,
	}, model.DefaultAssumptions())
}

func TestCalculationHistoryService_Record(t *testing.T) {
	calc := sampleCalculation()
	summary := model.CalculationSummary{SP: 35.1, SA: 35.27, DensityKgM3: 1024.8, SG2020: 1.0267, SG2525: 1.0263, Converged: true}

	tests := []struct {
		name    string
		repoErr error
	}{
		{name: "stores record"},
		{name: "propagates repository error", repoErr: errors.New("insert failed")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockCalculationsRepositoryInterface)
			repo.On("Create", mock.Anything, mock.MatchedBy(func(r *repository.CalculationRecord) bool {
				return r.Fingerprint == calc.Fingerprint() &&
					r.Summary == summary &&
					r.RequestID == "req-1" &&
					!r.CreatedAt.IsZero()
			})).Return(tt.repoErr)
			svc := service.NewCalculationHistoryService(repo)

			record, err := svc.Record(context.Background(), calc, summary, "req-1")
			if tt.repoErr != nil {
				assert.ErrorIs(t, err, tt.repoErr)
				assert.Nil(t, record)
			} else {
				require.NoError(t, err)
				assert.Equal(t, calc.Ions, record.Inputs)
				assert.Equal(t, calc.Assumptions, record.Assumptions)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestCalculationHistoryService_Get(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name      string
		id        string
		setupMock func(*mocks.MockCalculationsRepositoryInterface)
		wantErr   error
	}{
		{
			name: "found",
			id:   id.Hex(),
			setupMock: func(m *mocks.MockCalculationsRepositoryInterface) {
				m.On("GetByID", mock.Anything, id).Return(&repository.CalculationRecord{ID: id}, nil)
			},
		},
		{
			name: "not found",
			id:   id.Hex(),
			setupMock: func(m *mocks.MockCalculationsRepositoryInterface) {
				m.On("GetByID", mock.Anything, id).Return(nil, repository.ErrCalculationNotFound)
			},
			wantErr: repository.ErrCalculationNotFound,
		},
		{
			name:      "malformed id",
			id:        "not-an-object-id",
			setupMock: func(*mocks.MockCalculationsRepositoryInterface) {},
			wantErr:   service.ErrInvalidCalculationID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockCalculationsRepositoryInterface)
			tt.setupMock(repo)
			svc := service.NewCalculationHistoryService(repo)

			record, err := svc.Get(context.Background(), tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, record)
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, record.ID)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestCalculationHistoryService_List(t *testing.T) {
	tests := []struct {
		name      string
		opts      repository.CalculationQueryOptions
		wantLimit int
		wantSkip  int
	}{
		{"zero limit uses page size", repository.CalculationQueryOptions{}, service.MaxHistoryPageSize, 0},
		{"oversized limit is capped", repository.CalculationQueryOptions{Limit: 5000}, service.MaxHistoryPageSize, 0},
		{"negative skip is reset", repository.CalculationQueryOptions{Limit: 10, Skip: -3}, 10, 0},
		{"valid values pass through", repository.CalculationQueryOptions{Limit: 20, Skip: 40}, 20, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockCalculationsRepositoryInterface)
			matches := mock.MatchedBy(func(o repository.CalculationQueryOptions) bool {
				return o.Limit == tt.wantLimit && o.Skip == tt.wantSkip
			})
			repo.On("List", mock.Anything, matches).Return([]repository.CalculationRecord{{}, {}}, nil)
			repo.On("Count", mock.Anything, matches).Return(int64(42), nil)
			svc := service.NewCalculationHistoryService(repo)

			records, total, err := svc.List(context.Background(), tt.opts)
			require.NoError(t, err)
			assert.Len(t, records, 2)
			assert.Equal(t, int64(42), total)
			repo.AssertExpectations(t)
		})
	}
}

func TestCalculationHistoryService_ListErrors(t *testing.T) {
	t.Run("list fails", func(t *testing.T) {
		repo := new(mocks.MockCalculationsRepositoryInterface)
		repo.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("cursor error"))
		svc := service.NewCalculationHistoryService(repo)

		_, _, err := svc.List(context.Background(), repository.CalculationQueryOptions{})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
	})

	t.Run("count fails", func(t *testing.T) {
		repo := new(mocks.MockCalculationsRepositoryInterface)
		repo.On("List", mock.Anything, mock.Anything).Return([]repository.CalculationRecord{}, nil)
		repo.On("Count", mock.Anything, mock.Anything).Return(int64(0), errors.New("count error"))
		svc := service.NewCalculationHistoryService(repo)

		_, _, err := svc.List(context.Background(), repository.CalculationQueryOptions{})
		assert.Error(t, err)
	})

	t.Run("nil repository", func(t *testing.T) {
		svc := service.NewCalculationHistoryService(nil)
		_, _, err := svc.List(context.Background(), repository.CalculationQueryOptions{})
		assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)
	})
}
