//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/guttosm/salinity-service/config"
	"github.com/guttosm/salinity-service/internal/domain/model"
	"github.com/guttosm/salinity-service/internal/thermo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeServices(t *testing.T) {
	tests := []struct {
		name         string
		cache        config.CacheConfig
		solver       config.SolverConfig
		wantErr      error
		wantProvider string
	}{
		{
			name:         "default strategy when unset",
			wantProvider: thermo.StrategyReduced,
		},
		{
			name:         "cache enabled",
			cache:        config.CacheConfig{Size: 1000, TTL: 5 * time.Minute},
			solver:       config.SolverConfig{MaxIter: 30, Tolerance: 1e-8, ThermoBackend: "reduced"},
			wantProvider: thermo.StrategyReduced,
		},
		{
			name:         "approximate strategy",
			solver:       config.SolverConfig{ThermoBackend: "approx"},
			wantProvider: thermo.StrategyApprox,
		},
		{
			name:         "zero cache size disables cache",
			cache:        config.CacheConfig{Size: 0, TTL: 5 * time.Minute},
			wantProvider: thermo.StrategyReduced,
		},
		{
			name:    "unknown strategy",
			solver:  config.SolverConfig{ThermoBackend: "gsw-full"},
			wantErr: thermo.ErrUnknownStrategy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components, err := InitializeServices(tt.cache, tt.solver)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, components)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, components.Calculator)
			assert.Equal(t, tt.wantProvider, components.Provider.Name())
		})
	}
}

func TestServiceComponents_Calculator(t *testing.T) {
	components, err := InitializeServices(
		config.CacheConfig{Size: 100, TTL: time.Minute},
		config.SolverConfig{MaxIter: 30, Tolerance: 1e-8, ThermoBackend: "reduced"},
	)
	require.NoError(t, err)

	calc := model.NewCalculation(model.IonMeasurement{
		Na: 11980, Ca: 357, Mg: 1246, K: 464, Sr: 6.96, Br: 73.2,
		Cl: model.Float(19570), F: model.Float(1.14), S: 814, B: 5.57,
	}, model.DefaultAssumptions())

	summary := components.Calculator.Summarize(calc)

	assert.True(t, summary.Converged)
	assert.InDelta(t, 35.0, summary.SP, 1.0)
	assert.Greater(t, summary.SA, summary.SP)
	assert.Greater(t, summary.DensityKgM3, 1020.0)

	// Cached summaries are returned verbatim.
	assert.Equal(t, summary, components.Calculator.Summarize(calc))
}
