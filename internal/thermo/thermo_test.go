package thermo

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		strategy string
		want     string
		wantErr  bool
	}{
		{"empty selects reduced", "", StrategyReduced, false},
		{"reduced", "reduced", StrategyReduced, false},
		{"approx mixed case", " Approx ", StrategyApprox, false},
		{"unknown", "gsw-full", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.strategy)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownStrategy))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Name())
		})
	}
}

func TestReferenceSalinity(t *testing.T) {
	assert.InDelta(t, 35.16504, ReferenceSalinity(35), 1e-12)
	assert.InDelta(t, 35.0, PracticalSalinity(ReferenceSalinity(35)), 1e-12)
	assert.Zero(t, ReferenceSalinity(0))
}

func TestDensity_KnownValues(t *testing.T) {
	tests := []struct {
		name  string
		sa    float64
		ct    float64
		p     float64
		want  float64
		delta float64
	}{
		// UNESCO 1981 check values: S=35, T=25 °C, 0 and 10000 dbar; S=0, T=5 °C.
		{"standard seawater 25C surface", ReferenceSalinity(35), 25 / 1.00024, 0, 1023.343, 0.01},
		{"standard seawater 25C deep", ReferenceSalinity(35), 25 / 1.00024, 10000, 1062.538, 0.05},
		{"pure water 5C", 0, 5 / 1.00024, 0, 999.967, 0.01},
		{"seawater 20C", ReferenceSalinity(35), 20, 0, 1024.76, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rho, err := Density(tt.sa, tt.ct, tt.p)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, rho, tt.delta)
		})
	}
}

func TestDensity_Undefined(t *testing.T) {
	_, err := Density(math.NaN(), 20, 0)
	assert.ErrorIs(t, err, ErrDensityUndefined)

	_, err = Density(35, math.Inf(1), 0)
	assert.ErrorIs(t, err, ErrDensityUndefined)
}

func TestDensity_IncreasesWithSalinity(t *testing.T) {
	prev := 0.0
	for _, sa := range []float64{0, 10, 20, 30, 35, 40} {
		rho, err := Density(sa, 20, 0)
		require.NoError(t, err)
		assert.Greater(t, rho, prev)
		prev = rho
	}
}

func TestPotentialTemperature(t *testing.T) {
	t.Run("surface is identity", func(t *testing.T) {
		assert.InDelta(t, 20.0, PotentialTemperature(35, 20, 0), 1e-9)
	})

	t.Run("deep water cools on adiabatic ascent", func(t *testing.T) {
		pt0 := PotentialTemperature(35.2, 12, 500)
		assert.Less(t, pt0, 12.0)
		assert.Less(t, 12-pt0, 3.0)
	})

	t.Run("refinement stays close to first guess", func(t *testing.T) {
		refined := PotentialTemperature(35, 10, 1000)
		guess := pt0Guess(35, 10, 1000)
		assert.InDelta(t, guess, refined, 0.05)
	})
}

func TestProviders_ConservativeTemperature(t *testing.T) {
	for _, p := range []Provider{Reduced{}, Approx{}} {
		t.Run(p.Name(), func(t *testing.T) {
			ct := p.ConservativeTemperature(35, 20, 10)
			assert.LessOrEqual(t, ct, 20.0)
			assert.InDelta(t, 20.0, ct, 0.01)
		})
	}
}

type failingProvider struct{ Reduced }

func (failingProvider) InSituDensity(float64, float64, float64) (float64, error) {
	return 0, ErrDensityUndefined
}

func TestDensityOrFallback(t *testing.T) {
	rho, fellBack := DensityOrFallback(Reduced{}, 35.16504, 20, 0)
	assert.False(t, fellBack)
	assert.InDelta(t, 1024.76, rho, 0.05)

	rho, fellBack = DensityOrFallback(failingProvider{}, 35, 20, 0)
	assert.True(t, fellBack)
	assert.Equal(t, FallbackDensity, rho)
}
