// Package thermo provides the seawater thermodynamic properties the salinity
// solver depends on: conservative temperature, in-situ density and the
// practical-to-reference salinity conversion.
package thermo

import (
	"errors"
	"fmt"
	"strings"
)

// Strategy names accepted by New.
const (
	StrategyReduced = "reduced"
	StrategyApprox  = "approx"
)

// FallbackDensity is substituted by callers when density is undefined.
const FallbackDensity = 1025.0

// ErrDensityUndefined is returned when the density evaluates to a non-finite or non-positive value.
var ErrDensityUndefined = errors.New("thermo: density undefined for inputs")

// ErrUnknownStrategy is returned by New for unsupported strategy names.
var ErrUnknownStrategy = errors.New("thermo: unknown strategy")

// Provider computes seawater thermodynamic properties.
// Implementations must be safe for concurrent use.
type Provider interface {
	// ConservativeTemperature returns CT (°C) from SA (g/kg), in-situ t (°C) and p (dbar).
	ConservativeTemperature(sa, t, p float64) float64
	// InSituDensity returns rho (kg/m³) from SA (g/kg), CT (°C) and p (dbar).
	InSituDensity(sa, ct, p float64) (float64, error)
	// ReferenceSalinity returns SR (g/kg) from practical salinity.
	ReferenceSalinity(sp float64) float64
	// Name identifies the strategy.
	Name() string
}

// New returns the provider for the named strategy. An empty name selects the reduced strategy.
func New(strategy string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", StrategyReduced:
		return Reduced{}, nil
	case StrategyApprox:
		return Approx{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

// DensityOrFallback evaluates the provider and substitutes FallbackDensity on error.
func DensityOrFallback(p Provider, sa, t, pressure float64) (rho float64, fellBack bool) {
	ct := p.ConservativeTemperature(sa, t, pressure)
	rho, err := p.InSituDensity(sa, ct, pressure)
	if err != nil {
		return FallbackDensity, true
	}
	return rho, false
}
