package service

import (
	"math"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
	"gonum.org/v1/gonum/floats"

	"github.com/guttosm/salinity-service/internal/chemistry"
	"github.com/guttosm/salinity-service/internal/domain/model"
	"github.com/guttosm/salinity-service/internal/logger"
	"github.com/guttosm/salinity-service/internal/metrics"
	"github.com/guttosm/salinity-service/internal/service/cache"
	"github.com/guttosm/salinity-service/internal/thermo"
)

// Reference conditions of the two specific-gravity figures in a summary.
const (
	SGTemp20C = 20.0
	SGTemp25C = 25.0
)

// summaryCacheShards is the shard count of the summary cache built by WithCache.
const summaryCacheShards = 16

// SalinityCalculator defines the interface for salinity calculations.
type SalinityCalculator interface {
	// Calculate runs the iterative solver. It never fails; non-convergence is
	// reported through the result.
	Calculate(calc model.Calculation, opts model.SolverOptions) model.SalinityResult
	// Summarize runs the solver with the default tuning and derives SA, density
	// and specific gravities.
	Summarize(calc model.Calculation) model.CalculationSummary
	// SpecificGravity is the ratio of seawater to pure-water density at the same conditions.
	SpecificGravity(sp, tRef, pRef float64) float64
	// DensityFromSP returns in-situ density at the assumptions' temperature and pressure.
	DensityFromSP(sp float64, assumptions model.Assumptions) float64
	// InvalidateCache clears cached summaries (useful when the active profile changes).
	InvalidateCache()
}

// SalinityOption configures a SalinityCalculatorService.
type SalinityOption func(*SalinityCalculatorService)

// SalinityCalculatorService implements SalinityCalculator on top of a
// thermodynamic provider. It holds no per-calculation state and is safe for
// concurrent use.
type SalinityCalculatorService struct {
	provider  thermo.Provider
	maxIter   int
	tolerance float64
	cache     cache.Cache
	inflight  singleflight.Group
	log       zerolog.Logger
}

// NewSalinityCalculatorService creates a new SalinityCalculatorService with the given options.
func NewSalinityCalculatorService(opts ...SalinityOption) *SalinityCalculatorService {
	s := &SalinityCalculatorService{
		provider:  thermo.Reduced{},
		maxIter:   model.DefaultSolverMaxIter,
		tolerance: model.DefaultSolverTolerance,
		log:       logger.Component("solver"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithProvider sets the thermodynamic provider.
func WithProvider(p thermo.Provider) SalinityOption {
	return func(s *SalinityCalculatorService) {
		if p != nil {
			s.provider = p
		}
	}
}

// WithSolverDefaults sets the tuning used when a request leaves it unset.
func WithSolverDefaults(maxIter int, tolerance float64) SalinityOption {
	return func(s *SalinityCalculatorService) {
		if maxIter > 0 {
			s.maxIter = maxIter
		}
		if tolerance > 0 {
			s.tolerance = tolerance
		}
	}
}

// WithCache enables summary caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) SalinityOption {
	return func(s *SalinityCalculatorService) {
		if capacity > 0 {
			s.cache = cache.NewSummaryCache(capacity, ttl, summaryCacheShards)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) SalinityOption {
	return func(s *SalinityCalculatorService) {
		s.cache = c
	}
}

// WithLogger replaces the solver logger.
func WithLogger(l zerolog.Logger) SalinityOption {
	return func(s *SalinityCalculatorService) {
		s.log = l
	}
}

// Provider returns the thermodynamic provider in use.
func (s *SalinityCalculatorService) Provider() thermo.Provider {
	return s.provider
}

// Calculate converges SP and SA for the calculation by fixed-point iteration:
// density depends on salinity and salinity on the density-normalised mass total.
func (s *SalinityCalculatorService) Calculate(calc model.Calculation, opts model.SolverOptions) model.SalinityResult {
	opts = s.resolveOptions(opts)
	a := calc.Assumptions

	spec := chemistry.Speciate(calc)
	chloride, estimated := s.chloride(calc, spec)
	budget := chemistry.MassBudget(calc, spec, chloride)
	totalGL := chemistry.TotalGramsPerL(budget)
	refGkg := chemistry.ReferenceTotalFor(a)

	state := s.seed(opts.Seed)
	converged := false
	iterations := 0
	for iterations < opts.MaxIter {
		iterations++
		rho := s.density(state.SA, a.Temp, a.PressureDbar)
		measuredGkg := totalGL / (rho / 1000)
		sr := chemistry.SRRef * measuredGkg / math.Max(refGkg, chemistry.Tiny)
		next := model.SolverState{SP: 35 * sr / chemistry.SRRef, SA: sr}

		delta := math.Abs(next.SP - state.SP)
		state = next
		if delta < opts.Tolerance {
			converged = true
			break
		}
	}

	metrics.RecordSolverRun(iterations, converged)
	if !converged {
		s.log.Warn().
			Int("max_iter", opts.MaxIter).
			Float64("tolerance", opts.Tolerance).
			Float64("sp", state.SP).
			Msg("salinity solver reached iteration cap without converging")
	}

	sp := chemistry.RoundTo(state.SP, 4)
	rho := s.density(state.SA, a.Temp, a.PressureDbar)
	result := model.SalinityResult{
		SP:                sp,
		SA:                state.SA,
		DensityKgM3:       rho,
		Iterations:        iterations,
		Converged:         converged,
		ChlorideMgL:       chloride,
		ChlorideEstimated: estimated,
		Speciation:        spec,
		Final:             state,
	}
	if opts.Detailed || a.ReturnComponents {
		result.Components = components(budget, rho, sp, a.SalinityNorm, refGkg, totalGL)
	}

	s.log.Debug().
		Str("provider", s.provider.Name()).
		Int("iterations", iterations).
		Bool("converged", converged).
		Float64("sp", sp).
		Bool("chloride_estimated", estimated).
		Msg("salinity solved")

	return result
}

// Summarize returns the compact summary for the calculation, served from the
// cache when the same inputs were summarised before. Concurrent requests for
// the same calculation share one solve.
func (s *SalinityCalculatorService) Summarize(calc model.Calculation) model.CalculationSummary {
	key := calc.Fingerprint()
	if key == "" {
		return s.summarize(calc)
	}
	if s.cache != nil {
		if summary, ok := s.cache.Get(key); ok {
			return summary
		}
	}

	v, _, shared := s.inflight.Do(key, func() (interface{}, error) {
		summary := s.summarize(calc)
		if s.cache != nil {
			s.cache.Set(key, summary)
			if r, ok := s.cache.(cache.StatsReporter); ok {
				st := r.Stats()
				metrics.UpdateCacheMetrics(st.Entries, st.Capacity)
			}
		}
		return summary, nil
	})
	if shared {
		s.log.Debug().Str("fingerprint", key).Msg("summary shared with concurrent request")
	}
	return v.(model.CalculationSummary)
}

func (s *SalinityCalculatorService) summarize(calc model.Calculation) model.CalculationSummary {
	res := s.Calculate(calc, model.DefaultSolverOptions())
	return model.CalculationSummary{
		SP:          res.SP,
		SA:          s.provider.ReferenceSalinity(res.SP),
		DensityKgM3: s.DensityFromSP(res.SP, calc.Assumptions),
		SG2020:      s.SpecificGravity(res.SP, SGTemp20C, 0),
		SG2525:      s.SpecificGravity(res.SP, SGTemp25C, 0),
		Converged:   res.Converged,
	}
}

// SpecificGravity returns rho(sp, t, p) / rho(0, t, p). It is 1 when the
// pure-water density is zero.
func (s *SalinityCalculatorService) SpecificGravity(sp, tRef, pRef float64) float64 {
	rhoSW := s.density(s.provider.ReferenceSalinity(sp), tRef, pRef)
	rhoPW := s.density(0, tRef, pRef)
	if rhoPW == 0 {
		return 1.0
	}
	return rhoSW / rhoPW
}

// DensityFromSP implements SalinityCalculator.
func (s *SalinityCalculatorService) DensityFromSP(sp float64, assumptions model.Assumptions) float64 {
	return s.density(s.provider.ReferenceSalinity(sp), assumptions.Temp, assumptions.PressureDbar)
}

// InvalidateCache clears the summary cache.
func (s *SalinityCalculatorService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

func (s *SalinityCalculatorService) resolveOptions(opts model.SolverOptions) model.SolverOptions {
	if opts.MaxIter <= 0 {
		opts.MaxIter = s.maxIter
	}
	if opts.Tolerance <= 0 || math.IsNaN(opts.Tolerance) {
		opts.Tolerance = s.tolerance
	}
	return opts
}

func (s *SalinityCalculatorService) seed(seed *model.SolverState) model.SolverState {
	if seed != nil && seed.SP > 0 && !math.IsInf(seed.SP, 0) {
		sa := seed.SA
		if sa <= 0 || math.IsNaN(sa) || math.IsInf(sa, 0) {
			sa = s.provider.ReferenceSalinity(seed.SP)
		}
		return model.SolverState{SP: seed.SP, SA: sa}
	}
	return model.SolverState{SP: 35, SA: s.provider.ReferenceSalinity(35)}
}

// chloride returns the measured chloride when present and positive, otherwise
// the blended estimate.
func (s *SalinityCalculatorService) chloride(calc model.Calculation, spec model.Speciation) (mgL float64, estimated bool) {
	if cl, ok := calc.Ions.MeasuredChloride(); ok {
		return cl, false
	}
	return chemistry.EstimateChlorideMgL(calc.Ions, calc.FluorideMgL(), spec), true
}

// density evaluates in-situ density from in-situ temperature, substituting
// thermo.FallbackDensity when the provider cannot.
func (s *SalinityCalculatorService) density(sa, t, p float64) float64 {
	rho, fellBack := thermo.DensityOrFallback(s.provider, sa, t, p)
	if fellBack {
		metrics.RecordDensityFallback()
		s.log.Warn().
			Float64("sa", sa).
			Float64("temp", t).
			Float64("pressure_dbar", p).
			Msg("density undefined, using fallback")
	}
	return rho
}

func components(mgL []model.ComponentRow, rho, sp, norm, refGkg, totalGL float64) *model.Components {
	kgPerL := rho / 1000
	mgKg := make([]model.ComponentRow, len(mgL))
	for i, r := range mgL {
		mgKg[i] = model.ComponentRow{Species: r.Species, Value: r.Value / kgPerL}
	}

	factor := norm / math.Max(sp, chemistry.Tiny)
	return &model.Components{
		MgL:           mgL,
		MgKg:          mgKg,
		MgLNorm:       scaleRows(mgL, factor),
		MgKgNorm:      scaleRows(mgKg, factor),
		NormFactor:    factor,
		DensityKgM3:   rho,
		ReferenceGkg:  refGkg,
		MeasuredTotal: totalGL,
	}
}

func scaleRows(rows []model.ComponentRow, factor float64) []model.ComponentRow {
	values := make([]float64, len(rows))
	for i, r := range rows {
		values[i] = r.Value
	}
	floats.Scale(factor, values)

	out := make([]model.ComponentRow, len(rows))
	for i, r := range rows {
		out[i] = model.ComponentRow{Species: r.Species, Value: values[i]}
	}
	return out
}
