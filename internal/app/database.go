package app

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/salinity-service/config"
	"github.com/guttosm/salinity-service/internal/circuitbreaker"
	"github.com/guttosm/salinity-service/internal/domain/model"
	"github.com/guttosm/salinity-service/internal/logger"
	"github.com/guttosm/salinity-service/internal/metrics"
	"github.com/guttosm/salinity-service/internal/repository"
	"github.com/guttosm/salinity-service/internal/service"
)

// Circuit breaker names, one per collection. They label the
// circuit_breaker_state gauge and the /readyz circuits map.
const (
	breakerAssumptionProfiles = "mongodb_assumption_profiles"
	breakerCalculations       = "mongodb_calculations"
	breakerLogs               = "mongodb_logs"
)

const seedTimeout = 5 * time.Second

// Storage is the MongoDB side of the service: assumption profiles,
// calculation history and the request log shipper, each behind its own
// circuit breaker.
type Storage struct {
	DB                 *repository.MongoDB
	AssumptionProfiles service.AssumptionProfilesService
	CalculationHistory service.CalculationHistoryService
	Shipper            *service.LogShipper
	Breakers           []*circuitbreaker.CircuitBreaker
}

// OpenStorage connects to MongoDB and seeds the default assumption profile.
// It returns nil when storage is disabled or unreachable; calculations are
// then served with the built-in assumptions.
func OpenStorage(cfg config.DatabaseConfig) *Storage {
	if !cfg.Enabled {
		return nil
	}
	l := logger.Component("storage")

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		l.Error().Err(err).Msg("MongoDB unreachable, serving built-in assumptions only")
		return nil
	}
	l.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	if err := db.SetLogsTTL(context.Background(), int(cfg.LogsTTL.Hours()/24)); err != nil {
		l.Warn().Err(err).Dur("ttl", cfg.LogsTTL).Msg("Request log expiry index not applied")
	}

	profilesCB := newBreaker(cfg, breakerAssumptionProfiles)
	calculationsCB := newBreaker(cfg, breakerCalculations)
	logsCB := newBreaker(cfg, breakerLogs)

	profilesRepo := repository.NewAssumptionProfilesRepositoryWithCircuitBreaker(
		repository.NewAssumptionProfilesRepository(db), profilesCB)
	calculationsRepo := repository.NewCalculationsRepositoryWithCircuitBreaker(
		repository.NewCalculationsRepository(db), calculationsCB)
	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)

	if version, err := seedAssumptions(profilesRepo); err != nil {
		l.Warn().Err(err).Msg("Default assumption profile not seeded")
	} else if version > 0 {
		l.Info().Int("version", version).Msg("Seeded default assumption profile")
	}

	return &Storage{
		DB:                 db,
		AssumptionProfiles: service.NewAssumptionProfilesService(profilesRepo),
		CalculationHistory: service.NewCalculationHistoryService(calculationsRepo),
		Shipper:            service.NewLogShipper(logsRepo, service.DefaultLogShipperConfig()),
		Breakers:           []*circuitbreaker.CircuitBreaker{profilesCB, calculationsCB, logsCB},
	}
}

// Close drains the request log queue, then disconnects.
func (s *Storage) Close(ctx context.Context) error {
	return errors.Join(s.Shipper.Close(ctx), s.DB.Close(ctx))
}

func newBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	metrics.RecordCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return circuitbreaker.New(circuitbreaker.Config{
		Name:             name,
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.RecordCircuitBreakerState(name, int(to))
		},
	})
}

// seedAssumptions stores model.DefaultAssumptions as version 1 when no
// profile is active. It returns the created version, or 0 when a profile
// already existed.
func seedAssumptions(repo repository.AssumptionProfilesRepositoryInterface) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	active, err := repo.GetActive(ctx)
	if err != nil || active != nil {
		return 0, err
	}
	profile, err := repo.Create(ctx, model.DefaultAssumptions(), "system")
	if err != nil {
		return 0, err
	}
	return profile.Version, nil
}
