// Package config reads the salinity service settings from the environment.
// Unset or unparseable variables fall back to their defaults.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Solver   SolverConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// CacheConfig sizes the summary cache.
type CacheConfig struct {
	Size int
	TTL  time.Duration
	// AssumptionsTTL bounds how long the active assumption profile is reused
	// before MongoDB is consulted again.
	AssumptionsTTL time.Duration
}

// SolverConfig holds the salinity solver defaults.
type SolverConfig struct {
	MaxIter       int
	Tolerance     float64
	ThermoBackend string
}

// AuthConfig holds API key authentication configuration.
type AuthConfig struct {
	Enabled bool
	APIKeys map[string]bool
}

// DatabaseConfig holds MongoDB and per-collection circuit breaker settings.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool

	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// LogConfig selects the zerolog level and output format.
type LogConfig struct {
	Level  string
	Pretty bool
}

// localOrigins are always allowed so the lab dashboard works in development.
var localOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server:   loadServer(),
		Cache:    loadCache(),
		Solver:   loadSolver(),
		Auth:     loadAuth(),
		Database: loadDatabase(),
		Log: LogConfig{
			Level:  strings.ToLower(env("LOG_LEVEL", "info", text)),
			Pretty: env("LOG_PRETTY", false, strconv.ParseBool),
		},
	}
}

func loadServer() ServerConfig {
	return ServerConfig{
		Port:           env("PORT", "8080", text),
		RateLimit:      env("RATE_LIMIT", 100, strconv.Atoi),
		RateWindow:     env("RATE_WINDOW", time.Minute, time.ParseDuration),
		RequestTimeout: env("REQUEST_TIMEOUT", 10*time.Second, time.ParseDuration),
		CORSOrigins:    append(append([]string(nil), localOrigins...), list(os.Getenv("CORS_ORIGINS"))...),
		SwaggerUser:    env("SWAGGER_USER", "", text),
		SwaggerPass:    env("SWAGGER_PASS", "", text),
	}
}

func loadCache() CacheConfig {
	return CacheConfig{
		Size:           env("CACHE_SIZE", 1000, strconv.Atoi),
		TTL:            env("CACHE_TTL", 5*time.Minute, time.ParseDuration),
		AssumptionsTTL: env("ASSUMPTIONS_CACHE_TTL", 30*time.Second, time.ParseDuration),
	}
}

func loadSolver() SolverConfig {
	return SolverConfig{
		MaxIter:       env("SOLVER_MAX_ITER", 30, strconv.Atoi),
		Tolerance:     env("SOLVER_TOLERANCE", 1e-8, positiveFloat),
		ThermoBackend: strings.ToLower(strings.TrimSpace(env("THERMO_STRATEGY", "reduced", text))),
	}
}

func loadAuth() AuthConfig {
	cfg := AuthConfig{Enabled: env("AUTH_ENABLED", false, strconv.ParseBool)}
	if keys := list(os.Getenv("API_KEYS")); len(keys) > 0 {
		cfg.APIKeys = make(map[string]bool, len(keys))
		for _, k := range keys {
			cfg.APIKeys[k] = true
		}
	}
	return cfg
}

func loadDatabase() DatabaseConfig {
	return DatabaseConfig{
		URI:                            env("MONGODB_URI", "mongodb://localhost:27017", text),
		DatabaseName:                   env("MONGODB_DATABASE", "salinity_service", text),
		LogsTTL:                        env("MONGODB_LOGS_TTL", 30*24*time.Hour, time.ParseDuration),
		Enabled:                        env("MONGODB_ENABLED", false, strconv.ParseBool),
		CircuitBreakerFailureThreshold: env("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5, strconv.Atoi),
		CircuitBreakerSuccessThreshold: env("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2, strconv.Atoi),
		CircuitBreakerTimeout:          env("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second, time.ParseDuration),
	}
}

// env parses key with parse, returning def when the variable is unset or
// parse fails.
func env[T any](key string, def T, parse func(string) (T, error)) T {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	parsed, err := parse(v)
	if err != nil {
		return def
	}
	return parsed
}

func text(s string) (string, error) { return s, nil }

func positiveFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err == nil && f <= 0 {
		err = strconv.ErrRange
	}
	return f, err
}

// list splits a comma-separated value, dropping blank items.
func list(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
