// Package config loads and validates application configuration from a YAML
// file with environment-variable overrides, adapted from the teacher's
// pkg/config/config.go and trimmed to the subsystems this repository has.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "github.com/annekeller/mediasearch/pkg/errors"
)

// Config is the top-level application configuration.
type Config struct {
	Corpus   CorpusConfig   `yaml:"corpus"`
	Cache    CacheConfig    `yaml:"cache"`
	Search   SearchConfig   `yaml:"search"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
}

// CorpusConfig controls where raw records are loaded from.
type CorpusConfig struct {
	FileGlobs   []string `yaml:"fileGlobs"`
	UsePostgres bool     `yaml:"usePostgres"`
}

// CacheConfig controls the preprocessing cache backend.
type CacheConfig struct {
	Backend  string `yaml:"backend"` // "bolt", "redis", or "none"
	BoltPath string `yaml:"boltPath"`
}

// SearchConfig mirrors the Query Engine's per-query configuration table
// (spec.md §4.8) as the defaults used when a CLI invocation supplies none.
type SearchConfig struct {
	K1                 float64 `yaml:"k1"`
	B                  float64 `yaml:"b"`
	DescWeight         float64 `yaml:"descWeight"`
	CreditWeight       float64 `yaml:"creditWeight"`
	IDWeight           float64 `yaml:"idWeight"`
	MinPrefixLength    int     `yaml:"minPrefixLength"`
	MaxPrefixExpansion int     `yaml:"maxPrefixExpansion"`
	PrefixPenalty      float64 `yaml:"prefixPenalty"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the optional local Prometheus scrape server.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// PostgresConfig holds PostgreSQL connection parameters for the optional
// corpus source.
type PostgresConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	Database        string        `yaml:"database"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	SSLMode         string        `yaml:"sslMode"`
	MaxOpenConns    int           `yaml:"maxOpenConns"`
	MaxIdleConns    int           `yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `yaml:"connMaxLifetime"`
}

// DSN returns a lib/pq-compatible data source name.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// RedisConfig holds Redis connection parameters for the optional
// preprocessing cache backend.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	PoolSize int           `yaml:"poolSize"`
	CacheTTL time.Duration `yaml:"cacheTTL"`
}

// Load reads a YAML config file (if provided) and applies environment
// variable overrides, returning a Config populated with defaults for any
// missing values.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks the constraints Load's callers rely on: BM25 parameters
// in their valid range, a recognized cache backend, and a non-empty corpus
// source. Mirrors the teacher's field-by-field validator shape
// (internal/ingestion/validator/validator.go), returning the first
// violation found rather than collecting every field error, since a config
// file is fixed once at startup rather than resubmitted per request.
func validate(cfg *Config) error {
	switch {
	case cfg.Search.K1 < 0:
		return apperrors.Newf(apperrors.ErrConfigInvalid, 2, "search.k1 must be >= 0, got %v", cfg.Search.K1)
	case cfg.Search.B < 0 || cfg.Search.B > 1:
		return apperrors.Newf(apperrors.ErrConfigInvalid, 2, "search.b must be in [0, 1], got %v", cfg.Search.B)
	case cfg.Search.MinPrefixLength < 1:
		return apperrors.Newf(apperrors.ErrConfigInvalid, 2, "search.minPrefixLength must be >= 1, got %d", cfg.Search.MinPrefixLength)
	case cfg.Search.MaxPrefixExpansion < 0:
		return apperrors.Newf(apperrors.ErrConfigInvalid, 2, "search.maxPrefixExpansion must be >= 0, got %d", cfg.Search.MaxPrefixExpansion)
	case cfg.Cache.Backend != "bolt" && cfg.Cache.Backend != "redis" && cfg.Cache.Backend != "none":
		return apperrors.Newf(apperrors.ErrConfigInvalid, 2, "cache.backend must be one of bolt, redis, none; got %q", cfg.Cache.Backend)
	case !cfg.Corpus.UsePostgres && len(cfg.Corpus.FileGlobs) == 0:
		return apperrors.Newf(apperrors.ErrConfigInvalid, 2, "corpus.fileGlobs must be non-empty when corpus.usePostgres is false")
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			FileGlobs: []string{"corpus/**/*.json"},
		},
		Cache: CacheConfig{
			Backend:  "bolt",
			BoltPath: ".mediasearch/cache.db",
		},
		Search: SearchConfig{
			K1:                 1.2,
			B:                  0.75,
			DescWeight:         3.0,
			CreditWeight:       1.5,
			IDWeight:           1.0,
			MinPrefixLength:    3,
			MaxPrefixExpansion: 50,
			PrefixPenalty:      0.8,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Port:    9090,
		},
		Postgres: PostgresConfig{
			Host:            "localhost",
			Port:            5432,
			Database:        "mediasearch",
			User:            "mediasearch",
			Password:        "localdev",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    2,
			ConnMaxLifetime: 5 * time.Minute,
		},
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			DB:       0,
			PoolSize: 10,
			CacheTTL: 24 * time.Hour,
		},
	}
}

// applyEnvOverrides reads MS_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MS_CACHE_BACKEND"); v != "" {
		cfg.Cache.Backend = v
	}
	if v := os.Getenv("MS_CACHE_BOLT_PATH"); v != "" {
		cfg.Cache.BoltPath = v
	}
	if v := os.Getenv("MS_POSTGRES_HOST"); v != "" {
		cfg.Postgres.Host = v
	}
	if v := os.Getenv("MS_POSTGRES_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Postgres.Port = port
		}
	}
	if v := os.Getenv("MS_POSTGRES_DATABASE"); v != "" {
		cfg.Postgres.Database = v
	}
	if v := os.Getenv("MS_POSTGRES_USER"); v != "" {
		cfg.Postgres.User = v
	}
	if v := os.Getenv("MS_POSTGRES_PASSWORD"); v != "" {
		cfg.Postgres.Password = v
	}
	if v := os.Getenv("MS_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("MS_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("MS_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("MS_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("MS_METRICS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Metrics.Port = port
		}
	}
}
