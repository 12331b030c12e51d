package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	CatalogAddress  string
	SearchLatency   time.Duration
	SearchSeed      int64
	StatsInterval   time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string
	SeedSuppliers   bool
}

const (
	defaultRunAddress      = ":8080"
	defaultSearchLatency   = time.Second
	defaultStatsInterval   = 15 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
	defaultSeedSuppliers   = true
)

// Load parses configuration from an optional .env file, environment variables and flags.
// Flags take precedence over the environment.
func Load() (*Config, error) {
	if err := loadEnvFile(".env"); err != nil {
		return nil, err
	}
	return load(os.Args[1:], os.LookupEnv)
}

// loadEnvFile exports variables from path without overriding the environment.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:     getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:    getString(lookup, "DATABASE_URI", ""),
		CatalogAddress: getString(lookup, "CATALOG_ADDRESS", ""),
		SearchSeed:     getInt64(lookup, "SEARCH_SEED", 0),
		LogLevel:       getString(lookup, "LOG_LEVEL", defaultLogLevel),
		SeedSuppliers:  getBool(lookup, "SEED_SUPPLIERS", defaultSeedSuppliers),
	}

	fs := flag.NewFlagSet("outsourcing", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		searchLatencyStr   = getString(lookup, "SEARCH_LATENCY", defaultSearchLatency.String())
		statsIntervalStr   = getString(lookup, "STATS_INTERVAL", defaultStatsInterval.String())
		shutdownTimeoutStr = getString(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout.String())
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN, in-memory storage when empty")
	fs.StringVar(&cfg.CatalogAddress, "c", cfg.CatalogAddress, "Supplier catalog base URL, simulated search when empty")
	fs.StringVar(&searchLatencyStr, "search-latency", searchLatencyStr, "Simulated search latency")
	fs.Int64Var(&cfg.SearchSeed, "search-seed", cfg.SearchSeed, "Seed for simulated quotes, 0 for time based")
	fs.StringVar(&statsIntervalStr, "stats-interval", statsIntervalStr, "Interval between ledger gauge refreshes")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.SeedSuppliers, "seed-suppliers", cfg.SeedSuppliers, "Insert sample suppliers into an empty registry")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SearchLatency, err = time.ParseDuration(searchLatencyStr); err != nil {
		return nil, fmt.Errorf("invalid search latency: %w", err)
	}

	if cfg.StatsInterval, err = time.ParseDuration(statsIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid stats interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.SearchLatency < 0 {
		cfg.SearchLatency = defaultSearchLatency
	}

	if cfg.StatsInterval <= 0 {
		cfg.StatsInterval = defaultStatsInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt64(lookup envLookup, key string, def int64) int64 {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
