package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	GatewayAddress  string
	SessionSecret   string
	VerifyInterval  time.Duration
	WorkerPoolSize  int
	VerifyBatch     int
	ShutdownTimeout time.Duration
	StaffPageSize   int
}

const (
	defaultRunAddress      = ":8080"
	defaultSessionSecret   = "change-me-in-production"
	defaultVerifyInterval  = 5 * time.Second
	defaultWorkerPoolSize  = 4
	defaultVerifyBatch     = 32
	defaultShutdownTimeout = 10 * time.Second
	defaultStaffPageSize   = 20
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		GatewayAddress:  getString(lookup, "GATEWAY_ADDRESS", ""),
		SessionSecret:   getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		VerifyInterval:  getDuration(lookup, "VERIFY_INTERVAL", defaultVerifyInterval),
		WorkerPoolSize:  getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		VerifyBatch:     getInt(lookup, "VERIFY_BATCH_SIZE", defaultVerifyBatch),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		StaffPageSize:   getInt(lookup, "STAFF_PAGE_SIZE", defaultStaffPageSize),
	}

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		verifyIntervalStr  = cfg.VerifyInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.GatewayAddress, "g", cfg.GatewayAddress, "Payment gateway base URL")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing auth tokens")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent payment verifiers")
	fs.StringVar(&verifyIntervalStr, "verify-interval", verifyIntervalStr, "Interval between verification polls")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.VerifyBatch, "verify-batch", cfg.VerifyBatch, "Maximum payments per verification batch")
	fs.IntVar(&cfg.StaffPageSize, "staff-page", cfg.StaffPageSize, "Page size for staff listings")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.VerifyInterval, err = time.ParseDuration(verifyIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid verify interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = string(content)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.VerifyBatch <= 0 {
		cfg.VerifyBatch = defaultVerifyBatch
	}

	if cfg.VerifyInterval <= 0 {
		cfg.VerifyInterval = defaultVerifyInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.StaffPageSize <= 0 {
		cfg.StaffPageSize = defaultStaffPageSize
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.GatewayAddress == "" {
		return nil, fmt.Errorf("payment gateway address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
