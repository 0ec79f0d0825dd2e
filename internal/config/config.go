package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress       string
	DatabaseURI      string
	RedisAddress     string
	KafkaBrokers     []string
	OrderEventsTopic string
	AuthSecret       string
	AuthTokenTTL     time.Duration
	CartTTL          time.Duration
	CartSweepPeriod  time.Duration
	ShutdownTimeout  time.Duration
}

const (
	defaultRunAddress       = ":8080"
	defaultAuthSecret       = "change-me-in-production"
	defaultAuthTokenTTL     = 24 * time.Hour
	defaultOrderEventsTopic = "alexcoffee.orders"
	defaultCartTTL          = 30 * time.Minute
	defaultCartSweepPeriod  = time.Minute
	defaultShutdownTimeout  = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:       getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:      getString(lookup, "DATABASE_URI", ""),
		RedisAddress:     getString(lookup, "REDIS_ADDRESS", ""),
		OrderEventsTopic: getString(lookup, "ORDER_EVENTS_TOPIC", defaultOrderEventsTopic),
		AuthSecret:       getString(lookup, "AUTH_SECRET", defaultAuthSecret),
		AuthTokenTTL:     getDuration(lookup, "AUTH_TOKEN_TTL", defaultAuthTokenTTL),
		CartTTL:          getDuration(lookup, "CART_TTL", defaultCartTTL),
		CartSweepPeriod:  getDuration(lookup, "CART_SWEEP_PERIOD", defaultCartSweepPeriod),
		ShutdownTimeout:  getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	brokers := getString(lookup, "KAFKA_BROKERS", "")

	fs := flag.NewFlagSet("alexcoffee", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		cartTTLStr         = cfg.CartTTL.String()
		sweepPeriodStr     = cfg.CartSweepPeriod.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddress, "redis", cfg.RedisAddress, "Redis address for session carts (optional)")
	fs.StringVar(&brokers, "kafka", brokers, "Comma-separated Kafka brokers for order events (optional)")
	fs.StringVar(&cfg.OrderEventsTopic, "kafka-topic", cfg.OrderEventsTopic, "Kafka topic for order events")
	fs.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "Secret for signing auth tokens")
	fs.StringVar(&cartTTLStr, "cart-ttl", cartTTLStr, "Idle lifetime of a session cart")
	fs.StringVar(&sweepPeriodStr, "cart-sweep", sweepPeriodStr, "Interval between expired cart sweeps")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.CartTTL, err = time.ParseDuration(cartTTLStr); err != nil {
		return nil, fmt.Errorf("invalid cart ttl: %w", err)
	}

	if cfg.CartSweepPeriod, err = time.ParseDuration(sweepPeriodStr); err != nil {
		return nil, fmt.Errorf("invalid cart sweep period: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("AUTH_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read auth secret file: %w", err)
		}
		cfg.AuthSecret = strings.TrimSpace(string(content))
	}

	cfg.KafkaBrokers = splitBrokers(brokers)

	if cfg.CartTTL <= 0 {
		cfg.CartTTL = defaultCartTTL
	}

	if cfg.CartSweepPeriod <= 0 {
		cfg.CartSweepPeriod = defaultCartSweepPeriod
	}

	if cfg.AuthTokenTTL <= 0 {
		cfg.AuthTokenTTL = defaultAuthTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func splitBrokers(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
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
