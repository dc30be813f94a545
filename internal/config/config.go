package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ServiceName      string
	HTTPListenAddr   string
	LogLevel         string
	StoreBackend     string
	DataDir          string
	AdminDatabaseURL string
	// CORSAllowedOrigins is a comma-separated list in the environment.
	CORSAllowedOrigins []string

	PaymentSuccessRate   float64
	PaymentCreateLatency time.Duration
	PaymentChargeLatency time.Duration
	PaymentRateRPS       float64
	PaymentRateBurst     int
}

func Load() (*Config, error) {
	cfg := &Config{
		ServiceName:        getEnv("SERVICE_NAME", "admin-api"),
		HTTPListenAddr:     getEnv("HTTP_LISTEN_ADDR", ":8090"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		StoreBackend:       getEnv("STORE_BACKEND", "memory"),
		DataDir:            getEnv("DATA_DIR", "data"),
		AdminDatabaseURL:   getEnv("ADMIN_DATABASE_URL", ""),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	var err error
	if cfg.PaymentSuccessRate, err = getEnvFloat("PAYMENT_SUCCESS_RATE", 0.9); err != nil {
		return nil, err
	}
	if cfg.PaymentCreateLatency, err = getEnvDuration("PAYMENT_CREATE_LATENCY", 500*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.PaymentChargeLatency, err = getEnvDuration("PAYMENT_CHARGE_LATENCY", 2*time.Second); err != nil {
		return nil, err
	}
	if cfg.PaymentRateRPS, err = getEnvFloat("PAYMENT_RATE_RPS", 5); err != nil {
		return nil, err
	}
	if cfg.PaymentRateBurst, err = getEnvInt("PAYMENT_RATE_BURST", 10); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field constraints that Load alone cannot catch.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case "memory", "file", "postgres":
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q (want memory, file or postgres)", c.StoreBackend)
	}
	if c.StoreBackend == "postgres" && c.AdminDatabaseURL == "" {
		return fmt.Errorf("ADMIN_DATABASE_URL is required when STORE_BACKEND is postgres")
	}
	if c.StoreBackend == "file" && c.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required when STORE_BACKEND is file")
	}
	if c.PaymentSuccessRate < 0 || c.PaymentSuccessRate > 1 {
		return fmt.Errorf("PAYMENT_SUCCESS_RATE %v out of range [0, 1]", c.PaymentSuccessRate)
	}
	if c.PaymentRateBurst < 1 {
		return fmt.Errorf("PAYMENT_RATE_BURST must be at least 1")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return f, nil
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
