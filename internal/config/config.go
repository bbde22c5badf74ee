// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds configuration knobs for the HTTP server, CORS policy, and
// catalog seeding.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration

	// CORSAllowedOrigins lists the origins allowed to call the API. When
	// empty, no CORS headers are emitted and cross-origin requests are
	// rejected by the browser.
	CORSAllowedOrigins []string

	// SeedStockMin and SeedStockSpan bound the initial stock assigned to
	// each seeded product: [SeedStockMin, SeedStockMin+SeedStockSpan).
	SeedStockMin  int64
	SeedStockSpan int64

	// SeedRandom pins every product's stock to SeedStockMin when false,
	// which makes runs reproducible for testing.
	SeedRandom bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int64) int64 {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int64) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

func boolenv(key string, def bool) bool {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func originsenv(key string) []string {
	var origins []string
	for _, o := range strings.Split(getenv(key, ""), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		HTTPAddr:           getenv("HTTP_ADDR", ":8080"),
		ShutdownTimeout:    durenvs("SHUTDOWN_TIMEOUT", 15),
		CORSAllowedOrigins: originsenv("CORS_ALLOWED_ORIGINS"),
		SeedStockMin:       atoienv("SEED_STOCK_MIN", 5),
		SeedStockSpan:      atoienv("SEED_STOCK_SPAN", 10),
		SeedRandom:         boolenv("SEED_RANDOM", true),
	}
}
