// Package config loads runtime settings once at process start. Values come
// from the environment, with an optional .env file overlay for local
// development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting the server needs. It is constructed once
// in main and passed into the services; nothing reads the environment after
// startup.
//
// Fields:
//   - Port: HTTP listen port.
//   - DatabasePath: path to the SQLite database file.
//   - JWTSecret: HMAC secret for signing tokens (HS256).
//   - TokenTTL: lifetime of issued tokens.
//   - BcryptCost: work factor for password hashing.
type Config struct {
	Port         string
	DatabasePath string
	JWTSecret    string
	TokenTTL     time.Duration
	BcryptCost   int
}

// Load builds a Config from the environment. A .env file in the working
// directory is applied first if present; real environment variables win.
func Load() (*Config, error) {
	// Ignore a missing .env; it is a local-development convenience only.
	_ = godotenv.Load()

	cfg := &Config{
		Port:         envOrDefault("PORT", "3000"),
		DatabasePath: envOrDefault("DATABASE_PATH", "spendsmarter.db"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		TokenTTL:     time.Hour,
		BcryptCost:   12,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
		}
		if ttl <= 0 {
			return nil, fmt.Errorf("TOKEN_TTL must be positive, got %s", ttl)
		}
		cfg.TokenTTL = ttl
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		if cost < 4 || cost > 14 {
			return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", cost)
		}
		cfg.BcryptCost = cost
	}

	return cfg, nil
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
