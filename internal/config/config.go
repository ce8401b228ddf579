// Package config reads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	StoreFile     = "file"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Config holds all settings for one run of the CLI.
type Config struct {
	Store       StoreConfig
	CatalogFile string
	TopN        int
	Log         LogConfig
}

// StoreConfig selects and configures the users backend.
type StoreConfig struct {
	Backend     string
	UsersFile   string
	DatabaseURL string
	RedisURL    string
	RedisKey    string
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  slog.Level
	Format string
}

// Load reads .env (if present) and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	level, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Store: StoreConfig{
			Backend:     strings.ToLower(getEnv("TRAVEL_STORE", StoreFile)),
			UsersFile:   getEnv("TRAVEL_USERS_FILE", "users.json"),
			DatabaseURL: os.Getenv("DATABASE_URL"),
			RedisURL:    os.Getenv("REDIS_URL"),
			RedisKey:    getEnv("REDIS_KEY", "travel:users"),
		},
		CatalogFile: os.Getenv("TRAVEL_CATALOG"),
		TopN:        getIntEnv("TRAVEL_TOP_N", 3),
		Log: LogConfig{
			Level:  level,
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks that the selected backend has what it needs.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case StoreFile:
		if c.Store.UsersFile == "" {
			return fmt.Errorf("TRAVEL_USERS_FILE is required for the file store")
		}
	case StorePostgres:
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres store")
		}
	case StoreRedis:
		if c.Store.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required for the redis store")
		}
	default:
		return fmt.Errorf("unknown TRAVEL_STORE %q", c.Store.Backend)
	}

	if c.TopN < 1 {
		return fmt.Errorf("TRAVEL_TOP_N must be at least 1, got %d", c.TopN)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("unknown LOG_FORMAT %q", c.Log.Format)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("parsing LOG_LEVEL: %w", err)
	}
	return l, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
