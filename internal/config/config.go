// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads application configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"ONAV_DB_PATH" envDefault:"./data/onav.db"`
	ServerHost string `env:"ONAV_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"ONAV_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"ONAV_ENV" envDefault:"development"`
	LogLevel   string `env:"ONAV_LOG_LEVEL" envDefault:"info"`

	// Cache configuration
	RedisURL    string `env:"ONAV_REDIS_URL"`                       // Optional Redis URL for distributed caching
	CachePrefix string `env:"ONAV_CACHE_PREFIX" envDefault:"onav:"` // Redis key prefix
	CacheTTL    int    `env:"ONAV_CACHE_TTL" envDefault:"3600"`     // Default cache TTL in seconds

	// Event log retention
	EventRetentionDays int `env:"ONAV_EVENT_RETENTION_DAYS" envDefault:"90"`

	// Seeding configuration
	DoSeed bool `env:"ONAV_DO_SEED" envDefault:"false"` // Enable database seeding
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.ServerPort <= 0 || cfg.ServerPort > 65535 {
		return nil, fmt.Errorf("ONAV_SERVER_PORT must be between 1 and 65535, got %d", cfg.ServerPort)
	}
	if cfg.EventRetentionDays < 0 {
		return nil, fmt.Errorf("ONAV_EVENT_RETENTION_DAYS must not be negative, got %d", cfg.EventRetentionDays)
	}

	return cfg, nil
}
