// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./data/onav.db", cfg.DBPath)
	assert.Equal(t, "localhost", cfg.ServerHost)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "onav:", cfg.CachePrefix)
	assert.Equal(t, 3600, cfg.CacheTTL)
	assert.Equal(t, 90, cfg.EventRetentionDays)
	assert.False(t, cfg.DoSeed)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ONAV_DB_PATH", "/tmp/test.db")
	t.Setenv("ONAV_SERVER_PORT", "9090")
	t.Setenv("ONAV_ENV", "production")
	t.Setenv("ONAV_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("ONAV_DO_SEED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.UseRedisCache())
	assert.True(t, cfg.DoSeed)
}

func TestLoadInvalidPort(t *testing.T) {
	for _, port := range []string{"0", "-1", "70000"} {
		t.Setenv("ONAV_SERVER_PORT", port)
		_, err := Load()
		assert.Error(t, err, "port %s should be rejected", port)
	}
}

func TestLoadInvalidRetention(t *testing.T) {
	t.Setenv("ONAV_EVENT_RETENTION_DAYS", "-5")
	_, err := Load()
	assert.Error(t, err)
}

func TestServerAddr(t *testing.T) {
	cfg := Config{ServerHost: "0.0.0.0", ServerPort: 8081}
	assert.Equal(t, "0.0.0.0:8081", cfg.ServerAddr())
}
