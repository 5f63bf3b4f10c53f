package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "reservations")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequired(t)
		t.Setenv("APP_ENV", "")

		cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
		require.NoError(t, err)

		assert.Equal(t, "dev", cfg.Env)
		assert.Equal(t, "8080", cfg.Port)
		assert.True(t, cfg.DBAutoMigrate)
		assert.False(t, cfg.RateLimit.Enabled)
		assert.False(t, cfg.Events.Enabled)
		assert.Equal(t, "entity.changed", cfg.Events.Queue)
	})

	t.Run("missing required vars are listed", func(t *testing.T) {
		setRequired(t)
		t.Setenv("DB_HOST", "")
		t.Setenv("DB_NAME", "")

		_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_HOST")
		assert.Contains(t, err.Error(), "DB_NAME")
	})

	t.Run("env file fills unset vars", func(t *testing.T) {
		setRequired(t)
		t.Setenv("DB_NAME", "")
		os.Unsetenv("DB_NAME")

		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("DB_NAME=fromfile\nAPP_PORT=9999\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "fromfile", cfg.DBName)
		assert.Equal(t, "8080", cfg.Port, "process env wins over the file")
		os.Unsetenv("DB_NAME")
	})
}

func TestLoadRateLimitConfig(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "on")
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "1m")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1, cfg.Capacity)
	assert.Equal(t, time.Minute, cfg.RefillInterval)
	assert.Equal(t, 5*time.Minute, cfg.TTL)
}

func TestLoadRedisConfig(t *testing.T) {
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_DB", "2")
	assert.Equal(t, RedisConfig{Addr: "cache:6380", DB: 2}, LoadRedisConfig())

	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_PORT", "6379")
	assert.Equal(t, "redis:6379", LoadRedisConfig().Addr)
}

func TestLoadEventsConfig(t *testing.T) {
	t.Setenv("RABBITMQ_URL", "")
	t.Setenv("AMQP_URL", "amqp://broker:5672/")
	t.Setenv("EVENTS_ENABLED", "true")

	cfg := LoadEventsConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "amqp://broker:5672/", cfg.URL)
	assert.Equal(t, "logs/events.log", cfg.LogPath)
}
