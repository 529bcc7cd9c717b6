package config_test

import (
	"testing"
	"time"

	"silktouch/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadWith(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.App.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 12, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 100, cfg.Pagination.MaxLimit)
	assert.Equal(t, "AED", cfg.Store.Currency)
	assert.Equal(t, 7, cfg.Store.DeliveryDays)
	assert.Equal(t, "none", cfg.Generative.Provider)
	assert.Equal(t, 10*time.Second, cfg.Generative.Timeout)
	assert.GreaterOrEqual(t, cfg.Redis.LockTTL, cfg.App.RequestTimeout)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_DSN", "file::memory:")
	t.Setenv("GENERATIVE_PROVIDER", "mock")
	t.Setenv("EVENTS_KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")

	cfg, err := config.LoadWith(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "file::memory:", cfg.Database.DSN)
	assert.Equal(t, "mock", cfg.Generative.Provider)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Events.KafkaBrokerList())
}

func TestValidateRejectsBadSettings(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "oracle")
	_, err := config.LoadWith(viper.New())
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestValidateRequiresLockToOutliveRequest(t *testing.T) {
	t.Setenv("APP_REQUEST_TIMEOUT", "45s")
	_, err := config.LoadWith(viper.New())
	assert.ErrorContains(t, err, "redis.lock_ttl (30s) must be at least app.request_timeout (45s)")

	t.Setenv("REDIS_LOCK_TTL", "1m")
	cfg, err := config.LoadWith(viper.New())
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.Redis.LockTTL)
}

func TestValidateRequiresSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	_, err := config.LoadWith(viper.New())
	assert.ErrorContains(t, err, "jwt.secret must be set in production")
}
