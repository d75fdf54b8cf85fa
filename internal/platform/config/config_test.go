package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 100, cfg.RateLimitPerMin)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Nil(t, cfg.KafkaBrokers)
	assert.Equal(t, "idverify.audit", cfg.KafkaAuditTopic)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Empty(t, cfg.RegistryBaseURL)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("IDVERIFY_ADDR", ":9090")
	t.Setenv("IDVERIFY_KAFKA_BROKERS", "broker1:9092, broker2:9092")
	t.Setenv("IDVERIFY_RATE_LIMIT_PER_MIN", "10")
	t.Setenv("IDVERIFY_TOKEN_TTL", "30m")

	cfg := FromEnv()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 10, cfg.RateLimitPerMin)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	t.Setenv("IDVERIFY_RATE_LIMIT_PER_MIN", "zero")
	t.Setenv("IDVERIFY_TOKEN_TTL", "-5m")

	cfg := FromEnv()

	assert.Equal(t, 100, cfg.RateLimitPerMin)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
}
