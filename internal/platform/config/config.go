// Package config reads process configuration from the environment so main
// stays lean. Every field has a development default; production overrides
// them per deployment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures process level configuration.
type Server struct {
	Addr string

	// DatabaseURL selects the Postgres stores; empty runs fully in memory.
	DatabaseURL string

	// RedisURL enables rate limiting; empty disables it.
	RedisURL        string
	RateLimitPerMin int
	RateLimitWindow time.Duration

	// KafkaBrokers enables the audit broker sink; empty keeps audit local.
	KafkaBrokers    []string
	KafkaAuditTopic string

	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string
	TokenTTL      time.Duration

	// Pre-provisioned API client for the client-credentials flow.
	SeedClientID     string
	SeedClientSecret string

	// RegistryBaseURL selects the real pre-registration backend; empty uses
	// the in-process stub.
	RegistryBaseURL string
	RegistryAPIKey  string
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	return Server{
		Addr:             envOr("IDVERIFY_ADDR", ":8080"),
		DatabaseURL:      os.Getenv("IDVERIFY_DATABASE_URL"),
		RedisURL:         os.Getenv("IDVERIFY_REDIS_URL"),
		RateLimitPerMin:  envInt("IDVERIFY_RATE_LIMIT_PER_MIN", 100),
		RateLimitWindow:  envDuration("IDVERIFY_RATE_LIMIT_WINDOW", time.Minute),
		KafkaBrokers:     envList("IDVERIFY_KAFKA_BROKERS"),
		KafkaAuditTopic:  envOr("IDVERIFY_KAFKA_AUDIT_TOPIC", "idverify.audit"),
		JWTSigningKey:    envOr("IDVERIFY_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		JWTIssuer:        envOr("IDVERIFY_JWT_ISSUER", "idverify"),
		JWTAudience:      envOr("IDVERIFY_JWT_AUDIENCE", "idverify-api"),
		TokenTTL:         envDuration("IDVERIFY_TOKEN_TTL", time.Hour),
		SeedClientID:     envOr("IDVERIFY_CLIENT_ID", "dev-client"),
		SeedClientSecret: envOr("IDVERIFY_CLIENT_SECRET", "dev-secret"),
		RegistryBaseURL:  os.Getenv("IDVERIFY_REGISTRY_BASE_URL"),
		RegistryAPIKey:   os.Getenv("IDVERIFY_REGISTRY_API_KEY"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed < 1 {
		return fallback
	}
	return parsed
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
