package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "ripple")
	t.Setenv("DB_PASSWORD", "sekret")
	t.Setenv("DB_NAME", "ripple_test")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("S3_BUCKET_NAME", "test-avatars")
	t.Setenv("FEED_CACHE_TTL_MINUTES", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "ripple", cfg.DBUser)
	assert.Equal(t, "sekret", cfg.DBPassword)
	assert.Equal(t, "ripple_test", cfg.DBName)
	assert.Equal(t, "cache.internal", cfg.RedisHost)
	assert.Equal(t, "6380", cfg.RedisPort)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "test-avatars", cfg.S3BucketName)
	assert.Equal(t, 3, cfg.FeedCacheTTLMinutes)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
		"DB_NAME", "DB_SSLMODE", "REDIS_HOST", "REDIS_PORT",
		"S3_BUCKET_NAME", "FEED_CACHE_TTL_MINUTES",
	} {
		if value, ok := os.LookupEnv(key); ok {
			t.Setenv(key, value)
			os.Unsetenv(key)
		}
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "ripple", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "localhost", cfg.RedisHost)
	assert.Equal(t, "6379", cfg.RedisPort)
	assert.Equal(t, "ripple-avatars", cfg.S3BucketName)
	assert.Equal(t, 10, cfg.FeedCacheTTLMinutes)
}

func TestLoad_BadIntFallsBackToDefault(t *testing.T) {
	t.Setenv("FEED_CACHE_TTL_MINUTES", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.FeedCacheTTLMinutes)
}
