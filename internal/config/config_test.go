package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		t.Setenv("JWT_SECRET", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, "wishlist.events", cfg.KafkaTopic)
		assert.Len(t, cfg.JWTSecret, 64)
		assert.True(t, cfg.EphemeralJWTSecret)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("empty_secret_is_not_predictable", func(t *testing.T) {
		t.Setenv("APP_ENV", "")
		t.Setenv("JWT_SECRET", "")

		first, err := Load()
		require.NoError(t, err)
		second, err := Load()
		require.NoError(t, err)

		assert.Equal(t, EnvDevelopment, first.AppEnv)
		assert.NotEqual(t, "dev-secret", first.JWTSecret)
		assert.NotEqual(t, first.JWTSecret, second.JWTSecret)
	})

	t.Run("env_overrides", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("JWT_SECRET", "s3cret")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "s3cret", cfg.JWTSecret)
		assert.False(t, cfg.EphemeralJWTSecret)
	})

	t.Run("production_requires_secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("JWT_SECRET", "")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("invalid_env", func(t *testing.T) {
		t.Setenv("APP_ENV", "staging")

		_, err := Load()
		assert.Error(t, err)
	})
}
