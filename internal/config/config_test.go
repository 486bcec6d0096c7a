package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/test")
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("ENV", "")
	t.Setenv("TIMEZONE", "")
	t.Setenv("MIGRATIONS_ENABLED", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.True(t, cfg.MigrationsEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/test")
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("ENV", "production")
	t.Setenv("TIMEZONE", "Europe/Moscow")
	t.Setenv("MIGRATIONS_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.False(t, cfg.MigrationsEnabled)
	assert.Equal(t, "debug", cfg.LogLevel)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())
}

func TestLoad_RequiredAndInvalid(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("DB_DSN", "")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DB_DSN", "postgres://localhost/test")
	t.Setenv("TIMEZONE", "Mars/Olympus")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("MIGRATIONS_ENABLED", "maybe")
	_, err = Load()
	assert.Error(t, err)
}
