package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/she110ff/metalcat-sub002/internal/models"
	"github.com/stretchr/testify/require"
)

var keys = []string{"PORT", "LOG_LEVEL", "GIN_MODE", "LOCALE", "SEED_DEMO_DATA"}

// clearEnv unsets every config key for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { os.Setenv(k, v) })
		} else {
			t.Cleanup(func() { os.Unsetenv(k) })
		}
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "release", cfg.GinMode)
	require.Equal(t, models.LocaleKO, cfg.Locale)
	require.True(t, cfg.SeedDemoData)
	require.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", ":9090")
	t.Setenv("LOCALE", "en")
	t.Setenv("SEED_DEMO_DATA", "false")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Equal(t, ":9090", cfg.Addr())
	require.Equal(t, models.LocaleEN, cfg.Locale)
	require.False(t, cfg.SeedDemoData)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=7070\nLOG_LEVEL=debug\nLOCALE=fr\nSEED_DEMO_DATA=maybe\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := Load(path)
	require.Equal(t, "7070", cfg.Port)
	require.Equal(t, "warn", cfg.LogLevel, "process environment wins over .env")
	require.Equal(t, models.LocaleKO, cfg.Locale, "unknown locales fall back to Korean")
	require.True(t, cfg.SeedDemoData, "unparsable booleans fall back to the default")
}
