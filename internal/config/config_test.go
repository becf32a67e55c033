package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORAGE", "PLAYGROUND", "INTROSPECTION", "LOG_VERBOSITY", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE", "sqlite")
	t.Setenv("PLAYGROUND", "false")
	t.Setenv("INTROSPECTION", "0")
	t.Setenv("LOG_VERBOSITY", "2")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, StorageSQLite, cfg.Storage)
	assert.False(t, cfg.Playground)
	assert.False(t, cfg.Introspection)
	assert.Equal(t, 2, cfg.LogVerbosity)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestFromEnv_Invalid(t *testing.T) {
	t.Run("Port is not a number", func(t *testing.T) {
		t.Setenv("PORT", "http")
		_, err := FromEnv()
		assert.Error(t, err)
	})

	t.Run("Unknown storage is left to Validate", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("STORAGE", "postgres")
		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "postgres", cfg.Storage)

		err = cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown storage type")
	})

	t.Run("Bad duration", func(t *testing.T) {
		t.Setenv("STORAGE", "")
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")
		_, err := FromEnv()
		assert.Error(t, err)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("Missing file is not an error", func(t *testing.T) {
		assert.NoError(t, LoadEnv(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("Values from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("BLOGQL_TEST_KEY=from-file\n"), 0o600))
		t.Setenv("BLOGQL_TEST_KEY", "")
		os.Unsetenv("BLOGQL_TEST_KEY")

		require.NoError(t, LoadEnv(path))
		assert.Equal(t, "from-file", GetEnv("BLOGQL_TEST_KEY", "fallback"))
	})
}

func TestGetEnv(t *testing.T) {
	t.Setenv("BLOGQL_EMPTY", "")
	assert.Equal(t, "fallback", GetEnv("BLOGQL_EMPTY", "fallback"))
}
