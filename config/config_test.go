package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_PATH", "ENVIRONMENT", "LOG_LEVEL", "SERVICE_NAME"} {
		t.Setenv(Prefix+"_"+k, "")
		_ = os.Unsetenv(Prefix + "_" + k)
	}

	cfg, found, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "lifeplan.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LIFEPLAN_PORT", "9191")
	t.Setenv("LIFEPLAN_ENVIRONMENT", "production")

	cfg, _, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "9191", cfg.Port)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_DotEnvFile(t *testing.T) {
	t.Setenv("LIFEPLAN_DB_PATH", "")
	_ = os.Unsetenv("LIFEPLAN_DB_PATH")
	t.Cleanup(func() { _ = os.Unsetenv("LIFEPLAN_DB_PATH") })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LIFEPLAN_DB_PATH=/tmp/from-dotenv.db\n"), 0o600))

	cfg, found, err := Load(path)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "/tmp/from-dotenv.db", cfg.DBPath)
}
