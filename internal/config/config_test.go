package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "database:\n  host: db\n  port: 5432\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "changes", cfg.Sync.Mode)
	assert.Equal(t, 100, cfg.Sync.BatchSize)
	assert.Equal(t, 5, cfg.Sync.MaxConsecutivePageErrors)
	assert.Equal(t, 5*time.Minute, cfg.Images.SafetyMargin)
	assert.Equal(t, 2, cfg.Images.RetryAttempts)
	assert.Contains(t, cfg.Images.ProxyHosts, "autoimg.cn")
	assert.False(t, cfg.Cleanup.Enabled)
	assert.Equal(t, 10*time.Minute, cfg.Cleanup.TimeBudget)
	assert.Equal(t, 10, cfg.Cleanup.Concurrency)
	assert.Equal(t, 3, cfg.Sources.Encar.Retry.MaxAttempts)
	assert.Empty(t, cfg.Sources.Dubicars.V1URL)
	assert.Empty(t, cfg.RabbitMQ.URL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("ENCAR_API_KEY", "secret-key")
	path := writeConfig(t, "sources:\n  encar:\n    enabled: true\n    api_key: ${ENCAR_API_KEY}\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Sources.Encar.Enabled)
	assert.Equal(t, "secret-key", cfg.Sources.Encar.APIKey)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config file")
}

func TestDatabaseConfig_URL(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 5432, User: "u", Password: "p", DBName: "d", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/d?sslmode=disable", d.URL())
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=d sslmode=disable", d.DSN())
}
