package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	conf := Default()
	require.NotNil(t, conf)

	assert.Equal(t, "INFO", conf.LogLevel)
	assert.Equal(t, "https://api.etherscan.io/v2/api", conf.Etherscan.Url)
	assert.Equal(t, 250*time.Millisecond, conf.Etherscan.RequestDelay)
	assert.Equal(t, 30*time.Second, conf.Etherscan.RequestTimeout)
	assert.Equal(t, 50, conf.Importer.BatchSize)
	assert.Equal(t, uint16(5432), conf.Database.Port)
	assert.Equal(t, "disable", conf.Database.SslMode)

	// No implicit destination, a database import has to be configured
	assert.Empty(t, conf.Database.Url)
	assert.Empty(t, conf.Database.Host)
	assert.Empty(t, conf.Database.Name)

	// No implicit credential either
	assert.Empty(t, conf.Etherscan.ApiKey)
}

func TestEnvAliases(t *testing.T) {
	t.Setenv("ETHERSCAN_API_KEY", "key-from-env")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/contracts")

	conf, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "key-from-env", conf.Etherscan.ApiKey)
	assert.Equal(t, "postgres://localhost:5432/contracts", conf.Database.Url)
}

func TestPrefixedEnv(t *testing.T) {
	t.Setenv("REGISTRY_IMPORTER_BATCH_SIZE", "10")
	t.Setenv("REGISTRY_ETHERSCAN_REQUEST_DELAY", "1s")
	t.Setenv("REGISTRY_LOG_LEVEL", "DEBUG")

	conf, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 10, conf.Importer.BatchSize)
	assert.Equal(t, time.Second, conf.Etherscan.RequestDelay)
	assert.Equal(t, "DEBUG", conf.LogLevel)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(path, []byte(`{
		"Etherscan": {"RequestDelay": "500ms"},
		"Importer": {"BatchSize": 25}
	}`), 0o644)
	require.NoError(t, err)

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, conf.Etherscan.RequestDelay)
	assert.Equal(t, 25, conf.Importer.BatchSize)

	// Untouched values keep their defaults
	assert.Equal(t, 30*time.Second, conf.Etherscan.RequestTimeout)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
