package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LOG_LEVEL", "MCP_HOST", "PORT",
		"JOBSUCHE_API_URL", "JOBSUCHE_API_KEY", "REDIS_URL",
		"JOBSUCHE_DEFAULT_PAGE_SIZE", "JOBSUCHE_MAX_PAGE_SIZE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://rest.arbeitsagentur.de/jobboerse/jobsuche-service", cfg.API.BaseURL)
	assert.Empty(t, cfg.API.Key)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 25, cfg.DefaultPageSize)
	assert.Equal(t, 100, cfg.MaxPageSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MCP_HOST", "127.0.0.1")
	t.Setenv("PORT", "9090")
	t.Setenv("JOBSUCHE_API_URL", "https://api.example.test/jobsuche")
	t.Setenv("JOBSUCHE_API_KEY", "secret-key")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("JOBSUCHE_DEFAULT_PAGE_SIZE", "10")
	t.Setenv("JOBSUCHE_MAX_PAGE_SIZE", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://api.example.test/jobsuche", cfg.API.BaseURL)
	assert.Equal(t, "secret-key", cfg.API.Key)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 10, cfg.DefaultPageSize)
	assert.Equal(t, 50, cfg.MaxPageSize)
}

func TestLoad_RejectsNonIntegerSizes(t *testing.T) {
	clearEnv(t)
	t.Setenv("JOBSUCHE_DEFAULT_PAGE_SIZE", "lots")

	_, err := Load()
	assert.ErrorContains(t, err, "JOBSUCHE_DEFAULT_PAGE_SIZE")

	clearEnv(t)
	t.Setenv("JOBSUCHE_MAX_PAGE_SIZE", "1e2")

	_, err = Load()
	assert.ErrorContains(t, err, "JOBSUCHE_MAX_PAGE_SIZE")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg := Config{DefaultPageSize: 25, MaxPageSize: 100}
		cfg.API.BaseURL = "https://api.example.test"
		return cfg
	}

	assert.NoError(t, valid().Validate())

	cfg := valid()
	cfg.API.BaseURL = ""
	assert.ErrorContains(t, cfg.Validate(), "cannot be empty")

	cfg = valid()
	cfg.API.BaseURL = "ftp://api.example.test"
	assert.ErrorContains(t, cfg.Validate(), "http:// or https://")

	cfg = valid()
	cfg.DefaultPageSize = 0
	assert.ErrorContains(t, cfg.Validate(), "default page size")

	cfg = valid()
	cfg.MaxPageSize = -1
	assert.ErrorContains(t, cfg.Validate(), "max page size")

	cfg = valid()
	cfg.DefaultPageSize = 60
	cfg.MaxPageSize = 50
	assert.ErrorContains(t, cfg.Validate(), "cannot exceed max page size")

	cfg = valid()
	cfg.MaxPageSize = 150
	cfg.DefaultPageSize = 25
	assert.ErrorContains(t, cfg.Validate(), "API limitation")
}
