package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 25, cfg.DBMaxOpenConnections)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "blacklist", cfg.MetricsNamespace)
	assert.Equal(t, 8081, cfg.MetricsPort)
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.CORSEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PEPPER", "0123456789abcdef0123456789abcdef")

	cfg := Load()

	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "0123456789abcdef0123456789abcdef", cfg.Pepper)
}

func TestGetGinMode(t *testing.T) {
	cfg := &Config{LogLevel: "debug"}
	assert.Equal(t, "debug", cfg.GetGinMode())

	cfg.LogLevel = "info"
	assert.Equal(t, "release", cfg.GetGinMode())
}
