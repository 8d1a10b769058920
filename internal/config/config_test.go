package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.HealthCheckInterval)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_CONNECTION_STRING", "postgres://localhost:5432/finance")
	t.Setenv("HEALTH_CHECK_INTERVAL", "30s")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://localhost:5432/finance", cfg.DBConnectionString)
	assert.Equal(t, 30*time.Second, cfg.HealthCheckInterval)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{
		Port:                "not-a-port",
		DBConnectionString:  "",
		HealthCheckInterval: time.Millisecond,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
	assert.Contains(t, err.Error(), "DB_CONNECTION_STRING is required")
	assert.Contains(t, err.Error(), "health check interval")
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{
		Port:                "70000",
		DBConnectionString:  "postgres://localhost:5432/finance",
		HealthCheckInterval: time.Minute,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be between 1 and 65535")
}
