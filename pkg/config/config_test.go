package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_DatabaseConfig(t *testing.T) {
	// Setup environment variables
	os.Setenv("JWT_KEY", "test-secret")
	os.Setenv("DB_HOST", "db.internal")
	os.Setenv("DB_PORT", "5433")
	defer func() {
		os.Unsetenv("JWT_KEY")
		os.Unsetenv("DB_HOST")
		os.Unsetenv("DB_PORT")
	}()

	// Load config
	cfg, err := Load()
	assert.NoError(t, err)

	// Verify database config
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Contains(t, cfg.Database.DatabaseDSN(), "host=db.internal port=5433")
}

func TestLoad_Defaults(t *testing.T) {
	os.Setenv("JWT_KEY", "test-secret")
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("DB_NAME")
	defer os.Unsetenv("JWT_KEY")

	cfg, err := Load()
	assert.NoError(t, err)

	// Verify defaults
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "skyexp", cfg.Database.Database)
	assert.Equal(t, 3, cfg.Auth.TokenTTLDays)
	assert.Equal(t, "localhost:6379", cfg.Redis.RedisAddr())
}

func TestLoad_RequiresJWTKey(t *testing.T) {
	os.Unsetenv("JWT_KEY")

	_, err := Load()
	assert.Error(t, err)
}
