package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	unsetAll(t)

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "storemart", cfg.Database.DBName)
	assert.Equal(t, "storemart", cfg.Database.Schema)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 10, cfg.Database.MaxIdleConns)
	assert.Equal(t, 100, cfg.Database.MaxOpenConns)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "storemart_app")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("DB_NAME", "storemart_prod")
	t.Setenv("DB_SCHEMA", "storemart_eu")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "3000")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "5433", cfg.Database.Port)
	assert.Equal(t, "storemart_app", cfg.Database.User)
	assert.Equal(t, "storemart_prod", cfg.Database.DBName)
	assert.Equal(t, "storemart_eu", cfg.Database.Schema)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "3000", cfg.App.Port)
}

func TestGetEnvIntBadValue(t *testing.T) {
	t.Setenv("DB_MAX_IDLE_CONNS", "lots")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 10, cfg.Database.MaxIdleConns)
}

func TestGetDSN(t *testing.T) {
	dbCfg := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "postgres",
		DBName:   "storemart",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=storemart sslmode=disable",
		dbCfg.GetDSN())
}

// unsetAll clears the database env vars so Load falls back to its defaults.
// t.Setenv first so the originals are restored after the test.
func unsetAll(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"DB_SSLMODE", "DB_SCHEMA", "DB_MAX_IDLE_CONNS", "DB_MAX_OPEN_CONNS",
		"APP_ENV", "APP_PORT",
	} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}
