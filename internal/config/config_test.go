package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_HOST", "DB_NAME", "DB_AUTO_MIGRATE", "LOG_LEVEL", "BCRYPT_COST"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "banking", cfg.Database.DBName)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, 10, cfg.App.BcryptCost)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("DB_CONN_MAX_LIFETIME", "not-a-duration")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime, "invalid duration should fall back to default")
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080"},
			Database: DatabaseConfig{Host: "localhost", DBName: "banking", MaxOpenConns: 10, MaxIdleConns: 2},
			App:      AppConfig{BcryptCost: 10},
			Logger:   LoggerConfig{Level: "info"},
		}
	}

	tests := []struct {
		mutate  func(c *Config)
		name    string
		wantErr string
	}{
		{name: "valid configuration", mutate: func(*Config) {}},
		{name: "empty port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: "server port"},
		{name: "empty host", mutate: func(c *Config) { c.Database.Host = "" }, wantErr: "database host"},
		{name: "empty database name", mutate: func(c *Config) { c.Database.DBName = "" }, wantErr: "database name"},
		{name: "idle above open", mutate: func(c *Config) { c.Database.MaxIdleConns = 20 }, wantErr: "max idle conns"},
		{name: "bcrypt cost too high", mutate: func(c *Config) { c.App.BcryptCost = 40 }, wantErr: "bcrypt cost"},
		{name: "unknown log level", mutate: func(c *Config) { c.Logger.Level = "trace" }, wantErr: "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: "5433", User: "bank", Password: "secret", DBName: "core", SSLMode: "require"}
	assert.Equal(t, "host=db port=5433 user=bank password=secret dbname=core sslmode=require", cfg.DSN())
}

func TestLoggerConfig_NewLoggerTo(t *testing.T) {
	var buf bytes.Buffer
	logger := (&LoggerConfig{Level: "warn"}).NewLoggerTo(&buf)

	logger.Info("dropped")
	logger.Warn("kept", "account_id", "abc")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "abc", entry["account_id"])
	assert.Equal(t, slog.LevelWarn.String(), entry["level"])
}
