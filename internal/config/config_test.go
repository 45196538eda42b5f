package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8081

[database]
host = "db"
dbname = "shareit"

[redis]
enabled = true
address = "redis:6379"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.HTTPPort)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "redis:6379", cfg.Redis.Address)
	assert.Equal(t, 300, cfg.Redis.TTL)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 10, cfg.Pagination.DefaultSize)
	assert.Equal(t, 600, cfg.RateLimit.IdleTTL)
	assert.Equal(t, 10000, cfg.RateLimit.MaxKeys)
	assert.Equal(t, "host=db port=5432 user= password= dbname=shareit sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SHAREIT_DB_HOST", "pg.internal")
	t.Setenv("SHAREIT_DB_PORT", "6432")
	t.Setenv("SHAREIT_HTTP_PORT", "7000")
	t.Setenv("SHAREIT_DB_PASSWORD", "secret")

	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "shareit"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "pg.internal", cfg.Database.Host)
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.Equal(t, 7000, cfg.Server.HTTPPort)
	assert.Equal(t, "secret", cfg.Database.Password)
}

func TestLoad_InvalidEnvInt(t *testing.T) {
	t.Setenv("SHAREIT_DB_PORT", "abc")

	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "shareit"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg := Config{
			Database: DatabaseConfig{Host: "localhost", DBName: "shareit"},
		}
		cfg.applyDefaults()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid config", mutate: func(c *Config) {}},
		{name: "missing db host", mutate: func(c *Config) { c.Database.Host = "" }, wantErr: true},
		{name: "missing db name", mutate: func(c *Config) { c.Database.DBName = "" }, wantErr: true},
		{name: "bad port", mutate: func(c *Config) { c.Server.HTTPPort = 70000 }, wantErr: true},
		{name: "redis without address", mutate: func(c *Config) {
			c.Redis.Enabled = true
			c.Redis.Address = ""
		}, wantErr: true},
		{name: "ratelimit without rps", mutate: func(c *Config) {
			c.RateLimit.Enabled = true
			c.RateLimit.RPS = 0
		}, wantErr: true},
		{name: "negative default size", mutate: func(c *Config) { c.Pagination.DefaultSize = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
