package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Environment: Development,
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:       "postgres",
			Host:         "localhost",
			Port:         "5432",
			Username:     "timedelta",
			Database:     "timedelta",
			SSLMode:      "require",
			QueryTimeout: 5 * time.Second,
		},
		Logger: LoggerConfig{Level: "info", Format: "json"},
		Delta:  DeltaConfig{DefaultListSize: 50, MaxListSize: 500},
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"unknown environment", func(c *Config) { c.Environment = "staging" }, "Config.Environment"},
		{"missing port", func(c *Config) { c.Server.Port = 0 }, "Config.Server.Port"},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, "Config.Database.Driver"},
		{"postgres without host", func(c *Config) { c.Database.Host = "" }, "Config.Database.Host"},
		{"sqlite without path", func(c *Config) {
			c.Database.Driver = "sqlite"
		}, "Config.Database.Path"},
		{"sqlite with path", func(c *Config) {
			c.Database = DatabaseConfig{Driver: "sqlite", Path: ":memory:", QueryTimeout: time.Second}
		}, ""},
		{"bad log level", func(c *Config) { c.Logger.Level = "loud" }, "logger.level"},
		{"bad log format", func(c *Config) { c.Logger.Format = "xml" }, "Config.Logger.Format"},
		{"max below default", func(c *Config) { c.Delta.MaxListSize = 10 }, "Config.Delta.MaxListSize"},
		{"sqlite in production", func(c *Config) {
			c.Environment = Production
			c.Database = DatabaseConfig{Driver: "sqlite", Path: "x.db", QueryTimeout: time.Second}
		}, "sqlite is not supported"},
		{"origin without scheme", func(c *Config) {
			c.Server.AllowedOrigins = []string{"app.example.com"}
		}, "server.allowedOrigins"},
		{"wildcard and explicit origins", func(c *Config) {
			c.Server.AllowedOrigins = []string{"*", "https://app.example.com", "http://*.example.com"}
		}, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)

			err := Validate(cfg)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestProductionWarnings(t *testing.T) {
	cfg := validConfig()
	assert.Nil(t, ProductionWarnings(cfg))

	cfg.Environment = Production
	assert.Empty(t, ProductionWarnings(cfg))

	cfg.Database.SSLMode = "disable"
	cfg.Server.ReadTimeout = time.Second
	cfg.Server.AllowedOrigins = []string{"https://example.com", "*"}
	warnings := ProductionWarnings(cfg)
	assert.Len(t, warnings, 3)
}
