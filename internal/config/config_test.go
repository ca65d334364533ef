package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[logs]
level = "debug"

[magento]
base_url = "https://shop.example.com/"
graphql_path = "graphql"
timeout = 5

[booking]
default_allowed_seats = 12
session_ttl_minutes = 30

[[booking.dependency_rules]]
controller_title = "Are you Coming in Cruise Ship?"
affirmative_value_title = "YES"
dependent_titles = ["Ship Arrival TIme", "Ship Departure TIme"]

[database]
enabled = true
host = "db"
user = "tour"
password = "from-file"
dbname = "tours"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout, "default kept")
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "https://shop.example.com/graphql", cfg.Magento.Endpoint())
	assert.Equal(t, "Tour Date", cfg.Booking.DateOptionTitle)
	assert.Equal(t, "magento_cart_id:", cfg.Redis.KeyPrefix)
	require.Len(t, cfg.Booking.DependencyRules, 1)
	assert.Equal(t, []string{"Ship Arrival TIme", "Ship Departure TIme"}, cfg.Booking.DependencyRules[0].DependentTitles)
	assert.Equal(t, "host=db port=5432 user=tour password=from-file dbname=tours sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MAGENTO_BASE_URL", "https://staging.example.com")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("RABBITMQ_URL", "amqp://u:p@mq:5672/")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "https://staging.example.com/graphql", cfg.Magento.Endpoint())
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "amqp://u:p@mq:5672/", cfg.RabbitMQ.URL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, ErrLoad)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "empty base url", mutate: func(c *Config) { c.Magento.BaseURL = " " }},
		{name: "zero seats", mutate: func(c *Config) { c.Booking.DefaultAllowedSeats = 0 }},
		{name: "zero ttl", mutate: func(c *Config) { c.Booking.SessionTTLMinutes = 0 }},
		{name: "incomplete rule", mutate: func(c *Config) {
			c.Booking.DependencyRules = []DependencyRule{{ControllerTitle: "Ship?"}}
		}},
		{name: "rate limit without burst", mutate: func(c *Config) {
			c.RateLimit.Enabled = true
			c.RateLimit.Burst = 0
		}},
		{name: "rate limit without idle window", mutate: func(c *Config) {
			c.RateLimit.Enabled = true
			c.RateLimit.IdleMinutes = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Magento.BaseURL = "https://shop.example.com"
			require.NoError(t, cfg.Validate())

			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
