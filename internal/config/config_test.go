package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "database:\n  driver: memory\n")

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, "debug", c.Server.Mode)
	assert.Equal(t, []string{"*"}, c.Server.AllowOrigins)
	assert.Equal(t, "memory", c.Database.Driver)
	assert.Equal(t, time.Hour, c.Redis.LinkCacheTTL)
	assert.Equal(t, "click_events", c.RocketMQ.Topic)
	assert.Equal(t, "CF-IPCountry", c.Analytics.CountryHeader)
	assert.Equal(t, 20, c.RateLimit.Burst)
	assert.Same(t, c, Get())
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("TEST_CLICKGATE_DSN", "user:pass@tcp(localhost:3306)/clickgate")
	t.Setenv("TEST_CLICKGATE_SALT", "pepper")
	path := writeConfig(t, `
database:
  driver: mysql
  dsn: ${TEST_CLICKGATE_DSN}
analytics:
  fingerprint_salt: ${TEST_CLICKGATE_SALT}
  timezone: UTC
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "user:pass@tcp(localhost:3306)/clickgate", c.Database.DSN)
	assert.Equal(t, "pepper", c.Analytics.FingerprintSalt)

	loc, err := c.Analytics.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown driver", body: "database:\n  driver: oracle\n"},
		{name: "mysql without dsn", body: "database:\n  driver: mysql\n"},
		{name: "bad timezone", body: "database:\n  driver: memory\nanalytics:\n  timezone: Mars/Olympus\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestAnalyticsConfig_Location(t *testing.T) {
	loc, err := AnalyticsConfig{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = AnalyticsConfig{Timezone: "local"}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}
