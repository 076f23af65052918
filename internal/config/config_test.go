package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "session", cfg.SessionCookie)
	assert.Equal(t, 60*time.Second, cfg.AITimeout)
	assert.Equal(t, 30, cfg.LogRetentionDays)
	assert.Equal(t, "@daily", cfg.LogCleanupCron)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_RejectsNonPositiveRetention(t *testing.T) {
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123")
	t.Setenv("LOG_RETENTION_DAYS", "0")

	_, err := Load()
	assert.ErrorContains(t, err, "LOG_RETENTION_DAYS")
}

func TestLoad_MissingSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ShortSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "short")

	_, err := Load()
	assert.ErrorContains(t, err, "SESSION_SECRET")
}

func TestLoad_ProductionRequiresDatabaseCredentials(t *testing.T) {
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.ErrorContains(t, err, "DB_PASSWORD")

	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/planner")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/planner", cfg.DSN())
}

func TestConfig_DSNFromParts(t *testing.T) {
	cfg := &Config{
		DBHost:     "db",
		DBPort:     "5433",
		DBUser:     "planner",
		DBPassword: "secret",
		DBName:     "planner",
		DBSSLMode:  "require",
	}

	assert.Equal(t,
		"host=db user=planner password=secret dbname=planner port=5433 sslmode=require TimeZone=UTC",
		cfg.DSN())
}

func TestConfig_AllowedOrigins(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "*"},
		{"*", "*"},
		{" https://a.example , https://b.example,", "https://a.example,https://b.example"},
	}

	for _, tt := range tests {
		cfg := &Config{CORSOrigins: tt.in}
		assert.Equal(t, tt.want, cfg.AllowedOrigins(), "input %q", tt.in)
	}
}
