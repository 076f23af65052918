package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`

	// Database. DatabaseURL wins over the discrete DB_* fields when set.
	DatabaseURL    string `env:"DATABASE_URL"`
	DBHost         string `env:"DB_HOST" envDefault:"localhost"`
	DBPort         string `env:"DB_PORT" envDefault:"5432"`
	DBUser         string `env:"DB_USER" envDefault:"postgres"`
	DBPassword     string `env:"DB_PASSWORD"`
	DBName         string `env:"DB_NAME" envDefault:"dayplanner"`
	DBSSLMode      string `env:"DB_SSLMODE" envDefault:"disable"`
	DBMaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`

	// Session tokens are minted by the identity provider and verified here.
	SessionSecret string        `env:"SESSION_SECRET,required"`
	SessionCookie string        `env:"SESSION_COOKIE" envDefault:"session"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"168h"`

	// AI advisor
	OpenAIAPIKey string        `env:"OPENAI_API_KEY"`
	OpenAIAPIURL string        `env:"OPENAI_API_URL" envDefault:"https://api.openai.com/v1/chat/completions"`
	OpenAIModel  string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	AITimeout    time.Duration `env:"AI_TIMEOUT" envDefault:"60s"`

	// Server
	Port         string `env:"PORT" envDefault:"8080"`
	CORSOrigins  string `env:"CORS_ORIGINS" envDefault:"*"`
	BodyLimit    int    `env:"BODY_LIMIT" envDefault:"1048576"`
	RateLimitMax int    `env:"RATE_LIMIT_MAX" envDefault:"120"`

	// Optional Redis backing for the rate limiter.
	RedisURL string `env:"REDIS_URL"`

	// LogCleanupCron is a cron-style schedule for pruning system_logs.
	LogCleanupCron   string `env:"LOG_CLEANUP_CRON" envDefault:"@daily"`
	LogRetentionDays int    `env:"LOG_RETENTION_DAYS" envDefault:"30"`
	SentryDSN        string `env:"SENTRY_DSN"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.SessionSecret) < 16 {
		return fmt.Errorf("SESSION_SECRET must be at least 16 characters")
	}
	if c.DatabaseURL == "" && c.DBPassword == "" && c.IsProduction() {
		return fmt.Errorf("DB_PASSWORD or DATABASE_URL is required in production")
	}
	if c.LogRetentionDays <= 0 {
		return fmt.Errorf("LOG_RETENTION_DAYS must be positive, got %d", c.LogRetentionDays)
	}
	if c.RateLimitMax <= 0 {
		return fmt.Errorf("RATE_LIMIT_MAX must be positive, got %d", c.RateLimitMax)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

// AllowedOrigins returns the CORS origins in the comma-joined form fiber expects.
func (c *Config) AllowedOrigins() string {
	parts := strings.Split(c.CORSOrigins, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return "*"
	}
	return strings.Join(result, ",")
}
