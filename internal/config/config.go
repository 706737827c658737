package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAccessTTL   = "15m"
	defaultRefreshTTL  = "168h"
	defaultDatabaseURL = "taskboard.db"
	defaultPort        = "8080"
)

// Config is the process-wide runtime configuration. Everything is resolved
// once at startup; verification code never reads the environment directly.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	JWTSecret  string
	CronSecret string

	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	// CookieSecure follows the environment: secure cookies are mandatory in
	// prod-like environments.
	CookieSecure bool
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("NODE_ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = getEnv("PORT", defaultPort)
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabaseURL)

	cfg.JWTSecret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	cfg.CronSecret = strings.TrimSpace(os.Getenv("CRON_SECRET"))

	var err error
	cfg.AccessTokenTTL, err = parseDurationEnv("ACCESS_TOKEN_TTL", defaultAccessTTL)
	if err != nil {
		return nil, err
	}
	cfg.RefreshTokenTTL, err = parseDurationEnv("REFRESH_TOKEN_TTL", defaultRefreshTTL)
	if err != nil {
		return nil, err
	}

	cfg.CookieSecure = cfg.IsProd()

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProd() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production" || c.AppEnv == "release"
}

func validate(cfg *Config) error {
	if cfg.AccessTokenTTL <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_TTL must be > 0")
	}
	if cfg.RefreshTokenTTL <= 0 {
		return fmt.Errorf("REFRESH_TOKEN_TTL must be > 0")
	}
	if cfg.RefreshTokenTTL <= cfg.AccessTokenTTL {
		return fmt.Errorf("REFRESH_TOKEN_TTL must be longer than ACCESS_TOKEN_TTL")
	}
	if cfg.IsProd() && cfg.CronSecret == "" {
		return fmt.Errorf("in prod/release CRON_SECRET must be set")
	}
	return nil
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
