package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	DefaultJWTSecret     = "change-me-jwt-secret"
	DefaultAdminPassword = "admin123"
)

type Config struct {
	AppEnv          string        `env:"APP_ENV" envDefault:"dev"`
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":5000"`
	DatabaseURL     string        `env:"DATABASE_URL" envDefault:"hbnb.db"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	JWTSecret    string        `env:"JWT_SECRET" envDefault:"change-me-jwt-secret"`
	JWTAccessTTL time.Duration `env:"JWT_ACCESS_TTL" envDefault:"1h"`
	BcryptCost   int           `env:"BCRYPT_COST" envDefault:"10"`

	// Comma-separated, e.g. CORS_ALLOWED_ORIGINS=https://app.example.com,https://admin.example.com
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// Bootstrap admin created at startup when no user holds AdminEmail.
	// Leave ADMIN_EMAIL empty to skip.
	AdminEmail     string `env:"ADMIN_EMAIL" envDefault:"admin@example.com"`
	AdminPassword  string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	AdminFirstName string `env:"ADMIN_FIRST_NAME" envDefault:"Admin"`
	AdminLastName  string `env:"ADMIN_LAST_NAME" envDefault:"User"`
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse reads configuration from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	cfg.JWTSecret = strings.TrimSpace(cfg.JWTSecret)
	cfg.AdminEmail = strings.TrimSpace(cfg.AdminEmail)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProdLike() bool {
	return isProdLike(c.AppEnv)
}

func validateConfig(cfg *Config) error {
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be > 0")
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	if isProdLike(cfg.AppEnv) {
		if cfg.JWTSecret == DefaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.AdminEmail != "" && isEmptyOrDefault(cfg.AdminPassword, DefaultAdminPassword) {
			return fmt.Errorf("in prod/release ADMIN_PASSWORD must be set and not default")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}
