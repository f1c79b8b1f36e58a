package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Env      string     `env:"APP_ENV" envDefault:"local"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	Server   ServerConfig
	Auth     AuthConfig
	Mortgage MortgageConfig
}

type ServerConfig struct {
	Host               string        `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port               int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout        time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout       time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout        time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout    time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RateLimitPerMinute int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"120"`
	RateLimitBurst     int           `env:"RATE_LIMIT_BURST" envDefault:"20"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// AuthConfig включает проверку bearer-токенов, если задан JWTSecret.
type AuthConfig struct {
	JWTSecret string `env:"AUTH_JWT_SECRET"`
	JWTIssuer string `env:"AUTH_JWT_ISSUER" envDefault:"financial-advisor"`
}

// Enabled сообщает, требуется ли авторизация для калькуляторов.
func (c AuthConfig) Enabled() bool {
	return c.JWTSecret != ""
}

type MortgageConfig struct {
	DefaultAnnualIncome float64 `env:"MORTGAGE_DEFAULT_ANNUAL_INCOME" envDefault:"100000"`
}

// Load загружает конфигурацию приложения из окружения и .env.
func Load() (Config, error) {
	cfg := Config{}

	if err := loadEnv(); err != nil {
		return cfg, err
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	cfg.Server.CORSAllowedOrigins = cleanList(cfg.Server.CORSAllowedOrigins)

	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Address возвращает адрес для net/http.Server.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c Config) validate() error {
	if c.Server.Port <= 0 {
		return errors.New("SERVER_PORT must be greater than 0")
	}

	if c.Server.ReadTimeout <= 0 {
		return errors.New("SERVER_READ_TIMEOUT must be greater than 0")
	}

	if c.Server.WriteTimeout <= 0 {
		return errors.New("SERVER_WRITE_TIMEOUT must be greater than 0")
	}

	if c.Server.IdleTimeout <= 0 {
		return errors.New("SERVER_IDLE_TIMEOUT must be greater than 0")
	}

	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("SERVER_SHUTDOWN_TIMEOUT must be greater than 0")
	}

	if c.Server.RateLimitPerMinute <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}

	if c.Server.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_BURST must be greater than 0")
	}

	if c.Mortgage.DefaultAnnualIncome <= 0 {
		return errors.New("MORTGAGE_DEFAULT_ANNUAL_INCOME must be greater than 0")
	}

	return nil
}

func cleanList(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	out := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func loadEnv() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	return nil
}
