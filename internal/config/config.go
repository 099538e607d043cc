package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/hestiadash/hestia/internal/database"
)

type Config struct {
	App struct {
		Name     string `envconfig:"APP_NAME" default:"Hestia"`
		Port     int    `envconfig:"PORT" default:"8080"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	}

	DB struct {
		Host            string        `envconfig:"DB_HOST" default:"localhost"`
		Port            int           `envconfig:"DB_PORT" default:"5432"`
		User            string        `envconfig:"DB_USER" default:"postgres"`
		Password        string        `envconfig:"DB_PASSWORD" default:""`
		Name            string        `envconfig:"DB_NAME" default:"hestia"`
		SSLMode         string        `envconfig:"DB_SSLMODE" default:"disable"`
		MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
		MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
		ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
		PingTimeout     time.Duration `envconfig:"DB_PING_TIMEOUT" default:"10s"`
		Migrate         bool          `envconfig:"DB_MIGRATE" default:"true"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	Features struct {
		Signup      bool   `envconfig:"SIGNUP_ENABLED" default:"false"`
		DefaultBang string `envconfig:"DEFAULT_BANG" default:"https://duckduckgo.com/?q="`
	}

	Finance struct {
		HistoryLimit int `envconfig:"HISTORY_LIMIT" default:"1000"`
	}

	TUI struct {
		Username string `envconfig:"TUI_USERNAME"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name, c.DB.SSLMode)
}

func (c *Config) Database() database.Options {
	return database.Options{
		ConnString:      c.ConnectionString(),
		MaxOpenConns:    c.DB.MaxOpenConns,
		MaxIdleConns:    c.DB.MaxIdleConns,
		ConnMaxLifetime: c.DB.ConnMaxLifetime,
		PingTimeout:     c.DB.PingTimeout,
	}
}

// Level maps LOG_LEVEL to a slog level. Unknown values mean info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
