// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
	App     AppConfig
	Stats   StatsConfig
	Remote  RemoteConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`

	// UseMockData selects the local synthetic pricing engine over the
	// remote pricing backend.
	UseMockData bool `env:"USE_MOCK_DATA" envDefault:"true"`
}

// StatsConfig holds usage statistics storage settings.
type StatsConfig struct {
	// Store selects the statistics backend: "sqlite" or "memory".
	Store string `env:"STATS_STORE" envDefault:"sqlite"`

	// DBPath is the SQLite database file. Only used with the sqlite store.
	DBPath string `env:"STATS_DB_PATH" envDefault:"flight-stats.db"`

	// MaxPriceRecords caps retained price records; oldest are evicted.
	MaxPriceRecords int `env:"STATS_MAX_PRICE_RECORDS" envDefault:"1000"`
}

// UseMemoryStore reports whether the in-memory statistics backend is
// selected.
func (s StatsConfig) UseMemoryStore() bool {
	return s.Store == "memory"
}

// RemoteConfig holds remote pricing backend settings. Only used when
// mock data is disabled.
type RemoteConfig struct {
	BaseURL string        `env:"REMOTE_API_BASE_URL" envDefault:""`
	Timeout time.Duration `env:"REMOTE_API_TIMEOUT" envDefault:"5s"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if cfg.Stats.MaxPriceRecords < 1 {
		return fmt.Errorf("STATS_MAX_PRICE_RECORDS must be positive, got %d", cfg.Stats.MaxPriceRecords)
	}

	validStores := map[string]bool{"sqlite": true, "memory": true}
	if !validStores[cfg.Stats.Store] {
		return fmt.Errorf("STATS_STORE must be one of: sqlite, memory; got %q", cfg.Stats.Store)
	}
	if cfg.Stats.Store == "sqlite" && cfg.Stats.DBPath == "" {
		return fmt.Errorf("STATS_DB_PATH is required when STATS_STORE is sqlite")
	}

	if !cfg.App.UseMockData {
		if cfg.Remote.BaseURL == "" {
			return fmt.Errorf("REMOTE_API_BASE_URL is required when USE_MOCK_DATA is false")
		}
		if cfg.Remote.Timeout <= 0 {
			return fmt.Errorf("REMOTE_API_TIMEOUT must be positive")
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
