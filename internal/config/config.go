// Package config loads and validates server configuration from config
// files and SNPIFY_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/snpify/snpify-server/internal/domain"
)

// Config is the complete server configuration.
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Logging     LoggingConfig   `mapstructure:"logging"`
	Analysis    AnalysisConfig  `mapstructure:"analysis"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
	History     HistoryConfig   `mapstructure:"history"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// AnalysisConfig holds analysis pipeline settings.
type AnalysisConfig struct {
	DefaultAlgorithm string `mapstructure:"default_algorithm"`
	MaxFileSize      int64  `mapstructure:"max_file_size"`
	ResultCacheSize  int    `mapstructure:"result_cache_size"`
	Workers          int    `mapstructure:"workers"`
}

// RateLimitConfig holds per-client request throttling settings.
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// HistoryConfig holds settings for the optional analysis history store.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Manager loads and holds the server configuration.
type Manager struct {
	v      *viper.Viper
	config *Config
}

// NewManager creates a configuration manager and loads configuration from
// the config file (if present), environment variables and defaults.
func NewManager() (*Manager, error) {
	m := &Manager{v: viper.New()}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

func (m *Manager) loadConfig() error {
	m.v.SetConfigName("config")
	m.v.SetConfigType("yaml")
	m.v.AddConfigPath(".")
	m.v.AddConfigPath("./config")
	m.v.AddConfigPath("/etc/snpify/")

	m.v.SetEnvPrefix("SNPIFY")
	m.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	m.v.AutomaticEnv()

	m.setDefaults()

	// Config file is optional; defaults and environment variables suffice.
	if err := m.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := m.v.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) setDefaults() {
	m.v.SetDefault("environment", "development")

	m.v.SetDefault("server.host", "0.0.0.0")
	m.v.SetDefault("server.port", 8080)
	m.v.SetDefault("server.read_timeout", "30s")
	m.v.SetDefault("server.write_timeout", "30s")
	m.v.SetDefault("server.idle_timeout", "120s")
	m.v.SetDefault("server.shutdown_timeout", "15s")
	m.v.SetDefault("server.allowed_origins", []string{"*"})

	m.v.SetDefault("logging.level", "info")
	m.v.SetDefault("logging.format", "json")
	m.v.SetDefault("logging.output", "stdout")

	m.v.SetDefault("analysis.default_algorithm", string(domain.BoyerMoore))
	m.v.SetDefault("analysis.max_file_size", 10*1024*1024)
	m.v.SetDefault("analysis.result_cache_size", 1024)
	m.v.SetDefault("analysis.workers", 4)

	m.v.SetDefault("rate_limit.enabled", true)
	m.v.SetDefault("rate_limit.requests_per_second", 10.0)
	m.v.SetDefault("rate_limit.burst", 20)

	m.v.SetDefault("history.enabled", false)
	m.v.SetDefault("history.path", "snpify_history.db")
}

// GetConfig returns the complete configuration.
func (m *Manager) GetConfig() *Config {
	return m.config
}

// Reload reloads the configuration from all sources.
func (m *Manager) Reload() error {
	return m.loadConfig()
}

// Validate checks the loaded configuration for values the server cannot
// start with.
func (m *Manager) Validate() error {
	config := m.config

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if !domain.Algorithm(config.Analysis.DefaultAlgorithm).IsValid() {
		return fmt.Errorf("invalid default algorithm: %s", config.Analysis.DefaultAlgorithm)
	}
	if config.Analysis.MaxFileSize <= 0 {
		return fmt.Errorf("invalid max file size: %d", config.Analysis.MaxFileSize)
	}
	if config.Analysis.ResultCacheSize <= 0 {
		return fmt.Errorf("invalid result cache size: %d", config.Analysis.ResultCacheSize)
	}
	if config.Analysis.Workers <= 0 {
		return fmt.Errorf("invalid worker count: %d", config.Analysis.Workers)
	}

	if config.RateLimit.Enabled {
		if config.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("invalid rate limit: %f", config.RateLimit.RequestsPerSecond)
		}
		if config.RateLimit.Burst <= 0 {
			return fmt.Errorf("invalid rate limit burst: %d", config.RateLimit.Burst)
		}
	}

	if config.History.Enabled && config.History.Path == "" {
		return fmt.Errorf("history store enabled but no path configured")
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	return nil
}

// IsProduction returns true if running in production mode.
func (m *Manager) IsProduction() bool {
	return strings.ToLower(m.config.Environment) == "production"
}

// IsDevelopment returns true if running in development mode.
func (m *Manager) IsDevelopment() bool {
	env := strings.ToLower(m.config.Environment)
	return env == "development" || env == "dev" || env == ""
}
