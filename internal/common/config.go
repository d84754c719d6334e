// Package common provides shared utilities for Protosnap
package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Protosnap
type Config struct {
	Environment string        `toml:"environment" validate:"oneof=development test production"`
	Server      ServerConfig  `toml:"server"`
	Auth        AuthConfig    `toml:"auth"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port" validate:"min=1,max=65535"`
}

// AuthConfig holds the identity-provider settings: the tenant served, the
// signing secret and the credential lifetimes as duration strings.
type AuthConfig struct {
	TenantID        string `toml:"tenant_id" validate:"required,uuid4"`
	JWTSecret       string `toml:"jwt_secret" validate:"required,min=16"`
	BaseURL         string `toml:"base_url" validate:"required,url"`
	DefaultClientID string `toml:"default_client_id" validate:"required"`
	DefaultScope    string `toml:"default_scope" validate:"required"`
	CodeLifetime    string `toml:"code_lifetime"`
	TokenLifetime   string `toml:"token_lifetime"`
	RefreshLifetime string `toml:"refresh_lifetime"`
}

// GetCodeLifetime parses and returns the authorization code lifetime.
func (c *AuthConfig) GetCodeLifetime() time.Duration {
	d, err := time.ParseDuration(c.CodeLifetime)
	if err != nil {
		return 5 * time.Minute
	}
	return d
}

// GetTokenLifetime parses and returns the access token lifetime.
func (c *AuthConfig) GetTokenLifetime() time.Duration {
	d, err := time.ParseDuration(c.TokenLifetime)
	if err != nil {
		return time.Hour
	}
	return d
}

// GetRefreshLifetime parses and returns the refresh token lifetime.
func (c *AuthConfig) GetRefreshLifetime() time.Duration {
	d, err := time.ParseDuration(c.RefreshLifetime)
	if err != nil {
		return 90 * 24 * time.Hour
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Auth: AuthConfig{
			TenantID:        "9d3c2f4e-6a1b-4c8e-9f2a-1b7d5e3c8a90",
			JWTSecret:       "dev-jwt-secret-change-in-production",
			BaseURL:         "http://localhost:8080",
			DefaultClientID: "swagger-editor",
			DefaultScope:    "openid profile protocol.read",
			CodeLifetime:    "5m",
			TokenLifetime:   "1h",
			RefreshLifetime: "2160h",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Missing files are skipped; later files override earlier ones.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("PROTOSNAP_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("PROTOSNAP_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("PROTOSNAP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("PROTOSNAP_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if v := os.Getenv("PROTOSNAP_TENANT_ID"); v != "" {
		config.Auth.TenantID = v
	}
	if v := os.Getenv("PROTOSNAP_JWT_SECRET"); v != "" {
		config.Auth.JWTSecret = v
	}
	if v := os.Getenv("PROTOSNAP_BASE_URL"); v != "" {
		config.Auth.BaseURL = v
	}
	if v := os.Getenv("PROTOSNAP_DEFAULT_CLIENT_ID"); v != "" {
		config.Auth.DefaultClientID = v
	}
	if v := os.Getenv("PROTOSNAP_DEFAULT_SCOPE"); v != "" {
		config.Auth.DefaultScope = v
	}
	if v := os.Getenv("PROTOSNAP_CODE_LIFETIME"); v != "" {
		config.Auth.CodeLifetime = v
	}
	if v := os.Getenv("PROTOSNAP_TOKEN_LIFETIME"); v != "" {
		config.Auth.TokenLifetime = v
	}
	if v := os.Getenv("PROTOSNAP_REFRESH_LIFETIME"); v != "" {
		config.Auth.RefreshLifetime = v
	}
}
