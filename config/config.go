// Package config provides configuration management for the lysate impact service.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// defaultCORSOrigins are always allowed for local development.
var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
}

// Config holds the complete application configuration.
type Config struct {
	Server ServerConfig
	Cache  CacheConfig
	Auth   AuthConfig
	Log    LogConfig
	Model  ModelConfig
	Export ExportConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	RateLimit      int           `env:"RATE_LIMIT" envDefault:"100"`
	RateWindow     time.Duration `env:"RATE_WINDOW" envDefault:"1m"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	CORSOrigins    []string      `env:"CORS_ORIGINS" envSeparator:","`
	SwaggerUser    string        `env:"SWAGGER_USER"`
	SwaggerPass    string        `env:"SWAGGER_PASS"`
}

// CacheConfig holds scenario cache configuration.
type CacheConfig struct {
	Size int           `env:"CACHE_SIZE" envDefault:"1000"`
	TTL  time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// AuthConfig holds API key authentication configuration.
type AuthConfig struct {
	Enabled    bool     `env:"AUTH_ENABLED" envDefault:"false"`
	APIKeyList []string `env:"API_KEYS" envSeparator:","`
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty bool   `env:"LOG_PRETTY" envDefault:"false"`
}

// ModelConfig selects the parameter set.
type ModelConfig struct {
	// ParametersFile is an optional YAML parameter set; empty means published defaults.
	ParametersFile string `env:"PARAMETERS_FILE"`
}

// ExportConfig holds tabular export configuration.
type ExportConfig struct {
	Dir string `env:"EXPORT_DIR" envDefault:"output"`
}

// Load creates a Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Server.CORSOrigins = mergeCORSOrigins(cfg.Server.CORSOrigins)
	return cfg, nil
}

// APIKeys returns the configured API keys as a lookup set.
func (a AuthConfig) APIKeys() map[string]bool {
	if len(a.APIKeyList) == 0 {
		return nil
	}
	result := make(map[string]bool, len(a.APIKeyList))
	for _, k := range a.APIKeyList {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func mergeCORSOrigins(extra []string) []string {
	result := make([]string, 0, len(extra)+len(defaultCORSOrigins))
	result = append(result, defaultCORSOrigins...)
	for _, p := range extra {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
