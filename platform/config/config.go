// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// AmadeusConfig provides settings for the Amadeus flight-offer API.
type AmadeusConfig interface {
	GetAmadeusBaseURL() string
	GetAmadeusClientID() string
	GetAmadeusClientSecret() string
	GetAmadeusTimeout() time.Duration
	// GetAmadeusTokenTTL returns how long a fetched access token may be
	// reused. Zero disables caching: a fresh token per search.
	GetAmadeusTokenTTL() time.Duration
}

// OllamaConfig provides settings for the local text-completion service.
type OllamaConfig interface {
	GetOllamaURL() string
	GetOllamaModel() string
	GetOllamaTimeout() time.Duration
	IsOllamaEnabled() bool
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                 string
	HTTPAddr            string
	CORSAllowAll        bool
	CORSOrigins         []string
	CORSAllowCreds      bool
	AmadeusBaseURL      string
	AmadeusClientID     string
	AmadeusClientSecret string
	AmadeusTimeout      time.Duration
	AmadeusTokenTTL     time.Duration
	OllamaURL           string
	OllamaModel         string
	OllamaTimeout       time.Duration
}

// =============================================================================
// Interface Implementations
// =============================================================================

// AmadeusConfig implementation
func (c *Config) GetAmadeusBaseURL() string         { return c.AmadeusBaseURL }
func (c *Config) GetAmadeusClientID() string        { return c.AmadeusClientID }
func (c *Config) GetAmadeusClientSecret() string    { return c.AmadeusClientSecret }
func (c *Config) GetAmadeusTimeout() time.Duration  { return c.AmadeusTimeout }
func (c *Config) GetAmadeusTokenTTL() time.Duration { return c.AmadeusTokenTTL }

// OllamaConfig implementation
func (c *Config) GetOllamaURL() string            { return c.OllamaURL }
func (c *Config) GetOllamaModel() string          { return c.OllamaModel }
func (c *Config) GetOllamaTimeout() time.Duration { return c.OllamaTimeout }
func (c *Config) IsOllamaEnabled() bool           { return c.OllamaURL != "" }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// Load reads configuration from environment variables.
//
// Missing Amadeus credentials are deliberately not rejected here: the
// credential provider reports a configuration error at call time, so the
// server can still start and serve health checks without them.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                 getEnv("APP_ENV", "development"),
		HTTPAddr:            getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:        corsAllowAll,
		CORSOrigins:         corsOrigins,
		CORSAllowCreds:      strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		AmadeusBaseURL:      getEnv("AMADEUS_BASE_URL", "https://test.api.amadeus.com"),
		AmadeusClientID:     getEnv("AMADEUS_CLIENT_ID", ""),
		AmadeusClientSecret: getEnv("AMADEUS_CLIENT_SECRET", ""),
		AmadeusTimeout:      mustDuration(getEnv("AMADEUS_TIMEOUT", "30s")),
		AmadeusTokenTTL:     mustDuration(getEnv("AMADEUS_TOKEN_TTL", "0s")),
		OllamaURL:           getEnv("OLLAMA_URL", "http://localhost:11434/api/generate"),
		OllamaModel:         getEnv("OLLAMA_MODEL", "llama3.1:8b"),
		OllamaTimeout:       mustDuration(getEnv("OLLAMA_TIMEOUT", "120s")),
	}

	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		cfg.CORSAllowCreds = false
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
