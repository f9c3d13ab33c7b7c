// Package config loads and validates process configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"time"
)

const (
	// EnvKeyJWTSecret is the environment variable holding the token signing secret.
	EnvKeyJWTSecret = "JWT_SECRET"

	// defaultTokenTTL is the validity window of an issued token.
	defaultTokenTTL = 24 * time.Hour

	// defaultPort is the HTTP listen port used when PORT is not set.
	defaultPort = "8080"
)

// ConfigError indicates a missing or invalid required configuration value.
// It is a startup-time fatal condition: the server must not accept connections
// while misconfigured.
type ConfigError struct {
	Key    string
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Key, e.Reason)
}

// Config holds all runtime configuration for the server.
type Config struct {
	Port      string        // HTTP listen port
	JWTSecret string        // HMAC secret for signing and verifying tokens
	TokenTTL  time.Duration // validity window of issued tokens
}

// Load reads configuration from the environment and validates required values.
// It returns a *ConfigError when JWT_SECRET is absent, so callers can refuse to
// start instead of failing lazily on the first request.
func Load() (*Config, error) {
	secret := os.Getenv(EnvKeyJWTSecret)
	if secret == "" {
		return nil, &ConfigError{Key: EnvKeyJWTSecret, Reason: "is not set"}
	}

	ttl := defaultTokenTTL
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil || parsed <= 0 {
			return nil, &ConfigError{Key: "TOKEN_TTL", Reason: "is not a valid positive duration"}
		}
		ttl = parsed
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	return &Config{
		Port:      port,
		JWTSecret: secret,
		TokenTTL:  ttl,
	}, nil
}
