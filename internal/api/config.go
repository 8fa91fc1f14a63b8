package api

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds the remote backend connection settings.
type Config struct {
	// BaseURL is the root of the course backend, e.g. "https://api.example.com".
	BaseURL string

	// Token is the bearer token identifying the signed-in user. Obtained
	// out of band (the web app's auth flow); the client only carries it.
	Token string

	// Timeout is the maximum duration for a single API request.
	// Default: 15s.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timeout: 15 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("CRAMMER_API_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("CRAMMER_TOKEN"); t != "" {
		cfg.Token = t
	}
	if d := os.Getenv("CRAMMER_API_TIMEOUT"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil {
			cfg.Timeout = parsed
		}
	}

	return cfg
}

// Validate checks that the config can reach an authenticated backend.
// A missing token is a precondition failure: no session state may be
// fetched or written without one.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("CRAMMER_API_URL is required")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("CRAMMER_API_URL must be an http(s) URL, got %q", c.BaseURL)
	}
	if c.Token == "" {
		return fmt.Errorf("CRAMMER_TOKEN is required (sign in on the web app and copy your API token)")
	}
	return nil
}
