// Package config loads mood-tunes configuration from environment variables.
package config

import (
	"errors"
	"os"
)

// Defaults for optional settings.
const (
	DefaultAddr        = "127.0.0.1:8080"
	DefaultRedirectURI = "http://127.0.0.1:8080/api/auth/callback"
	DefaultMarket      = "US"
)

// ErrMissingCredentials is returned when SPOTIFY_ID or SPOTIFY_SECRET is not set.
var ErrMissingCredentials = errors.New("missing SPOTIFY_ID or SPOTIFY_SECRET environment variable")

// Config holds the server configuration. ClientSecret is confidential and
// must never be logged.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Addr         string
	Market       string

	// SecureCookies marks auth cookies Secure; enable behind TLS.
	SecureCookies bool
}

// Load reads configuration from the environment.
// Returns ErrMissingCredentials if the Spotify credentials are not set.
func Load() (*Config, error) {
	cfg := &Config{
		ClientID:      os.Getenv("SPOTIFY_ID"),
		ClientSecret:  os.Getenv("SPOTIFY_SECRET"),
		RedirectURI:   envOr("SPOTIFY_REDIRECT_URI", DefaultRedirectURI),
		Addr:          envOr("MOOD_TUNES_ADDR", DefaultAddr),
		Market:        envOr("SPOTIFY_MARKET", DefaultMarket),
		SecureCookies: os.Getenv("MOOD_TUNES_ENV") == "production",
	}

	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, ErrMissingCredentials
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
