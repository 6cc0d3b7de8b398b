package config

import (
	"errors"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Setenv("SPOTIFY_ID", "client-id")
	t.Setenv("SPOTIFY_SECRET", "client-secret")
	t.Setenv("SPOTIFY_REDIRECT_URI", "")
	t.Setenv("MOOD_TUNES_ADDR", "")
	t.Setenv("SPOTIFY_MARKET", "")
	t.Setenv("MOOD_TUNES_ENV", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ClientID != "client-id" {
		t.Errorf("ClientID = %q", cfg.ClientID)
	}
	if cfg.RedirectURI != DefaultRedirectURI {
		t.Errorf("RedirectURI = %q, want default", cfg.RedirectURI)
	}
	if cfg.Addr != DefaultAddr {
		t.Errorf("Addr = %q, want default", cfg.Addr)
	}
	if cfg.Market != DefaultMarket {
		t.Errorf("Market = %q, want default", cfg.Market)
	}
	if cfg.SecureCookies {
		t.Error("SecureCookies = true outside production")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SPOTIFY_ID", "client-id")
	t.Setenv("SPOTIFY_SECRET", "client-secret")
	t.Setenv("SPOTIFY_REDIRECT_URI", "https://example.com/api/auth/callback")
	t.Setenv("MOOD_TUNES_ADDR", ":9090")
	t.Setenv("SPOTIFY_MARKET", "SE")
	t.Setenv("MOOD_TUNES_ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.RedirectURI != "https://example.com/api/auth/callback" {
		t.Errorf("RedirectURI = %q", cfg.RedirectURI)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.Market != "SE" {
		t.Errorf("Market = %q", cfg.Market)
	}
	if !cfg.SecureCookies {
		t.Error("SecureCookies = false in production")
	}
}

func TestLoadMissingCredentials(t *testing.T) {
	t.Setenv("SPOTIFY_ID", "client-id")
	t.Setenv("SPOTIFY_SECRET", "")

	if _, err := Load(); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("Load() error = %v, want ErrMissingCredentials", err)
	}
}
