package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != AppEnvDev {
		t.Fatalf("expected App.Env default to be development, got %q", cfg.App.Env)
	}
	if !cfg.App.IsDev() {
		t.Fatalf("expected IsDev() for default env")
	}
	if cfg.BakeryAPI.BaseURL != "http://localhost:8000/api" {
		t.Fatalf("unexpected bakery API default URL: %q", cfg.BakeryAPI.BaseURL)
	}
	if cfg.Cart.SessionCookieName != "nb_cart_session" {
		t.Fatalf("unexpected session cookie name: %q", cfg.Cart.SessionCookieName)
	}
	if cfg.Cart.SessionTTL != 720*time.Hour {
		t.Fatalf("unexpected session TTL: %v", cfg.Cart.SessionTTL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvBakeryAPIURL, "https://api.nataliebakery.com/api")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsProd() {
		t.Fatalf("expected IsProd() after override, env=%q", cfg.App.Env)
	}
	if cfg.App.Port != "9090" {
		t.Fatalf("unexpected port %q", cfg.App.Port)
	}
	if cfg.BakeryAPI.BaseURL != "https://api.nataliebakery.com/api" {
		t.Fatalf("unexpected bakery API URL %q", cfg.BakeryAPI.BaseURL)
	}
	if cfg.Redis.URL != "redis://localhost:6379/1" {
		t.Fatalf("unexpected redis URL %q", cfg.Redis.URL)
	}
}
