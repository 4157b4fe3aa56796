package config

import (
	"net/url"
	"strconv"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("SCOUT9_API_URL", "")
	t.Setenv("SCOUT9_API_TIMEOUT", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8080" {
		t.Errorf("APIBaseURL = %q, want http://localhost:8080", cfg.APIBaseURL)
	}
	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	u, err := url.Parse(cfg.APIBaseURL)
	if err != nil {
		t.Fatalf("APIBaseURL %q: %v", cfg.APIBaseURL, err)
	}
	if u.Port() == strconv.Itoa(cfg.Port) {
		t.Errorf("portal port %d collides with backend %s", cfg.Port, cfg.APIBaseURL)
	}
	if cfg.APITimeout != 5*time.Minute {
		t.Errorf("APITimeout = %s, want 5m", cfg.APITimeout)
	}
	if cfg.DefaultMatchCount != 10 {
		t.Errorf("DefaultMatchCount = %d, want 10", cfg.DefaultMatchCount)
	}
	if cfg.GenerateWorkers != 4 || cfg.GenerateQueueSize != 32 {
		t.Errorf("generate pool = %d/%d, want 4/32", cfg.GenerateWorkers, cfg.GenerateQueueSize)
	}
}

func TestLoad_ProductionRequiresAPIURL(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("SCOUT9_API_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing SCOUT9_API_URL in production")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("SCOUT9_API_URL", "https://scout.example.com/")
	t.Setenv("SCOUT9_API_TIMEOUT", "30s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
	t.Setenv("PORT", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIBaseURL != "https://scout.example.com" {
		t.Errorf("APIBaseURL = %q, trailing slash should be trimmed", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 30*time.Second {
		t.Errorf("APITimeout = %s, want 30s", cfg.APITimeout)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Errorf("AllowedOrigins = %v, want 2 entries", cfg.AllowedOrigins)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d, invalid value should fall back to %d", cfg.Port, DefaultPort)
	}
}

func TestLoad_RejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("SCOUT9_API_TIMEOUT", "-1s")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative timeout")
	}
}
