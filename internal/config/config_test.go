package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.App.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %s, want :8080", cfg.App.ListenAddr)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %s, want 24h", cfg.Auth.TokenTTL)
	}
	if cfg.Database.DSN != "" {
		t.Errorf("DSN = %q, want empty (memory store)", cfg.Database.DSN)
	}
	if len(cfg.App.CORSOrigins) != 1 || cfg.App.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("CORSOrigins = %v, want [http://localhost:3000]", cfg.App.CORSOrigins)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("EXPLORER_LISTEN_ADDR", ":9090")
	t.Setenv("EXPLORER_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("EXPLORER_TOKEN_TTL", "1h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.App.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %s, want :9090", cfg.App.ListenAddr)
	}
	if cfg.Auth.TokenTTL != time.Hour {
		t.Errorf("TokenTTL = %s, want 1h", cfg.Auth.TokenTTL)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.App.CORSOrigins) != 2 || cfg.App.CORSOrigins[0] != want[0] || cfg.App.CORSOrigins[1] != want[1] {
		t.Errorf("CORSOrigins = %v, want %v", cfg.App.CORSOrigins, want)
	}
}

func TestLoadRejectsBadTTL(t *testing.T) {
	t.Setenv("EXPLORER_TOKEN_TTL", "not-a-duration")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed token_ttl")
	}
}
