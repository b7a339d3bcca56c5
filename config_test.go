package main

import (
	"strings"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "LOG_LEVEL", "CONTENT_FILE", "DB_PATH", "TRACK_VISITORS", "VISITOR_RETENTION_DAYS", "ADMIN_TOKEN"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" || cfg.GinMode != "release" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Visitors.Enabled || cfg.Visitors.Retention != 365*24*time.Hour {
		t.Fatalf("unexpected visitor defaults: %+v", cfg.Visitors)
	}
	if !cfg.Admin.Generated || len(cfg.Admin.Token) != 64 {
		t.Fatalf("expected a generated admin token, got %+v", cfg.Admin)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TRACK_VISITORS", "false")
	t.Setenv("VISITOR_RETENTION_DAYS", "30")
	t.Setenv("ADMIN_TOKEN", "a-long-enough-admin-token")
	t.Setenv("DOCS_URL", "https://docs.example.com")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "9090" || cfg.Visitors.Enabled || cfg.Visitors.Retention != 30*24*time.Hour {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.Admin.Generated || cfg.Admin.Token != "a-long-enough-admin-token" {
		t.Fatalf("admin token not taken from env: %+v", cfg.Admin)
	}
	if cfg.Content.DocsURL != "https://docs.example.com" {
		t.Fatalf("DocsURL = %q", cfg.Content.DocsURL)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:     "8080",
			GinMode:  "release",
			Visitors: VisitorConfig{Enabled: true, DBPath: "x.db", Retention: time.Hour},
			Admin:    AdminConfig{Token: strings.Repeat("a", 16)},
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("Validate returned error for valid config: %v", err)
	}

	broken := []func(*Config){
		func(c *Config) { c.Port = "http" },
		func(c *Config) { c.GinMode = "verbose" },
		func(c *Config) { c.Visitors.DBPath = "" },
		func(c *Config) { c.Visitors.Retention = 0 },
		func(c *Config) { c.Admin.Token = "short" },
	}
	for i, mutate := range broken {
		cfg := valid()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("case %d: Validate expected error", i)
		}
	}
}
