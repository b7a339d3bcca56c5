package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	Logging  LoggingConfig
	Content  ContentConfig
	Visitors VisitorConfig
	Admin    AdminConfig
}

type LoggingConfig struct {
	Level string
	File  string
}

type ContentConfig struct {
	File      string
	SiteTitle string
	DocsURL   string
	BlogURL   string
}

type VisitorConfig struct {
	Enabled   bool
	DBPath    string
	Retention time.Duration
}

type AdminConfig struct {
	Token string
	// Generated is set when no token was configured and a random one was issued.
	Generated bool
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "release"),
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
		Content: ContentConfig{
			File:      getEnv("CONTENT_FILE", ""),
			SiteTitle: getEnv("SITE_TITLE", ""),
			DocsURL:   getEnv("DOCS_URL", ""),
			BlogURL:   getEnv("BLOG_URL", ""),
		},
		Visitors: VisitorConfig{
			Enabled:   getEnvBool("TRACK_VISITORS", true),
			DBPath:    getEnv("DB_PATH", "data/visitors.db"),
			Retention: time.Duration(getEnvInt("VISITOR_RETENTION_DAYS", 365)) * 24 * time.Hour,
		},
		Admin: AdminConfig{
			Token: getEnv("ADMIN_TOKEN", ""),
		},
	}

	if cfg.Admin.Token == "" {
		token, err := generateToken()
		if err != nil {
			return nil, fmt.Errorf("failed to generate admin token: %w", err)
		}
		cfg.Admin.Token = token
		cfg.Admin.Generated = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}
	if c.Visitors.Enabled && c.Visitors.DBPath == "" {
		return fmt.Errorf("DB_PATH is required when TRACK_VISITORS is enabled")
	}
	if c.Visitors.Retention <= 0 {
		return fmt.Errorf("VISITOR_RETENTION_DAYS must be positive")
	}
	if len(c.Admin.Token) < 16 {
		return fmt.Errorf("ADMIN_TOKEN must be at least 16 characters")
	}
	return nil
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
