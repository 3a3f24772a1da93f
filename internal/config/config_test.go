package config

import (
	"strings"
	"testing"
	"time"
)

func validBaseConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			Env:            "development",
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
			AllowedOrigins: []string{"http://localhost:3000"},
			StaticDir:      "./static",
		},
		RateLimit: RateLimitConfig{
			Limit:    100,
			Interval: time.Minute,
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	cfg := validBaseConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestConfig_Validate_InvalidServerEnv(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Env = "invalid"

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for invalid SERVER_ENV")
	}
	if !strings.Contains(err.Error(), "SERVER_ENV") {
		t.Errorf("expected error to mention SERVER_ENV, got: %v", err)
	}
}

func TestConfig_Validate_MissingPort(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Port = ""

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for missing SERVER_PORT")
	}
	if !strings.Contains(err.Error(), "SERVER_PORT") {
		t.Errorf("expected error to mention SERVER_PORT, got: %v", err)
	}
}

func TestConfig_Validate_EmptyAllowedOrigins(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.AllowedOrigins = []string{}

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for empty CORS_ALLOWED_ORIGINS")
	}
	if !strings.Contains(err.Error(), "CORS_ALLOWED_ORIGINS") {
		t.Errorf("expected error to mention CORS_ALLOWED_ORIGINS, got: %v", err)
	}
}

func TestConfig_Validate_NonPositiveRateLimit(t *testing.T) {
	cfg := validBaseConfig()
	cfg.RateLimit.Limit = 0

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for zero RATE_LIMIT")
	}
	if !strings.Contains(err.Error(), "RATE_LIMIT") {
		t.Errorf("expected error to mention RATE_LIMIT, got: %v", err)
	}
}

func TestConfig_Validate_CollectsAllErrors(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Port = ""
	cfg.Server.StaticDir = ""
	cfg.RateLimit.Interval = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected errors")
	}
	for _, want := range []string{"SERVER_PORT", "STATIC_DIR", "RATE_LIMIT_INTERVAL"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected combined error to mention %s, got: %v", want, err)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port == "" {
		t.Error("expected a default port")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("RATE_LIMIT", "5")
	t.Setenv("RATE_LIMIT_INTERVAL", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.RateLimit.Limit != 5 {
		t.Errorf("expected rate limit 5, got %d", cfg.RateLimit.Limit)
	}
	if cfg.RateLimit.Interval != 30*time.Second {
		t.Errorf("expected interval 30s, got %s", cfg.RateLimit.Interval)
	}
	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Errorf("expected 2 origins, got %v", cfg.Server.AllowedOrigins)
	}
}
