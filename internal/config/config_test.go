package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testConfigYAML = `
app:
  port: 9090
  gin_mode: test

database:
  dsn: "file::memory:"

redis:
  addr: "localhost:6380"
  password: "secret"
  db: 2

tokens:
  secret: "test-secret"
  issuer: "accountsvc-test"
  ttl: "30m"

password:
  min_length: 10
  require_digit: true

events:
  stream: "test-events"
`

func writeTestConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeTestConfig(t, testConfigYAML))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.RedisAddr != "localhost:6380" || cfg.RedisDB != 2 {
		t.Errorf("unexpected redis config: %q db=%d", cfg.RedisAddr, cfg.RedisDB)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Errorf("expected 30m token TTL, got %v", cfg.TokenTTL)
	}
	if cfg.PasswordMinLength != 10 || !cfg.PasswordRequireDigit {
		t.Errorf("unexpected password policy: %d digit=%v", cfg.PasswordMinLength, cfg.PasswordRequireDigit)
	}
	if cfg.EventStream != "test-events" {
		t.Errorf("unexpected event stream %q", cfg.EventStream)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeTestConfig(t, testConfigYAML))
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_DSN", "host=db")
	t.Setenv("TOKEN_SECRET", "env-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Port != "8081" {
		t.Errorf("expected env port override, got %q", cfg.Port)
	}
	if cfg.DSN != "host=db" {
		t.Errorf("expected env dsn override, got %q", cfg.DSN)
	}
	if cfg.TokenSecret != "env-secret" {
		t.Errorf("expected env secret override, got %q", cfg.TokenSecret)
	}
}

func TestLoad_InvalidTTL(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeTestConfig(t, `
tokens:
  ttl: "not-a-duration"
`))

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an invalid TTL")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
