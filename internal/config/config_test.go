package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func pointConfigFile(t *testing.T, content string) {
	t.Helper()

	// Blank out the override vars so the host environment cannot leak in;
	// getEnv treats empty as unset.
	for _, key := range []string{"PORT", "DB_PATH", "JWT_SECRET", "TOKEN_TTL_HOURS", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write config file: %v", err)
		}
	}
	t.Setenv("CONFIG_FILE", path)
}

func TestLoadDefaults(t *testing.T) {
	pointConfigFile(t, "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.TokenTTL != 72*time.Hour {
		t.Fatalf("expected 72h token ttl, got %s", cfg.TokenTTL)
	}
	if len(cfg.CORSOrigins) == 0 {
		t.Fatal("expected default cors origins")
	}
}

func TestLoadFromFile(t *testing.T) {
	pointConfigFile(t, `
port: "9001"
dbPath: /tmp/x.db
tokenTTLHours: 12
corsOrigins:
  - https://app.example.com
`)

	cfg := Load()
	if cfg.Port != "9001" {
		t.Fatalf("expected port from file, got %s", cfg.Port)
	}
	if cfg.DBPath != "/tmp/x.db" {
		t.Fatalf("expected dbPath from file, got %s", cfg.DBPath)
	}
	if cfg.TokenTTL != 12*time.Hour {
		t.Fatalf("expected 12h token ttl, got %s", cfg.TokenTTL)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "https://app.example.com" {
		t.Fatalf("expected cors origins from file, got %v", cfg.CORSOrigins)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	pointConfigFile(t, `port: "9001"`)
	t.Setenv("PORT", "7070")

	cfg := Load()
	if cfg.Port != "7070" {
		t.Fatalf("expected env to win, got %s", cfg.Port)
	}
}

func TestMalformedFileFallsBackToDefaults(t *testing.T) {
	pointConfigFile(t, "port: [not: valid")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected defaults for a malformed file, got %s", cfg.Port)
	}
}
