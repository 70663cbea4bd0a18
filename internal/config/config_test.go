package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("PROJECTID", "timebank-test")
	t.Setenv("LISTENADDR", "")
	t.Setenv("STATEPATH", "")
	t.Setenv("CONFIGFILE", "")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if cfg.ProjectID != "timebank-test" {
		t.Fatalf("ProjectID = %q, want timebank-test", cfg.ProjectID)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("ListenAddr = %q, want :8080", cfg.ListenAddr)
	}
	if cfg.StatePath != "timebank-state.db" {
		t.Fatalf("StatePath = %q, want timebank-state.db", cfg.StatePath)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Fatalf("RequestTimeout = %v, want 15s", cfg.RequestTimeout)
	}
}

func TestNewTOMLOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
listen_addr = ":9090"
request_timeout_seconds = 30
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	t.Setenv("LISTENADDR", ":8080")
	t.Setenv("CONFIGFILE", path)

	cfg, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if cfg.ListenAddr != ":9090" {
		t.Fatalf("ListenAddr = %q, want TOML override :9090", cfg.ListenAddr)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("RequestTimeout = %v, want 30s", cfg.RequestTimeout)
	}
}

func TestNewBadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	t.Setenv("CONFIGFILE", path)

	if _, err := New(); err == nil {
		t.Fatalf("expected error for malformed config file")
	}
}
