package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/openlink/internal/config"
	"github.com/danmuck/openlink/internal/inspect"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadServiceConfigDefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `addr = "127.0.0.1:9500"
cors_origins = [" http://localhost:5173 ", ""]
`)

	cfg, err := loadServiceConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	defaults := inspect.DefaultServiceConfig()
	if cfg.ServiceID != defaults.ServiceID {
		t.Fatalf("unexpected id: %q", cfg.ServiceID)
	}
	if cfg.Addr != "127.0.0.1:9500" {
		t.Fatalf("unexpected addr: %q", cfg.Addr)
	}
	if len(cfg.CorsOrigins) != 1 || cfg.CorsOrigins[0] != "http://localhost:5173" {
		t.Fatalf("unexpected cors origins: %+v", cfg.CorsOrigins)
	}
	if cfg.Limits != defaults.Limits {
		t.Fatalf("unexpected limits: %+v", cfg.Limits)
	}
}

func TestLoadServiceConfigTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.WriteTemplate(path, "inspectd", false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	cfg, err := loadServiceConfig(path)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	if cfg.Addr != ":9400" || cfg.Limits.MaxStanzaBytes != 1048576 {
		t.Fatalf("unexpected template config: %+v", cfg)
	}
}

func TestLoadServiceConfigRejectsInvalid(t *testing.T) {
	path := writeConfig(t, "max_stanza_bytes = 0\n")
	if _, err := loadServiceConfig(path); !errors.Is(err, inspect.ErrInvalidLimits) {
		t.Fatalf("expected invalid limits, got %v", err)
	}

	path = writeConfig(t, "addr = \"\"\n")
	if _, err := loadServiceConfig(path); !errors.Is(err, inspect.ErrInvalidAddr) {
		t.Fatalf("expected invalid addr, got %v", err)
	}
}

func TestLoadServiceConfigMissingFile(t *testing.T) {
	_, err := loadServiceConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
