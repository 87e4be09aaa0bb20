package driverscfg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "driverset.yml")

	content := `
version: v1
environments:
  dev:
    active:
      sqlite:
        path: ./dev.db
    inactive:
      postgres: {}
  prod:
    active:
      postgres:
        dsn: postgres://app@db.internal/app
      sqlite:
        path: /var/lib/app/cache.db
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Version != "v1" {
		t.Errorf("Version = %q, want v1", cfg.Version)
	}
	dev, ok := cfg.Environment("dev")
	if !ok {
		t.Fatal("environment dev not found")
	}
	if _, ok := dev.Active["sqlite"]; !ok {
		t.Error("dev active group missing sqlite")
	}
	if dev.Active["sqlite"]["path"] != "./dev.db" {
		t.Errorf("sqlite path = %q, want ./dev.db", dev.Active["sqlite"]["path"])
	}
	if _, ok := dev.Inactive["postgres"]; !ok {
		t.Error("dev inactive group missing postgres")
	}
	prod, ok := cfg.Environment("prod")
	if !ok {
		t.Fatal("environment prod not found")
	}
	if len(prod.Active) != 2 {
		t.Errorf("prod active group has %d keys, want 2", len(prod.Active))
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("Load() on missing file succeeded, want error")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "driverset.yml")
	if err := os.WriteFile(path, []byte("environments: [not: a: map"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() on invalid YAML succeeded, want error")
	}
	if !strings.Contains(err.Error(), "unmarshal") {
		t.Errorf("error %q does not mention unmarshal", err)
	}
}

func TestEnvironment_Missing(t *testing.T) {
	cfg := &Root{}
	env, ok := cfg.Environment("nope")
	if ok {
		t.Error("Environment(nope) = found, want missing")
	}
	if len(env.Active) != 0 || len(env.Inactive) != 0 {
		t.Error("missing environment is not empty")
	}
}

func TestConfigPath_Precedence(t *testing.T) {
	t.Setenv(ConfigPathEnv, "/etc/driverset/env.yml")
	if got := ConfigPath("explicit.yml"); got != "explicit.yml" {
		t.Errorf("explicit path ignored, got %q", got)
	}
	if got := ConfigPath(""); got != "/etc/driverset/env.yml" {
		t.Errorf("env override ignored, got %q", got)
	}
	t.Setenv(ConfigPathEnv, "")
	if got := ConfigPath(""); got != DefaultConfigPath {
		t.Errorf("default path not used, got %q", got)
	}
}
