package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Nojands/FinanzApp/config"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "finanz.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadFileDefaults(t *testing.T) {
	cfg, err := config.LoadFile("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Projection.DefaultMonths != 6 || cfg.Projection.DefaultPayday1 != 15 || cfg.Projection.DefaultPayday2 != 30 {
		t.Fatalf("unexpected projection defaults %+v", cfg.Projection)
	}
	if cfg.Database.DSN == "" {
		t.Fatalf("expected a DSN built from the database fields")
	}
}

func TestLoadFileMissingFileFallsBackToDefaults(t *testing.T) {
	if _, err := config.LoadFile(filepath.Join(t.TempDir(), "absent.toml")); err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
}

func TestLoadFileTomlThenEnv(t *testing.T) {
	path := writeFile(t, `
[app]
environment = "production"

[projection]
default_months = 12
default_payday_1 = 5
default_payday_2 = 20

[jwt]
lifetime = "2h"
`)
	t.Setenv("DEFAULT_PAYDAY_2", "25")
	t.Setenv("DATABASE_URL", "postgres://finanz@localhost/finanz")

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.IsProduction() {
		t.Fatalf("expected production environment")
	}
	if cfg.Projection.DefaultMonths != 12 || cfg.Projection.DefaultPayday1 != 5 {
		t.Fatalf("toml values not applied: %+v", cfg.Projection)
	}
	if cfg.Projection.DefaultPayday2 != 25 {
		t.Fatalf("environment should override the file, got %d", cfg.Projection.DefaultPayday2)
	}
	if cfg.Database.DSN != "postgres://finanz@localhost/finanz" {
		t.Fatalf("unexpected DSN %q", cfg.Database.DSN)
	}
	if cfg.JWT.Lifetime != 2*time.Hour {
		t.Fatalf("expected 2h lifetime, got %s", cfg.JWT.Lifetime)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"equal paydays", func(c *config.Config) { c.Projection.DefaultPayday2 = c.Projection.DefaultPayday1 }},
		{"payday out of range", func(c *config.Config) { c.Projection.DefaultPayday1 = 0 }},
		{"default months above max", func(c *config.Config) { c.Projection.DefaultMonths = c.Projection.MaxMonths + 1 }},
		{"alerts without smtp", func(c *config.Config) { c.Alerts.Enabled = true }},
	}

	for _, tt := range tests {
		cfg := config.Default()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected error", tt.name)
		}
	}
}
