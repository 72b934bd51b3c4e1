package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	yaml := `
generation:
  count: 250
  seed: 12345
  min_age: 21
  max_age: 70
catalog:
  path: data/catalog.yaml
output:
  xlsx_path: out/AIUserData.xlsx
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Generation.Count != 250 {
		t.Errorf("Generation.Count = %d, want 250", cfg.Generation.Count)
	}
	if cfg.Generation.Seed != 12345 {
		t.Errorf("Generation.Seed = %d, want 12345", cfg.Generation.Seed)
	}
	if cfg.Catalog.Path != "data/catalog.yaml" {
		t.Errorf("Catalog.Path = %q, want data/catalog.yaml", cfg.Catalog.Path)
	}
	if cfg.Output.XLSXPath != "out/AIUserData.xlsx" {
		t.Errorf("Output.XLSXPath = %q, want out/AIUserData.xlsx", cfg.Output.XLSXPath)
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "secret123")

	yaml := `
output:
  postgres:
    enabled: true
    host: localhost
    name: personas
    user: testuser
    password: ${TEST_DB_PASSWORD}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Output.Postgres.Password != "secret123" {
		t.Errorf("Output.Postgres.Password = %q, want secret123", cfg.Output.Postgres.Password)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	path := writeTempFile(t, "generation:\n  count: 5\n")

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.Generation.Count != 5 {
		t.Errorf("Generation.Count = %d, want 5", cfg.Generation.Count)
	}
	if cfg.Generation.MinAge != DefaultMinAge {
		t.Errorf("Generation.MinAge = %d, want %d", cfg.Generation.MinAge, DefaultMinAge)
	}
	if cfg.Generation.MaxAge != DefaultMaxAge {
		t.Errorf("Generation.MaxAge = %d, want %d", cfg.Generation.MaxAge, DefaultMaxAge)
	}
	if cfg.Generation.HandleAttempts != DefaultHandleAttempts {
		t.Errorf("Generation.HandleAttempts = %d, want %d", cfg.Generation.HandleAttempts, DefaultHandleAttempts)
	}
	if cfg.Output.XLSXPath != DefaultXLSXPath {
		t.Errorf("Output.XLSXPath = %q, want %q", cfg.Output.XLSXPath, DefaultXLSXPath)
	}
	if cfg.Output.Postgres.Port != DefaultDBPort {
		t.Errorf("Output.Postgres.Port = %d, want %d", cfg.Output.Postgres.Port, DefaultDBPort)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config does not validate: %v", err)
	}
	if cfg.Generation.Count != DefaultCount {
		t.Errorf("Generation.Count = %d, want %d", cfg.Generation.Count, DefaultCount)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative_count", func(c *Config) { c.Generation.Count = -1 }},
		{"negative_min_age", func(c *Config) { c.Generation.MinAge = -1 }},
		{"inverted_ages", func(c *Config) { c.Generation.MinAge = 70; c.Generation.MaxAge = 20 }},
		{"negative_attempts", func(c *Config) { c.Generation.HandleAttempts = -5 }},
		{"no_output", func(c *Config) { c.Output.XLSXPath = "" }},
		{"pg_missing_host", func(c *Config) { c.Output.Postgres.Enabled = true }},
		{"pg_missing_user", func(c *Config) {
			c.Output.Postgres.Enabled = true
			c.Output.Postgres.Host = "localhost"
			c.Output.Postgres.Name = "personas"
		}},
		{"pg_conns_inverted", func(c *Config) {
			c.Output.Postgres.Enabled = true
			c.Output.Postgres.Host = "localhost"
			c.Output.Postgres.Name = "personas"
			c.Output.Postgres.User = "u"
			c.Output.Postgres.MinConns = 10
			c.Output.Postgres.MaxConns = 2
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate succeeded, want error")
			}
		})
	}
}

func TestLoadAndValidate_BadFile(t *testing.T) {
	if _, err := LoadAndValidate(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadAndValidate of missing file succeeded, want error")
	}

	path := writeTempFile(t, "generation:\n  count: -3\n")
	if _, err := LoadAndValidate(path); err == nil {
		t.Error("LoadAndValidate of invalid config succeeded, want error")
	}
}
