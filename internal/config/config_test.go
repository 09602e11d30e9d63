package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
server:
  host: "0.0.0.0"
  port: 8080
database:
  host: "localhost"
  port: 5432
  name: "splitbalance"
  user: "splitbalance"
  password: "secret"
  sslmode: "disable"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Name != "splitbalance" {
		t.Errorf("database.name = %q, want %q", cfg.Database.Name, "splitbalance")
	}
	if cfg.Tailscale.Enabled {
		t.Error("tailscale should default to disabled")
	}
}

// TestEnvOverride verifies that SPLITBALANCE_ env vars take precedence over
// YAML values, so deployments can override config via environment.
func TestEnvOverride(t *testing.T) {
	t.Setenv("SPLITBALANCE_DB_HOST", "override-host")
	t.Setenv("SPLITBALANCE_DB_PORT", "9999")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Host != "override-host" {
		t.Errorf("database.host = %q, want %q", cfg.Database.Host, "override-host")
	}
	if cfg.Database.Port != 9999 {
		t.Errorf("database.port = %d, want 9999", cfg.Database.Port)
	}
	if cfg.Database.User != "splitbalance" {
		t.Errorf("database.user = %q, want YAML value preserved", cfg.Database.User)
	}
}

// TestValidation verifies that required fields are enforced.
func TestValidation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"missing server port", `
database:
  host: "localhost"
  port: 5432
  name: "sb"
  user: "sb"
`},
		{"missing database host", `
server:
  port: 8080
database:
  port: 5432
  name: "sb"
  user: "sb"
`},
		{"tailscale enabled without hostname", validYAML + `
tailscale:
  enabled: true
`},
	}
	for _, tc := range cases {
		if _, err := Load(writeTemp(t, tc.yaml)); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

// TestDSN verifies the connection string format and the sslmode default.
func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, Name: "sb", User: "u", Password: "p"}
	want := "postgres://u:p@db:5432/sb?sslmode=disable"
	if got := d.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
