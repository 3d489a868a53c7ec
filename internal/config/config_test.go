package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"tabata_timer/internal/timer"
)

const validYAML = `
port: "9000"
db:
  path: "/var/lib/tabata/tabata.db"
log:
  level: "debug"
timer:
  work_time: 30
  rest_time: 15
  pair_rest_time: 45
  tick_interval: "250ms"
catalog:
  path: "configs/workouts.yml"
auth:
  pin_hash: "$2a$10$abcdefghijklmnopqrstuv"
  token_ttl: "2h"
cors:
  allowed_origins:
    - "http://phone.local:3000"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
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
	if cfg.Port != "9000" {
		t.Errorf("port = %q, want %q", cfg.Port, "9000")
	}
	if cfg.DB.Path != "/var/lib/tabata/tabata.db" {
		t.Errorf("db.path = %q", cfg.DB.Path)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", cfg.Log.Level)
	}
	want := timer.Config{WorkTime: 30, RestTime: 15, PairRestTime: 45}
	if got := cfg.Timer.Phases(); got != want {
		t.Errorf("timer = %+v, want %+v", got, want)
	}
	if cfg.Timer.TickInterval != 250*time.Millisecond {
		t.Errorf("timer.tick_interval = %v, want 250ms", cfg.Timer.TickInterval)
	}
	if cfg.Catalog.Path != "configs/workouts.yml" {
		t.Errorf("catalog.path = %q", cfg.Catalog.Path)
	}
	if cfg.Auth.TokenTTL != 2*time.Hour || cfg.Auth.PinHash == "" {
		t.Errorf("auth = %+v", cfg.Auth)
	}
	if !slices.Equal(cfg.CORS.AllowedOrigins, []string{"http://phone.local:3000"}) {
		t.Errorf("cors.allowed_origins = %v", cfg.CORS.AllowedOrigins)
	}
}

// TestEnvOverride verifies that TABATA_ env vars take precedence over YAML values.
func TestEnvOverride(t *testing.T) {
	t.Setenv("TABATA_PORT", "7000")
	t.Setenv("TABATA_TIMER_WORK_TIME", "40")
	t.Setenv("TABATA_AUTH_SIGNING_KEY", "env-secret")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "7000" {
		t.Errorf("port = %q, want 7000", cfg.Port)
	}
	if cfg.Timer.WorkTime != 40 {
		t.Errorf("timer.work_time = %d, want 40", cfg.Timer.WorkTime)
	}
	if cfg.Auth.SigningKey != "env-secret" {
		t.Errorf("auth.signing_key = %q", cfg.Auth.SigningKey)
	}
	// unchanged fields keep YAML values
	if cfg.Timer.RestTime != 15 {
		t.Errorf("timer.rest_time = %d, want 15", cfg.Timer.RestTime)
	}
}

// TestDefaultsWithoutFile verifies that the server starts with built-in
// defaults when no configs/config.yml is present.
func TestDefaultsWithoutFile(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.DB.Path != "data/tabata.db" || cfg.Log.Level != "info" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Timer.Phases() != timer.DefaultConfig || cfg.Timer.TickInterval != time.Second {
		t.Errorf("unexpected timer defaults: %+v", cfg.Timer)
	}
	if cfg.Auth.TokenTTL != 12*time.Hour || cfg.Auth.PinHash != "" {
		t.Errorf("unexpected auth defaults: %+v", cfg.Auth)
	}
}

func TestValidationErrors(t *testing.T) {
	cases := map[string]string{
		"zero work time":     "timer:\n  work_time: 0\n",
		"negative rest":      "timer:\n  rest_time: -1\n",
		"zero tick interval": "timer:\n  tick_interval: \"0s\"\n",
		"blank port":         "port: \" \"\n",
		"zero token ttl":     "auth:\n  token_ttl: \"0s\"\n",
	}
	for name, yaml := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeTemp(t, yaml)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

// TestLoadMissingFile verifies that an explicit but missing config file is an error.
func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
