package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeIni(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.ini")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultsWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load("missing.ini")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":8080" || cfg.Limits.Burst != 10 || cfg.Catalog.Source != "embedded" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("shutdown = %v", cfg.Server.ShutdownTimeout)
	}
}

func TestIniAndEnv(t *testing.T) {
	chdir(t, t.TempDir())
	path := writeIni(t, `
[server]
addr = :9000
cors_origin = https://handbook.example
shutdown_timeout = 10s

[limits]
rate = 2.5
burst = 4

[catalog]
source = postgres

[log]
level = debug
`)
	t.Setenv("APP_ADDR", ":7000")
	t.Setenv("DATABASE_URL", "postgres://u:p@db/handbook")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":7000" {
		t.Errorf("addr = %s, want env override", cfg.Server.Addr)
	}
	if cfg.Server.CORSOrigin != "https://handbook.example" || cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Limits.Rate != 2.5 || cfg.Limits.Burst != 4 || cfg.LogLevel != "debug" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Catalog.Path != "postgres://u:p@db/handbook" {
		t.Errorf("catalog path = %q", cfg.Catalog.Path)
	}
}

func TestDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=error\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")

	cfg, err := Load("missing.ini")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("level = %s, want value from .env", cfg.LogLevel)
	}
}

func TestInvalidLimits(t *testing.T) {
	chdir(t, t.TempDir())
	path := writeIni(t, "[limits]\nrate = 0\n")
	if _, err := Load(path); err == nil {
		t.Error("want error for zero rate")
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
