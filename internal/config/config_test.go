package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CANTIERI_DATA_DIR", dir)
	t.Setenv("CANTIERI_DB_PATH", "")
	t.Setenv("CANTIERI_REPORTS_DIR", filepath.Join(dir, "reports"))
	t.Setenv("CANTIERI_SESSION_ONLY", "true")
	t.Setenv("CANTIERI_SEED_DEMO", "false")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != dir {
		t.Fatalf("DataDir = %q", cfg.DataDir)
	}
	if cfg.DatabasePath != filepath.Join(dir, DBFileName) {
		t.Fatalf("DatabasePath = %q", cfg.DatabasePath)
	}
	if !cfg.SessionOnly || cfg.SeedDemo {
		t.Fatalf("expected bool env overrides, got %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

func TestLoadYAMLOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CANTIERI_DATA_DIR", dir)
	path := filepath.Join(dir, "config.yaml")
	body := "theme: dracula\ndb_timeout: 2s\nreports_dir: " + filepath.Join(dir, "out") + "\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != "dracula" {
		t.Fatalf("Theme = %q", cfg.Theme)
	}
	if cfg.DBTimeout != 2*time.Second {
		t.Fatalf("DBTimeout = %s", cfg.DBTimeout)
	}
	if cfg.ReportsDir != filepath.Join(dir, "out") {
		t.Fatalf("ReportsDir = %q", cfg.ReportsDir)
	}
}

func TestLoadYAMLDataDirMovesFiles(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CANTIERI_DATA_DIR", filepath.Join(dir, "env"))
	t.Setenv("CANTIERI_DB_PATH", "")
	t.Setenv("CANTIERI_LOG_PATH", "")
	data := filepath.Join(dir, "yaml")
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("data_dir: "+data+"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != data {
		t.Fatalf("DataDir = %q", cfg.DataDir)
	}
	if cfg.DatabasePath != filepath.Join(data, DBFileName) {
		t.Fatalf("DatabasePath = %q", cfg.DatabasePath)
	}
	if cfg.LogPath != filepath.Join(data, LogFileName) {
		t.Fatalf("LogPath = %q", cfg.LogPath)
	}
}

func TestLoadExplicitPathsWin(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CANTIERI_DB_PATH", filepath.Join(dir, "altro.db"))
	t.Setenv("CANTIERI_LOG_PATH", "")
	path := filepath.Join(dir, "config.yaml")
	body := "data_dir: " + filepath.Join(dir, "data") + "\nlog_path: " + filepath.Join(dir, "app.log") + "\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DatabasePath != filepath.Join(dir, "altro.db") {
		t.Fatalf("DatabasePath = %q", cfg.DatabasePath)
	}
	if cfg.LogPath != filepath.Join(dir, "app.log") {
		t.Fatalf("LogPath = %q", cfg.LogPath)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("colour: red\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	base := Config{DataDir: "d", DatabasePath: "db", ReportsDir: "r", DBTimeout: time.Second}
	if err := base.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	noDB := base
	noDB.DatabasePath = ""
	if err := noDB.Validate(); err == nil {
		t.Fatalf("expected error without database path")
	}
	noDB.SessionOnly = true
	if err := noDB.Validate(); err != nil {
		t.Fatalf("session-only config needs no database: %v", err)
	}

	badTimeout := base
	badTimeout.DBTimeout = 0
	if err := badTimeout.Validate(); err == nil {
		t.Fatalf("expected error for zero timeout")
	}
}
