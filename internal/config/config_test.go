package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "DB_PATH", "PORT", "LOG_LEVEL", "TABLES_PATH", "API_TOKEN"} {
		t.Setenv(key, "")
	}
	chdir(t, t.TempDir())

	cfg := Load()

	if cfg.DBPath != defaultDBPath || cfg.Port != defaultPort || cfg.LogLevel != defaultLogLevel {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.IsDev() {
		t.Fatalf("expected dev environment by default")
	}
}

func TestIsDev(t *testing.T) {
	if (Config{Env: "production"}).IsDev() {
		t.Fatalf("production must not be dev")
	}
	if !(Config{Env: "Development"}).IsDev() {
		t.Fatalf("Development must be dev")
	}
}

func TestTables(t *testing.T) {
	tables, err := Config{}.Tables()
	if err != nil {
		t.Fatalf("default tables: %v", err)
	}
	if len(tables.Materials) == 0 {
		t.Fatalf("default tables have no materials")
	}

	path := filepath.Join(t.TempDir(), "tables.yaml")
	if err := os.WriteFile(path, []byte("add_ons:\n  Chrome: \"1.5\"\n"), 0o600); err != nil {
		t.Fatalf("write tables: %v", err)
	}
	tables, err = Config{TablesPath: path}.Tables()
	if err != nil {
		t.Fatalf("file tables: %v", err)
	}
	if _, ok := tables.AddOns["Chrome"]; !ok || len(tables.AddOns) != 1 {
		t.Fatalf("expected add-ons from file, got %v", tables.AddOns)
	}
}

func TestLoad_CollectsWarnings(t *testing.T) {
	for _, key := range []string{"DB_PATH", "PORT", "LOG_LEVEL", "TABLES_PATH", "API_TOKEN"} {
		t.Setenv(key, "")
	}
	t.Setenv("APP_ENV", "production")
	dir := t.TempDir()
	chdir(t, dir)

	// A directory named .env cannot be read as a file.
	if err := os.Mkdir(filepath.Join(dir, ".env"), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfg := Load()

	warnings := cfg.Warnings()
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %q", warnings)
	}
	if !strings.HasPrefix(warnings[0], "could not read .env") {
		t.Fatalf("unexpected first warning %q", warnings[0])
	}
	if warnings[1] != "API_TOKEN is not set, write endpoints are open" {
		t.Fatalf("unexpected second warning %q", warnings[1])
	}

	warnings[0] = "changed"
	if cfg.Warnings()[0] == "changed" {
		t.Fatalf("Warnings must return a copy")
	}
}

func TestLoad_NoWarningsInDev(t *testing.T) {
	for _, key := range []string{"APP_ENV", "API_TOKEN"} {
		t.Setenv(key, "")
	}
	chdir(t, t.TempDir())

	if w := Load().Warnings(); len(w) != 0 {
		t.Fatalf("expected no warnings, got %q", w)
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores the previous one on test cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
