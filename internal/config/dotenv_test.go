package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDotEnv(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	return path
}

func TestLoadDotEnv_LoadsValuesAndIgnoresNoise(t *testing.T) {
	t.Setenv("DB_PATH", "")
	t.Setenv("PORT", "")
	t.Setenv("TABLES_PATH", "")

	path := writeDotEnv(t, `
# comment

DB_PATH=./catalog.db
export PORT=9090
TABLES_PATH="tables.yaml"
not a pair
`)

	n, err := loadDotEnv(path)
	if err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}
	if n != 3 {
		t.Fatalf("set %d variables, want 3", n)
	}

	if got := os.Getenv("DB_PATH"); got != "./catalog.db" {
		t.Fatalf("DB_PATH=%q, want %q", got, "./catalog.db")
	}
	if got := os.Getenv("PORT"); got != "9090" {
		t.Fatalf("PORT=%q, want %q", got, "9090")
	}
	if got := os.Getenv("TABLES_PATH"); got != "tables.yaml" {
		t.Fatalf("TABLES_PATH=%q, want %q", got, "tables.yaml")
	}
}

func TestLoadDotEnv_DoesNotOverwriteExistingEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	path := writeDotEnv(t, "LOG_LEVEL=error\n")

	n, err := loadDotEnv(path)
	if err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}
	if n != 0 {
		t.Fatalf("set %d variables, want 0", n)
	}
	if got := os.Getenv("LOG_LEVEL"); got != "debug" {
		t.Fatalf("LOG_LEVEL=%q, want %q", got, "debug")
	}
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	n, err := loadDotEnv(filepath.Join(t.TempDir(), "nope.env"))
	if err != nil || n != 0 {
		t.Fatalf("loadDotEnv = (%d, %v), want (0, nil)", n, err)
	}
}

func TestParseDotEnvLine_Quotes(t *testing.T) {
	cases := []struct {
		line, key, value string
	}{
		{"Q='hello world'", "Q", "hello world"},
		{`Q="a # not a comment"`, "Q", "a # not a comment"},
		{"Q=plain # trailing", "Q", "plain"},
		{"Q=", "Q", ""},
	}
	for _, tc := range cases {
		k, v, ok := parseDotEnvLine(tc.line)
		if !ok || k != tc.key || v != tc.value {
			t.Fatalf("parseDotEnvLine(%q) = (%q, %q, %v), want (%q, %q, true)", tc.line, k, v, ok, tc.key, tc.value)
		}
	}
}
