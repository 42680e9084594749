package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Simplici0/listing-pricer/internal/pricing"
)

const (
	defaultEnv      = "dev"
	defaultDBPath   = "./dev.db"
	defaultPort     = "8080"
	defaultLogLevel = "info"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Env        string
	DBPath     string
	Port       string
	LogLevel   string
	TablesPath string
	APIToken   string

	warnings []string
}

// Load reads environment variables and returns a populated Config. Problems that do not
// stop the process are collected for the caller to log once logging is configured.
func Load() Config {
	var warnings []string
	// Best-effort: a missing .env is fine, real deployments inject the environment.
	if _, err := loadDotEnv(".env"); err != nil {
		warnings = append(warnings, fmt.Sprintf("could not read .env: %v", err))
	}

	cfg := Config{
		Env:        envOr("APP_ENV", defaultEnv),
		DBPath:     envOr("DB_PATH", defaultDBPath),
		Port:       envOr("PORT", defaultPort),
		LogLevel:   envOr("LOG_LEVEL", defaultLogLevel),
		TablesPath: strings.TrimSpace(os.Getenv("TABLES_PATH")),
		APIToken:   os.Getenv("API_TOKEN"),
	}

	if cfg.APIToken == "" && !cfg.IsDev() {
		warnings = append(warnings, "API_TOKEN is not set, write endpoints are open")
	}
	cfg.warnings = warnings

	return cfg
}

// Warnings returns the non-fatal problems found by Load.
func (c Config) Warnings() []string {
	out := make([]string, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// IsDev reports whether the process runs in the development environment.
func (c Config) IsDev() bool {
	return strings.EqualFold(c.Env, defaultEnv) || strings.EqualFold(c.Env, "development")
}

// Tables returns the pricing tables, overlaid from TablesPath when it is set.
func (c Config) Tables() (pricing.Tables, error) {
	if c.TablesPath == "" {
		return pricing.DefaultTables(), nil
	}
	return pricing.LoadTables(c.TablesPath)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
