// Package config reads runtime settings from the environment, falling back to
// defaults for anything unset.
package config

import (
	"os"
	"strings"
)

const (
	defaultCurrency   = "UAH"
	defaultLogLevel   = "info"
	defaultUsername   = "ivan"
	defaultCredential = "password123"
)

type Config struct {
	// Currency is the label printed after prices. It is not converted.
	Currency string
	LogLevel string
	// CatalogFile is an optional YAML seed; empty means the built-in catalog.
	CatalogFile string
	Username    string
	Credential  string
}

func Default() Config {
	return Config{
		Currency:   defaultCurrency,
		LogLevel:   defaultLogLevel,
		Username:   defaultUsername,
		Credential: defaultCredential,
	}
}

// Load returns Default overridden by the STORE_* environment variables.
func Load() Config {
	return FromLookup(os.LookupEnv)
}

func FromLookup(lookup func(string) (string, bool)) Config {
	cfg := Default()
	cfg.Currency = get(lookup, "STORE_CURRENCY", cfg.Currency)
	cfg.LogLevel = strings.ToLower(get(lookup, "STORE_LOG_LEVEL", cfg.LogLevel))
	cfg.CatalogFile = get(lookup, "STORE_CATALOG_FILE", cfg.CatalogFile)
	cfg.Username = get(lookup, "STORE_USERNAME", cfg.Username)
	cfg.Credential = get(lookup, "STORE_CREDENTIAL", cfg.Credential)
	return cfg
}

func get(lookup func(string) (string, bool), key, fallback string) string {
	if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}
