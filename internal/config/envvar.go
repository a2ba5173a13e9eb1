package config

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
)

// Environment variable names for jsonstore configuration.
const (
	EnvDir      = "JSONSTORE_DIR"      // Directory holding the store file
	EnvName     = "JSONSTORE_NAME"     // Store file name
	EnvSchema   = "JSONSTORE_SCHEMA"   // Path to a JSON Schema document
	EnvDefaults = "JSONSTORE_DEFAULTS" // Path to a defaults file
	EnvStrict   = "JSONSTORE_STRICT"   // Reject undeclared keys ("1" or "true")
	EnvJSON     = "JSONSTORE_JSON"     // Enable JSON output ("1" or "true")
	EnvVerbose  = "JSONSTORE_VERBOSE"  // Debug logging to stderr
)

// EnvFiles are loaded by LoadEnvFiles, in order.
var EnvFiles = []string{".env", ".env.local"}

// LoadEnvFiles loads variables from .env files in the working directory.
// Missing files are skipped and variables already set are not overridden.
// A file that cannot be read or parsed is logged and skipped.
func LoadEnvFiles(log *slog.Logger) {
	for _, f := range EnvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Warn("ignoring malformed env file", "file", f, "error", err)
		}
	}
}
