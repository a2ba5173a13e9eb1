// Package config resolves the jsonstore CLI configuration from flags,
// environment variables and .env files.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"jsonstore/paths"
)

// AppName is used for the OS config directory and the env prefix.
const AppName = "jsonstore"

// Keys shared by flags, environment variables and viper.
const (
	KeyDir      = "dir"
	KeyName     = "name"
	KeySchema   = "schema"
	KeyDefaults = "defaults"
	KeyStrict   = "strict"
	KeyJSON     = "json"
	KeyVerbose  = "verbose"
)

// Config is the resolved CLI configuration.
type Config struct {
	Dir          string // directory holding the store file
	Name         string // store file name
	SchemaFile   string // optional JSON Schema document
	DefaultsFile string // optional defaults file (.json, .yaml, .yml, .toml)
	Strict       bool   // reject keys not declared in the schema
	JSON         bool   // output in JSON format
	Verbose      bool   // debug logging
}

// NewViper returns a viper instance that reads JSONSTORE_* variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(AppName)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Bind binds flags to v so that flags override environment variables.
func Bind(v *viper.Viper, flags *pflag.FlagSet) error {
	return v.BindPFlags(flags)
}

// FromViper reads a Config from v.
func FromViper(v *viper.Viper) Config {
	return Config{
		Dir:          v.GetString(KeyDir),
		Name:         v.GetString(KeyName),
		SchemaFile:   v.GetString(KeySchema),
		DefaultsFile: v.GetString(KeyDefaults),
		Strict:       v.GetBool(KeyStrict),
		JSON:         v.GetBool(KeyJSON),
		Verbose:      v.GetBool(KeyVerbose),
	}
}

// ResolveDir returns c.Dir if set. Otherwise it returns the project root of
// the working directory, falling back to the OS config directory when the
// working directory is not inside a project.
func (c Config) ResolveDir() (string, error) {
	if c.Dir != "" {
		return c.Dir, nil
	}

	root, err := paths.ProjectRoot("")
	if err == nil {
		return root, nil
	}
	if !errors.Is(err, paths.ErrNoProjectRoot) {
		return "", err
	}

	dir, err := paths.OSConfigDir(AppName)
	if err != nil {
		return "", fmt.Errorf("resolving store directory: %w", err)
	}
	return dir, nil
}
