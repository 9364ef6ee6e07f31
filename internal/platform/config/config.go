// Package config loads process configuration from the environment, optionally
// seeded from a dotenv file for local runs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	// EnvFileVar overrides the dotenv path.
	EnvFileVar = "ENV_FILE"
	// DefaultEnvFile is read when present and EnvFileVar is unset.
	DefaultEnvFile = ".env"
	// DefaultPort is used by the local server when PORT is unset.
	DefaultPort = "8080"
)

// Config holds settings fixed for the lifetime of the process. The greeting is
// intentionally absent: the handler reads it on every invocation.
type Config struct {
	Port string
}

// Load applies the dotenv file (if any) without overriding variables that are
// already set, then reads Config from the environment. A missing default file
// is not an error; a missing file named by ENV_FILE is.
func Load() (Config, error) {
	path := os.Getenv(EnvFileVar)
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", path, err)
		}
	}

	cfg := Config{Port: os.Getenv("PORT")}
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	return cfg, nil
}

// Addr returns the listen address for the local server.
func (c Config) Addr() string {
	return ":" + c.Port
}
