// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the runtime configuration for the PyReach server.
type Config struct {
	// GameName is the display name used in wiki seeding and login banners.
	GameName string `env:"PYREACH_GAME_NAME" envDefault:"PyReach"`

	// TelnetAddr is the listen address for the telnet game server.
	TelnetAddr string `env:"PYREACH_TELNET_ADDR" envDefault:":4000"`

	// HTTPAddr is the listen address for the wiki web application.
	HTTPAddr string `env:"PYREACH_HTTP_ADDR" envDefault:":8080"`

	// DatabasePath is the SQLite database file path.
	DatabasePath string `env:"PYREACH_DB_PATH" envDefault:"pyreach.db"`

	// SessionSecret signs web session tokens. A random secret is
	// generated at startup when empty, which invalidates sessions on
	// restart.
	SessionSecret string `env:"PYREACH_SESSION_SECRET"`

	// ContentDir is an optional directory of Markdown files watched for
	// wiki content changes. Empty disables the watcher.
	ContentDir string `env:"PYREACH_CONTENT_DIR"`

	// LogFile enables rotating file logging when set. Empty logs to stdout.
	LogFile string `env:"PYREACH_LOG_FILE"`

	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `env:"PYREACH_LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file and parses configuration from the
// environment. A missing .env file is not an error.
func Load() (Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
