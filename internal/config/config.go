// internal/config/config.go
//
// Process configuration, read from the environment.
//
// Load first applies a `.env` file from the working directory when one exists
// (development convenience), then parses the variables below into Config.
//
//	LOG_LEVEL            zerolog level name (default "info")
//	LOG_FORMAT           "console" or "json" (default "console")
//	SOLITAIRE_DECK_FILE  deck record used when no deck flag is given
//	DAILY_SALT           salt for the deal of the day (default "local_dev_salt")
//	SOLITAIRE_COLOR      colour suits when rendering the board (default true)

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the CLI reads from the environment.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
	DeckFile  string `env:"SOLITAIRE_DECK_FILE"`
	DailySalt string `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	Color     bool   `env:"SOLITAIRE_COLOR" envDefault:"true"`
}

// Load reads `.env` files (if any) and then the process environment.
// Variables already set in the environment win over the files.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return Parse()
}

// Parse reads Config from the process environment only.
func Parse() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return Config{}, fmt.Errorf("parse env: LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}
	return c, nil
}
