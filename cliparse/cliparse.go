// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/survey-builder/db"
	"github.com/danielhkuo/survey-builder/store"
)

// DefaultSQLitePath is used when DATABASE_TYPE is sqlite and no URL is set.
const DefaultSQLitePath = "survey-builder.db"

type Config struct {
	Port         int    `env:"PORT" envDefault:"3318"`
	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseType string `env:"DATABASE_TYPE" envDefault:"sqlite"`
	SurveysKey   string `env:"SURVEYS_KEY" envDefault:"surveys"`
}

// LoadDotEnv loads variables from a .env file into the process
// environment. A missing file is not an error; variables already set win.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ParseFlags reads the environment, then applies flags on top of it.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fset := flag.NewFlagSet("survey-builder", flag.ContinueOnError)

	// Flags default to the environment values, so CLI wins
	fset.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fset.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL")
	fset.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite, postgres or memory)")
	fset.StringVar(&cfg.SurveysKey, "key", cfg.SurveysKey, "Storage key holding the survey list")

	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg *Config) normalize() error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.SurveysKey == "" {
		cfg.SurveysKey = store.DefaultSurveysKey
	}

	switch cfg.DatabaseType {
	case db.TypeSQLite:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = DefaultSQLitePath
		}
	case db.TypePostgres:
		if cfg.DatabaseURL == "" {
			return errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	case db.TypeMemory:
	default:
		return fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}
	return nil
}
