// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite, postgres or memory (default: sqlite)
  - DatabaseURL: connection string (default for sqlite: survey-builder.db)
  - SurveysKey: storage key holding the survey list (default: surveys)

# CLI Flags

	-p    Server port
	-d    Database URL
	-t    Database type
	-key  Surveys storage key

# Environment Variables

Environment variables are read first (github.com/caarlos0/env), then
flags are applied on top:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	SURVEYS_KEY   → -key

LoadDotEnv seeds the environment from a .env file (github.com/joho/godotenv)
without overriding variables that are already set.

# Validation

ParseFlags returns an error when the port is out of range, the database
type is unknown, or postgres is selected without a URL.
*/
package cliparse
