// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the survey builder API server.

The survey builder lets authors compose surveys from questions and
demographic charts. A demographic chart splits 100% across labelled
ranges; editing one range pushes the others down proportionally so the
total never exceeds 100%.

# Starting the Server

Defaults give a local SQLite file, so no configuration is required:

	go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

A .env file in the working directory is loaded first if present.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres or memory (default: sqlite)
  - DATABASE_URL (-d): connection string (default for sqlite: survey-builder.db)
  - SURVEYS_KEY (-key): storage key of the survey list (default: surveys)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - allocation: Range sets and the proportional allocation algorithms
  - demographics: Demographic definitions and the template catalog
  - session: Chart edit sessions and their registry
  - survey: Survey records and questions
  - store: Key/value port with memory and SQL backends
  - handlers: HTTP request handlers (surveys, charts, templates)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - ids: Random identifiers
  - db: Connections and schema creation
  - cliparse: Configuration parsing

The surveyctl command in cmd/surveyctl inspects the same storage from a
terminal.

See package documentation for each component.
*/
package main
