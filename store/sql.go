// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/survey-builder/db"
)

// SQL is a KV backed by the kv_entry table.
type SQL struct {
	conn      *sql.DB
	getQuery  string
	upsertSQL string
}

// NewSQL returns a KV over conn. dbType selects the placeholder style
// (db.TypePostgres or db.TypeSQLite).
func NewSQL(conn *sql.DB, dbType string) (*SQL, error) {
	s := &SQL{conn: conn}
	switch dbType {
	case db.TypePostgres:
		s.getQuery = `SELECT value FROM kv_entry WHERE key = $1`
		s.upsertSQL = `
			INSERT INTO kv_entry (key, value, updated_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	case db.TypeSQLite:
		s.getQuery = `SELECT value FROM kv_entry WHERE key = ?`
		s.upsertSQL = `
			INSERT INTO kv_entry (key, value, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
	return s, nil
}

func (s *SQL) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	var value string
	err := s.conn.QueryRowContext(ctx, s.getQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return json.RawMessage(value), true, nil
}

func (s *SQL) Set(ctx context.Context, key string, value json.RawMessage) error {
	if !json.Valid(value) {
		return fmt.Errorf("value for key %q is not valid JSON", key)
	}
	_, err := s.conn.ExecContext(ctx, s.upsertSQL, key, string(value), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}
