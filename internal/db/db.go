// Package db provides the SQLite-backed usage and quality tracker. Plain
// CRUD over database/sql; one writer, no pooling concerns. Tracking is
// optional: the pipeline runs fine without a database configured.
package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure-Go sqlite driver
)

// DefaultPath is the conventional location of the tracking database.
const DefaultPath = "database/aply_applications.db"

//go:embed schema.sql
var defaultSchema string

// DB wraps the SQLite handle.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the tracking database at path and applies the
// schema. If a schema.sql file sits next to the database file it overrides
// the embedded default.
func Open(ctx context.Context, path string) (*DB, error) {
	if path == "" {
		path = DefaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.applySchema(ctx, path); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return db, nil
}

// OpenMemory opens an in-memory database with the embedded schema. Used by
// tests.
func OpenMemory(ctx context.Context) (*DB, error) {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	db := &DB{conn: conn}
	if _, err := conn.ExecContext(ctx, defaultSchema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	if _, err := conn.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	return db, nil
}

// applySchema runs the external schema file when present, the embedded one
// otherwise. Statements are idempotent (CREATE TABLE IF NOT EXISTS).
func (db *DB) applySchema(ctx context.Context, dbPath string) error {
	schema := defaultSchema

	external := filepath.Join(filepath.Dir(dbPath), "schema.sql")
	if data, err := os.ReadFile(external); err == nil {
		schema = string(data)
	}

	if _, err := db.conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	// FK enforcement is off by default in SQLite.
	if _, err := db.conn.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	return nil
}

// Close closes the database handle.
func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}
